package public

import (
	"context"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/arenahq/arena/internal/services/web/session"
)

type unavailableGateway struct{}

func (unavailableGateway) ListNews(context.Context) ([]Headline, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}

func (unavailableGateway) Login(context.Context, string, string) (session.Identity, error) {
	return session.Identity{}, apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}
