package adminnews

import (
	"context"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListNews(context.Context) ([]Item, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}

func (unavailableGateway) DeleteNews(context.Context, string) (string, error) {
	return "", apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}
