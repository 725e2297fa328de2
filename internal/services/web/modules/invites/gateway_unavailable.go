package invites

import (
	"context"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) RespondInvite(context.Context, string, bool) (string, error) {
	return "", apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}
