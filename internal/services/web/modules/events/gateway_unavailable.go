package events

import (
	"context"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListDraftedEvents(context.Context, bool) ([]Event, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}

func (unavailableGateway) DeleteEvent(context.Context, string) (string, error) {
	return "", apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}
