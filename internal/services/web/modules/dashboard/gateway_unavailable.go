package dashboard

import (
	"context"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) CountNews(context.Context) (int, error)     { return 0, unavailable() }
func (unavailableGateway) CountEvents(context.Context) (int, error)   { return 0, unavailable() }
func (unavailableGateway) CountCoupons(context.Context) (int, error)  { return 0, unavailable() }
func (unavailableGateway) CountProducts(context.Context) (int, error) { return 0, unavailable() }

func unavailable() error {
	return apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}
