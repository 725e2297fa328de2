package coupons

import (
	"context"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListCoupons(context.Context) ([]Coupon, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}

func (unavailableGateway) GetCoupon(context.Context, string) (Coupon, error) {
	return Coupon{}, apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}

func (unavailableGateway) EditCoupon(context.Context, CouponUpdate) (string, error) {
	return "", apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}

func (unavailableGateway) DeleteCoupon(context.Context, string) (string, error) {
	return "", apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
}
