package coupons

import (
	"context"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
)

type backendGateway struct {
	client *backend.Client
}

// NewBackendGateway returns a CouponsGateway backed by the REST client. A nil
// client yields the degraded gateway.
func NewBackendGateway(client *backend.Client) CouponsGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return backendGateway{client: client}
}

func (g backendGateway) ListCoupons(ctx context.Context) ([]Coupon, error) {
	coupons, err := g.client.ListCoupons(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Coupon, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, fromBackend(c))
	}
	return out, nil
}

func (g backendGateway) GetCoupon(ctx context.Context, couponID string) (Coupon, error) {
	c, err := g.client.GetCoupon(ctx, couponID)
	if err != nil {
		return Coupon{}, err
	}
	return fromBackend(c), nil
}

func (g backendGateway) EditCoupon(ctx context.Context, update CouponUpdate) (string, error) {
	edit := backend.CouponEdit{
		CouponID:           update.ID,
		Code:               update.Code,
		DiscountPercentage: update.Discount,
		UsageLimit:         update.UsageLimit,
		IsActive:           update.Active,
	}
	if !update.ValidUntil.IsZero() {
		edit.ValidUntil = update.ValidUntil.Format(dateLayout)
	}
	return g.client.EditCoupon(ctx, edit)
}

func (g backendGateway) DeleteCoupon(ctx context.Context, couponID string) (string, error) {
	return g.client.DeleteCoupon(ctx, couponID)
}

func fromBackend(c backend.Coupon) Coupon {
	return Coupon{
		ID:         c.ID.String(),
		Code:       c.Code,
		Discount:   c.DiscountPercentage,
		UsageLimit: c.UsageLimit,
		TimesUsed:  c.TimesUsed,
		Active:     c.IsActive,
		ValidFrom:  c.ValidFrom.Time,
		ValidUntil: c.ValidUntil.Time,
	}
}
