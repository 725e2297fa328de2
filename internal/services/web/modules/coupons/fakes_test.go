package coupons

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

type fakeGateway struct {
	mu        sync.Mutex
	coupons   []Coupon
	listErr   error
	getErr    error
	editMsg   string
	editErr   error
	edits     []CouponUpdate
	deleteMsg string
	deleteErr error
	deleted   []string
}

var _ CouponsGateway = (*fakeGateway)(nil)

func (f *fakeGateway) ListCoupons(context.Context) ([]Coupon, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Coupon(nil), f.coupons...), nil
}

func (f *fakeGateway) GetCoupon(_ context.Context, couponID string) (Coupon, error) {
	if f.getErr != nil {
		return Coupon{}, f.getErr
	}
	for _, c := range f.coupons {
		if c.ID == couponID {
			return c, nil
		}
	}
	return Coupon{}, errNotFound
}

func (f *fakeGateway) EditCoupon(_ context.Context, update CouponUpdate) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edits = append(f.edits, update)
	if f.editErr != nil {
		return "", f.editErr
	}
	return f.editMsg, nil
}

func (f *fakeGateway) DeleteCoupon(_ context.Context, couponID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, couponID)
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	return f.deleteMsg, nil
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func sampleCoupons() []Coupon {
	return []Coupon{
		{ID: "c1", Code: "SUMMER10", Discount: decimal.NewFromInt(10), UsageLimit: 100, TimesUsed: 4, Active: true, ValidUntil: time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)},
		{ID: "c2", Code: "OLD5", Discount: decimal.NewFromInt(5), Active: true, ValidUntil: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)},
		{ID: "c3", Code: "PAUSED", Discount: decimal.RequireFromString("12.5"), Active: false},
	}
}
