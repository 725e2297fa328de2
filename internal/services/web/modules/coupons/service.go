package coupons

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/arenahq/arena/internal/services/web/platform/formvalidate"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire and form layout of coupon dates.
const dateLayout = "2006-01-02"

// Coupon statuses shown in the list and used as filter categories.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusExpired   = "expired"
	StatusExhausted = "exhausted"
)

var maxDiscount = decimal.NewFromInt(100)

// Coupon is one discount code.
type Coupon struct {
	ID         string
	Code       string
	Discount   decimal.Decimal
	UsageLimit int
	TimesUsed  int
	Active     bool
	ValidFrom  time.Time
	ValidUntil time.Time
}

// Status reports whether the coupon can still be redeemed at now. A zero
// usage limit means unlimited.
func (c Coupon) Status(now time.Time) string {
	switch {
	case !c.Active:
		return StatusInactive
	case !c.ValidUntil.IsZero() && c.ValidUntil.Before(now):
		return StatusExpired
	case c.UsageLimit > 0 && c.TimesUsed >= c.UsageLimit:
		return StatusExhausted
	default:
		return StatusActive
	}
}

// CouponUpdate is a validated edit.
type CouponUpdate struct {
	ID         string
	Code       string
	Discount   decimal.Decimal
	UsageLimit int
	Active     bool
	ValidUntil time.Time
}

// EditForm is the submitted edit form.
type EditForm struct {
	Code       string `form:"code" validate:"required,max=32"`
	Discount   string `form:"discount_percentage" validate:"required,numeric"`
	UsageLimit string `form:"usage_limit" validate:"omitempty,number"`
	Active     bool   `form:"is_active"`
	ValidUntil string `form:"valid_until" validate:"omitempty,datetime=2006-01-02"`
}

// trimmed returns f with surrounding whitespace removed from its text fields.
func (f EditForm) trimmed() EditForm {
	f.Code = strings.TrimSpace(f.Code)
	f.Discount = strings.TrimSpace(f.Discount)
	f.UsageLimit = strings.TrimSpace(f.UsageLimit)
	f.ValidUntil = strings.TrimSpace(f.ValidUntil)
	return f
}

// formFor prefills the edit form from a stored coupon.
func formFor(c Coupon) EditForm {
	form := EditForm{
		Code:       c.Code,
		Discount:   c.Discount.String(),
		UsageLimit: strconv.Itoa(c.UsageLimit),
		Active:     c.Active,
	}
	if !c.ValidUntil.IsZero() {
		form.ValidUntil = c.ValidUntil.UTC().Format(dateLayout)
	}
	return form
}

// CouponsGateway manages coupons.
type CouponsGateway interface {
	ListCoupons(ctx context.Context) ([]Coupon, error)
	GetCoupon(ctx context.Context, couponID string) (Coupon, error)
	EditCoupon(ctx context.Context, update CouponUpdate) (string, error)
	DeleteCoupon(ctx context.Context, couponID string) (string, error)
}

type service struct {
	gateway CouponsGateway
	now     func() time.Time
}

func newService(gateway CouponsGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, now: time.Now}
}

func (s service) listCoupons(ctx context.Context) ([]Coupon, error) {
	coupons, err := s.gateway.ListCoupons(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(coupons, func(a, b Coupon) int {
		return strings.Compare(strings.ToLower(a.Code), strings.ToLower(b.Code))
	})
	return coupons, nil
}

func (s service) coupon(ctx context.Context, couponID string) (Coupon, error) {
	if strings.TrimSpace(couponID) == "" {
		return Coupon{}, apperrors.EK(apperrors.KindNotFound, "web.coupons.error.not_found", "coupon id is required")
	}
	return s.gateway.GetCoupon(ctx, couponID)
}

// editCoupon validates form and sends the update. Field problems are returned
// without calling the backend.
func (s service) editCoupon(ctx context.Context, couponID string, form EditForm) (string, formvalidate.FieldErrors, error) {
	form = form.trimmed()
	problems := formvalidate.Struct(form)
	discount, err := decimal.NewFromString(form.Discount)
	if !problems.Has("discount_percentage") {
		switch {
		case err != nil:
			problems = problems.Add("discount_percentage", formvalidate.KeyInvalid)
		case discount.IsNegative():
			problems = addProblem(problems, "discount_percentage", formvalidate.Problem{Key: formvalidate.KeyGTE, Param: "0"})
		case discount.GreaterThan(maxDiscount):
			problems = addProblem(problems, "discount_percentage", formvalidate.Problem{Key: formvalidate.KeyLTE, Param: "100"})
		}
	}
	if problems != nil {
		return "", problems, nil
	}
	update := CouponUpdate{
		ID:       couponID,
		Code:     form.Code,
		Discount: discount,
		Active:   form.Active,
	}
	if form.UsageLimit != "" {
		limit, err := strconv.Atoi(form.UsageLimit)
		if err != nil {
			return "", problems.Add("usage_limit", formvalidate.KeyInvalid), nil
		}
		update.UsageLimit = limit
	}
	if form.ValidUntil != "" {
		until, err := time.ParseInLocation(dateLayout, form.ValidUntil, time.UTC)
		if err != nil {
			return "", problems.Add("valid_until", formvalidate.KeyInvalid), nil
		}
		update.ValidUntil = until
	}
	msg, err := s.gateway.EditCoupon(ctx, update)
	return msg, nil, err
}

func (s service) deleteCoupon(ctx context.Context, couponID string) (string, error) {
	if strings.TrimSpace(couponID) == "" {
		return "", apperrors.EK(apperrors.KindInvalidInput, "web.coupons.error.not_found", "coupon id is required")
	}
	return s.gateway.DeleteCoupon(ctx, couponID)
}

func addProblem(problems formvalidate.FieldErrors, field string, problem formvalidate.Problem) formvalidate.FieldErrors {
	if problems == nil {
		problems = formvalidate.FieldErrors{}
	}
	problems[field] = problem
	return problems
}
