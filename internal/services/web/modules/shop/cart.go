package shop

import (
	"strings"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxQuantity bounds one cart line.
const MaxQuantity = 99

// CartItem is one cart line. LineTotal is set only when the backend priced
// the line (coupon quote); otherwise pricing derives it locally.
type CartItem struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"product_id"`
	VariantID       string           `json:"variant_id,omitempty"`
	ProductName     string           `json:"product_name"`
	VariantName     string           `json:"variant_name,omitempty"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	Quantity        int              `json:"quantity"`
	LineTotal       *decimal.Decimal `json:"line_total,omitempty"`
	CouponCode      string           `json:"coupon_code,omitempty"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
}

// Cart is the per-session shopping cart. Mutations return a new cart and
// leave the receiver untouched, so a failed request never half-applies.
type Cart struct {
	Items           []CartItem      `json:"items"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}

func (c Cart) clone() Cart {
	c.Items = append([]CartItem(nil), c.Items...)
	return c
}

// Count returns the number of units in the cart.
func (c Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Empty reports whether the cart has no lines.
func (c Cart) Empty() bool { return len(c.Items) == 0 }

// Add puts quantity units of a product variant in the cart, merging with an
// existing line for the same variant. New lines inherit the cart coupon.
func (c Cart) Add(item CartItem) (Cart, error) {
	if item.Quantity < 1 || item.Quantity > MaxQuantity {
		return c, apperrors.EK(apperrors.KindInvalidInput, "web.shop.error.quantity_invalid", "")
	}
	next := c.clone()
	for idx, existing := range next.Items {
		if existing.ProductID != item.ProductID || existing.VariantID != item.VariantID {
			continue
		}
		quantity := existing.Quantity + item.Quantity
		if quantity > MaxQuantity {
			return c, apperrors.EK(apperrors.KindInvalidInput, "web.shop.error.quantity_invalid", "")
		}
		existing.Quantity = quantity
		existing.LineTotal = nil
		next.Items[idx] = existing
		return next, nil
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.LineTotal = nil
	item.CouponCode = next.CouponCode
	item.DiscountPercent = next.DiscountPercent
	next.Items = append(next.Items, item)
	return next, nil
}

// SetQuantity changes one line's quantity. A server-priced total no longer
// matches the new quantity, so it is dropped.
func (c Cart) SetQuantity(itemID string, quantity int) (Cart, error) {
	if quantity < 1 || quantity > MaxQuantity {
		return c, apperrors.EK(apperrors.KindInvalidInput, "web.shop.error.quantity_invalid", "")
	}
	next := c.clone()
	for idx, item := range next.Items {
		if item.ID != strings.TrimSpace(itemID) {
			continue
		}
		item.Quantity = quantity
		item.LineTotal = nil
		next.Items[idx] = item
		return next, nil
	}
	return c, apperrors.EK(apperrors.KindNotFound, "web.shop.error.item_not_found", "")
}

// Remove deletes one line. Unknown ids leave the cart unchanged.
func (c Cart) Remove(itemID string) Cart {
	next := Cart{CouponCode: c.CouponCode, DiscountPercent: c.DiscountPercent}
	for _, item := range c.Items {
		if item.ID == strings.TrimSpace(itemID) {
			continue
		}
		next.Items = append(next.Items, item)
	}
	if len(next.Items) == 0 {
		next.CouponCode = ""
		next.DiscountPercent = decimal.Zero
	}
	return next
}

// ApplyCoupon records a validated coupon on the cart and every line. Lines
// the backend priced keep its line total.
func (c Cart) ApplyCoupon(quote CouponQuote) Cart {
	next := c.clone()
	next.CouponCode = quote.Code
	next.DiscountPercent = quote.DiscountPercent
	for idx, item := range next.Items {
		item.CouponCode = quote.Code
		item.DiscountPercent = quote.DiscountPercent
		item.LineTotal = nil
		if total, ok := quote.LineTotals[lineKey(item)]; ok {
			item.LineTotal = &total
		}
		next.Items[idx] = item
	}
	return next
}

// Lines returns the order lines for the cart.
func (c Cart) Lines() []OrderLine {
	lines := make([]OrderLine, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, OrderLine{
			ProductID:  item.ProductID,
			VariantID:  item.VariantID,
			Quantity:   item.Quantity,
			CouponCode: item.CouponCode,
		})
	}
	return lines
}

// lineKey identifies a line in backend quotes: the variant when present,
// else the product.
func lineKey(item CartItem) string {
	if item.VariantID != "" {
		return item.VariantID
	}
	return item.ProductID
}
