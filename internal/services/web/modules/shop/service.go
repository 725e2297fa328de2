package shop

import (
	"context"
	"strings"

	apperrors "github.com/arenahq/arena/internal/services/web/platform/errors"
	"github.com/shopspring/decimal"
)

// Product is one catalog entry.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	ImageURL    string
	Price       decimal.Decimal
	Variants    []Variant
}

// Variant is one purchasable option of a product.
type Variant struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int
}

// OrderLine is one line of a coupon quote or order.
type OrderLine struct {
	ProductID  string
	VariantID  string
	Quantity   int
	CouponCode string
}

// CouponQuote is a validated coupon. LineTotals holds backend-priced line
// totals keyed by variant (or product) id, when the backend sends them.
type CouponQuote struct {
	Code            string
	DiscountPercent decimal.Decimal
	LineTotals      map[string]decimal.Decimal
}

// Order is the final checkout payload.
type Order struct {
	Lines    []OrderLine
	Customer CustomerDetails
}

// ShopGateway reads the catalog and places orders against the backend.
type ShopGateway interface {
	ListProducts(context.Context) ([]Product, error)
	ValidateCoupon(context.Context, string, []OrderLine) (CouponQuote, error)
	// BuyNow places the order and returns the external payment URL.
	BuyNow(context.Context, Order, string) (string, error)
}

type service struct {
	gateway ShopGateway
	config  Config
}

func newService(gateway ShopGateway, config Config) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, config: config.normalized()}
}

func (s service) listProducts(ctx context.Context) ([]Product, error) {
	products, err := s.gateway.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		return []Product{}, nil
	}
	return products, nil
}

// addToCart prices the new line from the catalog, never from the form.
func (s service) addToCart(ctx context.Context, cart Cart, productID, variantID string, quantity int) (Cart, error) {
	productID = strings.TrimSpace(productID)
	variantID = strings.TrimSpace(variantID)
	if productID == "" {
		return cart, apperrors.EK(apperrors.KindInvalidInput, "web.shop.error.product_not_found", "")
	}
	products, err := s.listProducts(ctx)
	if err != nil {
		return cart, err
	}
	for _, product := range products {
		if product.ID != productID {
			continue
		}
		item := CartItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			UnitPrice:   product.Price,
			Quantity:    quantity,
		}
		if len(product.Variants) > 0 {
			variant, ok := findVariant(product, variantID)
			if !ok {
				return cart, apperrors.EK(apperrors.KindInvalidInput, "web.shop.error.variant_required", "")
			}
			item.VariantID = variant.ID
			item.VariantName = variant.Name
			item.UnitPrice = variant.Price
		}
		return cart.Add(item)
	}
	return cart, apperrors.EK(apperrors.KindNotFound, "web.shop.error.product_not_found", "")
}

func findVariant(product Product, variantID string) (Variant, bool) {
	if variantID == "" && len(product.Variants) == 1 {
		return product.Variants[0], true
	}
	for _, variant := range product.Variants {
		if variant.ID == variantID {
			return variant, true
		}
	}
	return Variant{}, false
}

// applyCoupon validates code against the cart with the backend.
func (s service) applyCoupon(ctx context.Context, cart Cart, code string) (Cart, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return cart, apperrors.EK(apperrors.KindInvalidInput, "web.shop.error.coupon_required", "")
	}
	if cart.Empty() {
		return cart, apperrors.EK(apperrors.KindInvalidInput, "web.shop.cart_empty", "")
	}
	quote, err := s.gateway.ValidateCoupon(ctx, code, cart.Lines())
	if err != nil {
		return cart, err
	}
	if strings.TrimSpace(quote.Code) == "" {
		quote.Code = code
	}
	if quote.DiscountPercent.IsNegative() || quote.DiscountPercent.GreaterThan(hundred) {
		return cart, apperrors.EK(apperrors.KindInvalidInput, "web.shop.error.coupon_invalid", "")
	}
	return cart.ApplyCoupon(quote), nil
}

// placeOrder submits the draft and returns the payment URL.
func (s service) placeOrder(ctx context.Context, draft CheckoutDraft) (string, error) {
	url, err := s.gateway.BuyNow(ctx, Order{Lines: draft.Cart.Lines(), Customer: draft.Details}, draft.IdempotencyKey)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(url) == "" {
		return "", apperrors.EK(apperrors.KindUnavailable, "error.backend_unavailable", "")
	}
	return url, nil
}

func (s service) totals(cart Cart) Totals {
	return Price(cart, s.config.TaxRate)
}
