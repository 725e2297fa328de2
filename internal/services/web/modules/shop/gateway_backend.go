package shop

import (
	"context"

	"github.com/arenahq/arena/internal/services/web/integration/backend"
	"github.com/shopspring/decimal"
)

type backendGateway struct {
	client *backend.Client
}

// NewBackendGateway returns the REST-backed shop gateway, or a degraded
// gateway when client is nil.
func NewBackendGateway(client *backend.Client) ShopGateway {
	if client == nil {
		return unavailableGateway{}
	}
	return backendGateway{client: client}
}

func (g backendGateway) ListProducts(ctx context.Context) ([]Product, error) {
	items, err := g.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(items))
	for _, item := range items {
		product := Product{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
			Category:    item.Category,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
		}
		for _, variant := range item.Variants {
			price := item.Price
			if variant.Price != nil {
				price = *variant.Price
			}
			product.Variants = append(product.Variants, Variant{
				ID:    variant.ID.String(),
				Name:  variant.Name,
				Price: price,
				Stock: variant.Stock,
			})
		}
		products = append(products, product)
	}
	return products, nil
}

func (g backendGateway) ValidateCoupon(ctx context.Context, code string, lines []OrderLine) (CouponQuote, error) {
	quote, quoted, err := g.client.ValidateCoupon(ctx, code, checkoutItems(lines))
	if err != nil {
		return CouponQuote{}, err
	}
	out := CouponQuote{Code: quote.Code, DiscountPercent: quote.DiscountPercentage}
	if len(quoted) > 0 {
		out.LineTotals = make(map[string]decimal.Decimal, len(quoted))
		for _, line := range quoted {
			out.LineTotals[line.VariantID.String()] = line.LineTotal
		}
	}
	return out, nil
}

func (g backendGateway) BuyNow(ctx context.Context, order Order, idempotencyKey string) (string, error) {
	customer := order.Customer
	return g.client.BuyNow(ctx, backend.CheckoutRequest{
		Items:      checkoutItems(order.Lines),
		FirstName:  customer.FirstName,
		LastName:   customer.LastName,
		Email:      customer.Email,
		Phone:      customer.Phone,
		Address:    customer.Address,
		City:       customer.City,
		State:      customer.State,
		PostalCode: customer.PostalCode,
	}, idempotencyKey)
}

func checkoutItems(lines []OrderLine) []backend.CheckoutItem {
	items := make([]backend.CheckoutItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, backend.CheckoutItem{
			VariantID:  line.VariantID,
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			CouponCode: line.CouponCode,
		})
	}
	return items
}
