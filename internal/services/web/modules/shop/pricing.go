package shop

import "github.com/shopspring/decimal"

// DefaultTaxRate applies when no rate is configured.
var DefaultTaxRate = decimal.RequireFromString("0.075")

var hundred = decimal.NewFromInt(100)

// Totals is the priced breakdown of a cart.
type Totals struct {
	// Subtotal is the sum of unit price times quantity before discounts.
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	// Net is the discounted subtotal tax applies to.
	Net   decimal.Decimal
	Tax   decimal.Decimal
	Total decimal.Decimal
}

// LineTotal prices one cart line. A backend-supplied total is authoritative;
// otherwise it is unit price times quantity less the line discount, rounded
// half-up to cents.
func LineTotal(item CartItem) decimal.Decimal {
	if item.LineTotal != nil {
		return item.LineTotal.Round(2)
	}
	gross := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	if item.DiscountPercent.IsPositive() {
		factor := hundred.Sub(item.DiscountPercent).Div(hundred)
		return gross.Mul(factor).Round(2)
	}
	return gross.Round(2)
}

// Price computes cart totals. Every total shown or submitted comes from here.
func Price(cart Cart, taxRate decimal.Decimal) Totals {
	var totals Totals
	for _, item := range cart.Items {
		totals.Subtotal = totals.Subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		totals.Net = totals.Net.Add(LineTotal(item))
	}
	totals.Subtotal = totals.Subtotal.Round(2)
	totals.Discount = totals.Subtotal.Sub(totals.Net)
	if totals.Discount.IsNegative() {
		totals.Discount = decimal.Zero
	}
	if taxRate.IsPositive() {
		totals.Tax = totals.Net.Mul(taxRate).Round(2)
	}
	totals.Total = totals.Net.Add(totals.Tax)
	return totals
}

// formatMoney renders an amount with its currency code.
func formatMoney(currency string, amount decimal.Decimal) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return currency + " " + amount.StringFixed(2)
}
