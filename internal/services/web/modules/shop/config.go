package shop

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency labels prices when no currency is configured.
const DefaultCurrency = "NGN"

// Config holds shop pricing settings.
type Config struct {
	TaxRate  decimal.Decimal
	Currency string
}

func (c Config) normalized() Config {
	if c.TaxRate.IsNegative() {
		c.TaxRate = DefaultTaxRate
	}
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	return c
}
