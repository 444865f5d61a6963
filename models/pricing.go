package models

import "github.com/shopspring/decimal"

// TaxRate is the flat sales tax applied to every order (8.25%).
var TaxRate = decimal.RequireFromString("0.0825")

// Tax computes the sales tax on a subtotal. The result is exact; callers
// round only when formatting for display.
func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate)
}

// OrderTotal is subtotal plus tax plus an optional donation amount.
func OrderTotal(subtotal, donation decimal.Decimal) decimal.Decimal {
	return subtotal.Add(Tax(subtotal)).Add(donation)
}

// FormatUSD renders an exact amount as a dollar string, rounding to two
// decimal places at this point only.
func FormatUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
