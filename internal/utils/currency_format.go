package utils

import (
	"github.com/SscSPs/cheque_amount_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a normalized amount as a plain decimal string with two places.
// Example: {Integer: 1234, Fraction: "5"} and {Integer: 1234, Fraction: "50"} both return "1234.50"
// Example: {Integer: 7} returns "7.00"
func FormatAmount(amount domain.Amount) string {
	cents := amount.Integer*100 + int64(amount.Jiao()*10+amount.Fen())
	return FormatWithPrecision(decimal.New(cents, -2), domain.MaxFractionDigits)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
