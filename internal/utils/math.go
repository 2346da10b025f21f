package utils

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/LoanQuote_Go/internal/domain"
)

// RoundCurrency rounds a money value to cents using round-half-to-even.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(domain.CurrencyScale)
}

// RoundRate rounds an annual rate to rate precision using round-half-to-even.
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(domain.RateScale)
}

// Divide divides a by b carrying WorkingPrecision decimal places.
// The caller guarantees b is non-zero.
func Divide(a, b decimal.Decimal) decimal.Decimal {
	return a.DivRound(b, domain.WorkingPrecision)
}

// PowInt raises base to a non-negative integer power by repeated squaring.
// The result is exact: no intermediate rounding is applied.
func PowInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	return result
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
