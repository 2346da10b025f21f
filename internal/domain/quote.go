package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// QuoteTerms holds the figures of a satisfiable loan request.
type QuoteTerms struct {
	Rate             decimal.Decimal // blended annual rate, RateScale places
	MonthlyRepayment decimal.Decimal
	TotalRepayment   decimal.Decimal
}

// LoanQuote is the outcome of quoting one requested amount against a market.
// It is either available, carrying QuoteTerms, or unavailable, carrying only
// the requested amount. Build it with Available or Unavailable.
type LoanQuote struct {
	requestedAmount decimal.Decimal
	terms           QuoteTerms
	available       bool
}

// Available builds a quote for a request the market can satisfy.
func Available(requestedAmount, rate, monthlyRepayment, totalRepayment decimal.Decimal) LoanQuote {
	return LoanQuote{
		requestedAmount: requestedAmount,
		terms: QuoteTerms{
			Rate:             rate,
			MonthlyRepayment: monthlyRepayment,
			TotalRepayment:   totalRepayment,
		},
		available: true,
	}
}

// Unavailable builds a quote for a request that exceeds the market supply.
func Unavailable(requestedAmount decimal.Decimal) LoanQuote {
	return LoanQuote{requestedAmount: requestedAmount}
}

// RequestedAmount returns the amount the quote was computed for.
func (q LoanQuote) RequestedAmount() decimal.Decimal {
	return q.requestedAmount
}

// IsAvailable reports whether the market can satisfy the request.
func (q LoanQuote) IsAvailable() bool {
	return q.available
}

// Terms returns the quote figures. ok is false for an unavailable quote, in
// which case the returned terms are zero values and must not be used.
func (q LoanQuote) Terms() (terms QuoteTerms, ok bool) {
	if !q.available {
		return QuoteTerms{}, false
	}
	return q.terms, true
}

// Equal reports whether two quotes describe the same outcome with numerically
// equal figures.
func (q LoanQuote) Equal(other LoanQuote) bool {
	if q.available != other.available || !q.requestedAmount.Equal(other.requestedAmount) {
		return false
	}
	if !q.available {
		return true
	}
	return q.terms.Rate.Equal(other.terms.Rate) &&
		q.terms.MonthlyRepayment.Equal(other.terms.MonthlyRepayment) &&
		q.terms.TotalRepayment.Equal(other.terms.TotalRepayment)
}

func (q LoanQuote) String() string {
	if !q.available {
		return fmt.Sprintf("LoanQuote{requested=%s unavailable}", q.requestedAmount)
	}
	return fmt.Sprintf("LoanQuote{requested=%s rate=%s monthly=%s total=%s}",
		q.requestedAmount, q.terms.Rate, q.terms.MonthlyRepayment, q.terms.TotalRepayment)
}
