package lending

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoanQuote_Go/internal/domain"
	"github.com/osse101/LoanQuote_Go/internal/offerbook"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func offer(t testing.TB, lender, rate, amount string) domain.Offer {
	t.Helper()
	o, err := domain.NewOffer(lender, dec(rate), dec(amount))
	require.NoError(t, err)
	return o
}

// sampleMarket is the seven-lender market used throughout the quoting tests
func sampleMarket(t testing.TB) []domain.Offer {
	t.Helper()
	return []domain.Offer{
		offer(t, "Bob", "0.075", "640"),
		offer(t, "Jane", "0.069", "480"),
		offer(t, "Fred", "0.071", "520"),
		offer(t, "Mary", "0.104", "170"),
		offer(t, "John", "0.081", "320"),
		offer(t, "Dave", "0.074", "140"),
		offer(t, "Angela", "0.071", "60"),
	}
}

func sampleBook(t testing.TB) *offerbook.Book {
	t.Helper()
	return offerbook.Build(sampleMarket(t))
}

func requireTerms(t *testing.T, q domain.LoanQuote) domain.QuoteTerms {
	t.Helper()
	terms, ok := q.Terms()
	require.True(t, ok, "expected an available quote, got %s", q)
	return terms
}
