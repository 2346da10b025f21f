package lending

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/LoanQuote_Go/internal/domain"
	"github.com/osse101/LoanQuote_Go/internal/offerbook"
)

// Quote prices requested against book. It is a pure function of its inputs:
// a request the market cannot cover yields an unavailable quote, not an
// error. The only error is a negative request, wrapping domain.ErrInvalidAmount.
func Quote(book *offerbook.Book, requested decimal.Decimal) (domain.LoanQuote, error) {
	q, _, err := quote(book, requested)
	return q, err
}

func quote(book *offerbook.Book, requested decimal.Decimal) (domain.LoanQuote, domain.Allocation, error) {
	if requested.IsNegative() {
		return domain.LoanQuote{}, nil, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, requested)
	}

	allocation, ok := Allocate(book, requested)
	if !ok {
		return domain.Unavailable(requested), nil, nil
	}

	repayment := Amortize(allocation)
	return domain.Available(
		requested,
		BlendRate(allocation, requested),
		repayment.Monthly,
		repayment.Total,
	), allocation, nil
}
