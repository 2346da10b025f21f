package lending

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/LoanQuote_Go/internal/domain"
	"github.com/osse101/LoanQuote_Go/internal/offerbook"
	"github.com/osse101/LoanQuote_Go/internal/utils"
)

// Allocate fills requested from the cheapest tiers first. It returns false
// when requested exceeds the book's total supply. A zero request yields an
// empty allocation.
//
// Taking as much as possible from each cheaper tier before touching a more
// expensive one minimises sum(rate * amount) for a fixed total, so the
// resulting blended rate is the lowest any feasible allocation can reach.
func Allocate(book *offerbook.Book, requested decimal.Decimal) (domain.Allocation, bool) {
	if requested.GreaterThan(book.TotalSupply()) {
		return nil, false
	}

	allocation := domain.Allocation{}
	need := requested
	book.Each(func(tier domain.Tier) bool {
		if need.IsZero() {
			return false
		}
		take := utils.Min(tier.Amount, need)
		if take.IsZero() {
			return true
		}
		allocation = append(allocation, domain.Tier{Rate: tier.Rate, Amount: take})
		need = need.Sub(take)
		return !need.IsZero()
	})

	return allocation, true
}
