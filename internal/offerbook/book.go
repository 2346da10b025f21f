// Package offerbook aggregates lender offers into an immutable, rate-ordered
// view of the market.
package offerbook

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/osse101/LoanQuote_Go/internal/domain"
)

// Book is the rate-aggregated market. Offers sharing a rate are merged into
// one tier; tiers are held in ascending rate order. A Book is never mutated
// after Build and is safe for concurrent readers.
type Book struct {
	tiers       []domain.Tier
	totalSupply decimal.Decimal
}

// Build aggregates already-validated offers. Rates are merged on numeric
// equality, so 0.1 and 0.10 are the same tier. Build never fails.
func Build(offers []domain.Offer) *Book {
	sorted := make([]domain.Offer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rate.LessThan(sorted[j].Rate)
	})

	tiers := make([]domain.Tier, 0, len(sorted))
	total := decimal.Zero
	for _, o := range sorted {
		total = total.Add(o.Amount)
		if n := len(tiers); n > 0 && tiers[n-1].Rate.Equal(o.Rate) {
			tiers[n-1].Amount = tiers[n-1].Amount.Add(o.Amount)
			continue
		}
		tiers = append(tiers, domain.Tier{Rate: o.Rate, Amount: o.Amount})
	}

	return &Book{tiers: tiers, totalSupply: total}
}

// TotalSupply returns the sum of all offered amounts.
func (b *Book) TotalSupply() decimal.Decimal {
	return b.totalSupply
}

// Len returns the number of distinct rate tiers.
func (b *Book) Len() int {
	return len(b.tiers)
}

// Tiers returns a copy of the tiers in ascending rate order.
func (b *Book) Tiers() []domain.Tier {
	out := make([]domain.Tier, len(b.tiers))
	copy(out, b.tiers)
	return out
}

// Each calls fn for every tier in ascending rate order until fn returns false.
func (b *Book) Each(fn func(tier domain.Tier) bool) {
	for _, t := range b.tiers {
		if !fn(t) {
			return
		}
	}
}

// Capacity returns the aggregated amount offered at rate, or zero when no
// offer carries that rate.
func (b *Book) Capacity(rate decimal.Decimal) decimal.Decimal {
	i := sort.Search(len(b.tiers), func(i int) bool {
		return b.tiers[i].Rate.GreaterThanOrEqual(rate)
	})
	if i < len(b.tiers) && b.tiers[i].Rate.Equal(rate) {
		return b.tiers[i].Amount
	}
	return decimal.Zero
}
