package lending

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/LoanQuote_Go/internal/domain"
	"github.com/osse101/LoanQuote_Go/internal/utils"
)

// BlendRate returns the amount-weighted average annual rate of allocation,
// rounded half-even to RateScale places. A zero request has no meaningful
// rate and is reported as zero.
func BlendRate(allocation domain.Allocation, requested decimal.Decimal) decimal.Decimal {
	if requested.IsZero() {
		return decimal.Zero.RoundBank(domain.RateScale)
	}
	return utils.RoundRate(utils.Divide(allocation.WeightedSum(), requested))
}
