package lending

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/LoanQuote_Go/internal/domain"
	"github.com/osse101/LoanQuote_Go/internal/utils"
)

var (
	one          = decimal.NewFromInt(1)
	monthsInYear = decimal.NewFromInt(domain.MonthsInYear)
	term         = decimal.NewFromInt(domain.RepaymentTerm)
)

// Repayment is the fixed monthly installment and the total repaid over the term.
type Repayment struct {
	Monthly decimal.Decimal
	Total   decimal.Decimal
}

// Amortize converts an allocation into level repayments over RepaymentTerm
// months, computing an annuity per tier.
//
// Each tier payment is rounded to cents before summing; the monthly figure is
// that sum. The total is the unrounded sum of tier payments over the whole
// term, rounded to cents once.
func Amortize(allocation domain.Allocation) Repayment {
	monthly := decimal.Zero
	exact := decimal.Zero
	for _, tier := range allocation {
		payment := TierPayment(tier.Rate, tier.Amount)
		exact = exact.Add(payment)
		monthly = monthly.Add(utils.RoundCurrency(payment))
	}

	return Repayment{
		Monthly: utils.RoundCurrency(monthly),
		Total:   utils.RoundCurrency(exact.Mul(term)),
	}
}

// TierPayment returns the unrounded monthly installment repaying principal
// at annualRate over RepaymentTerm months:
//
//	m * P * r / (r - 1), where m = annualRate / 12 and r = (1 + m)^N
//
// A zero rate degenerates to P / N.
func TierPayment(annualRate, principal decimal.Decimal) decimal.Decimal {
	monthlyRate := utils.Divide(annualRate, monthsInYear)
	if monthlyRate.IsZero() {
		return utils.Divide(principal, term)
	}
	r := utils.PowInt(one.Add(monthlyRate), domain.RepaymentTerm)
	return utils.Divide(monthlyRate.Mul(principal).Mul(r), r.Sub(one))
}
