package domain

import "github.com/shopspring/decimal"

// Tier is one distinct annual rate bucket together with an amount. In an
// offer book the amount is the aggregated capacity at that rate; in an
// allocation it is the principal drawn from that rate.
type Tier struct {
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

// Allocation is the principal drawn per tier for one request, in ascending
// rate order.
type Allocation []Tier

// Total returns the sum of all principal in the allocation.
func (a Allocation) Total() decimal.Decimal {
	total := decimal.Zero
	for _, t := range a {
		total = total.Add(t.Amount)
	}
	return total
}

// WeightedSum returns the sum of rate * principal over all tiers.
func (a Allocation) WeightedSum() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range a {
		sum = sum.Add(t.Rate.Mul(t.Amount))
	}
	return sum
}
