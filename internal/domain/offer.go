package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Offer is a single lender's stated annual rate and available amount.
type Offer struct {
	LenderName string
	Rate       decimal.Decimal
	Amount     decimal.Decimal
}

// NewOffer validates and builds an Offer. Invalid values are rejected with an
// error wrapping ErrInvalidOffer and the specific reason.
func NewOffer(lenderName string, rate, amount decimal.Decimal) (Offer, error) {
	if strings.TrimSpace(lenderName) == "" {
		return Offer{}, fmt.Errorf("%w: %w", ErrInvalidOffer, ErrBlankLender)
	}
	if rate.IsNegative() {
		return Offer{}, fmt.Errorf("%w: %w: %s", ErrInvalidOffer, ErrNegativeRate, rate)
	}
	if amount.IsNegative() {
		return Offer{}, fmt.Errorf("%w: %w: %s", ErrInvalidOffer, ErrNegativeAmount, amount)
	}
	return Offer{LenderName: lenderName, Rate: rate, Amount: amount}, nil
}

// Equal reports whether both offers carry the same lender and numerically equal values.
func (o Offer) Equal(other Offer) bool {
	return o.LenderName == other.LenderName &&
		o.Rate.Equal(other.Rate) &&
		o.Amount.Equal(other.Amount)
}
