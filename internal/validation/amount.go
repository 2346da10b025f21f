package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Loan amount defaults
const (
	DefaultMinLoanAmount = 1000
	DefaultMaxLoanAmount = 15000
	DefaultLoanStep      = 100
)

var (
	ErrAmountNotInteger = errors.New("loan amount must be an integer")
	ErrAmountOutOfRange = errors.New("loan amount out of range")
	ErrAmountStep       = errors.New("loan amount must be a multiple of the step")
)

// AmountRule bounds the loan amounts a borrower may request
type AmountRule struct {
	Min  int
	Max  int
	Step int
}

// DefaultAmountRule returns the standard 1000..15000 rule in steps of 100
func DefaultAmountRule() AmountRule {
	return AmountRule{Min: DefaultMinLoanAmount, Max: DefaultMaxLoanAmount, Step: DefaultLoanStep}
}

// Check validates an already-parsed amount
func (r AmountRule) Check(amount int) error {
	if amount < r.Min || amount > r.Max {
		return fmt.Errorf("%w: %d is not within [%d, %d]", ErrAmountOutOfRange, amount, r.Min, r.Max)
	}
	if r.Step > 0 && amount%r.Step != 0 {
		return fmt.Errorf("%w: %d is not a multiple of %d", ErrAmountStep, amount, r.Step)
	}
	return nil
}

// Parse parses and validates a textual amount
func (r AmountRule) Parse(s string) (int, error) {
	amount, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrAmountNotInteger, s)
	}
	if err := r.Check(amount); err != nil {
		return 0, err
	}
	return amount, nil
}
