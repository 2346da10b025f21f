package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Offer errors
	ErrMsgInvalidOffer   = "invalid offer"
	ErrMsgBlankLender    = "lender name must not be blank"
	ErrMsgNegativeRate   = "rate must be non-negative"
	ErrMsgNegativeAmount = "available amount must be non-negative"

	// Request errors
	ErrMsgInvalidAmount = "loan amount must be non-negative"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidOffer is the parent of every offer construction failure.
	ErrInvalidOffer = errors.New(ErrMsgInvalidOffer)

	ErrBlankLender    = errors.New(ErrMsgBlankLender)
	ErrNegativeRate   = errors.New(ErrMsgNegativeRate)
	ErrNegativeAmount = errors.New(ErrMsgNegativeAmount)

	// ErrInvalidAmount is returned when a quote is requested for a negative amount.
	ErrInvalidAmount = errors.New(ErrMsgInvalidAmount)
)
