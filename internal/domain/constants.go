package domain

// Loan term constants
const (
	// RepaymentTerm is the number of fixed monthly installments of every quote.
	RepaymentTerm = 36
	MonthsInYear  = 12
)

// Decimal precision constants
const (
	// CurrencyScale is the number of decimal places kept for money values.
	CurrencyScale = 2
	// RateScale is the number of decimal places kept for a blended annual rate.
	RateScale = 3
	// WorkingPrecision is the number of decimal places carried by intermediate
	// divisions, enough for 34 significant digits on sub-unit rates.
	WorkingPrecision = 34
)

// UnavailableMessage is the fixed text shown when the market cannot satisfy a request.
const UnavailableMessage = "Lending for the specified amount is currently unavailable"
