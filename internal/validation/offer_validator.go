package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/osse101/LoanQuote_Go/internal/domain"
)

// OfferRecord is one raw market row after parsing, before it becomes a domain.Offer.
type OfferRecord struct {
	LenderName string          `validate:"required,notblank"`
	Rate       decimal.Decimal `validate:"gte=0"`
	Amount     decimal.Decimal `validate:"gte=0"`
}

// OfferValidator validates offer records using struct tags
type OfferValidator struct {
	validate *validator.Validate
}

var (
	defaultValidator *OfferValidator
	initOnce         sync.Once
)

// NewOfferValidator creates a validator with the decimal and notblank rules registered
func NewOfferValidator() *OfferValidator {
	v := validator.New()

	_ = v.RegisterValidation("notblank", validators.NotBlank)

	// Decimals are validated by sign so gte=0 is exact for any magnitude
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.Sign()
		}
		return nil
	}, decimal.Decimal{})

	return &OfferValidator{validate: v}
}

// Default returns the shared validator instance
func Default() *OfferValidator {
	initOnce.Do(func() {
		defaultValidator = NewOfferValidator()
	})
	return defaultValidator
}

// Validate checks a record and returns an error wrapping domain.ErrInvalidOffer
// that names every failing field.
func (v *OfferValidator) Validate(record OfferRecord) error {
	if err := v.validate.Struct(record); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidOffer, describe(FormatValidationError(err)))
	}
	return nil
}

// ToOffer validates record and converts it into a domain.Offer
func (v *OfferValidator) ToOffer(record OfferRecord) (domain.Offer, error) {
	if err := v.Validate(record); err != nil {
		return domain.Offer{}, err
	}
	return domain.NewOffer(strings.TrimSpace(record.LenderName), record.Rate, record.Amount)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by lower-cased field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid record"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "notblank":
			errs[field] = domain.ErrMsgBlankLender
		case "gte":
			errs[field] = "Must be non-negative"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func describe(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+errs[k])
	}
	return strings.Join(parts, "; ")
}
