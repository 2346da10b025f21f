package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountRule_Parse_Valid(t *testing.T) {
	rule := DefaultAmountRule()

	for _, in := range []string{"3500", "1000", "15000", "1100", "5900", " 2000 "} {
		t.Run(in, func(t *testing.T) {
			_, err := rule.Parse(in)
			assert.NoError(t, err)
		})
	}
}

func TestAmountRule_Parse_Invalid(t *testing.T) {
	rule := DefaultAmountRule()

	tests := []struct {
		in   string
		want error
	}{
		{"", ErrAmountNotInteger},
		{"a", ErrAmountNotInteger},
		{"1000.5", ErrAmountNotInteger},
		{"0", ErrAmountOutOfRange},
		{"999", ErrAmountOutOfRange},
		{"900", ErrAmountOutOfRange},
		{"15100", ErrAmountOutOfRange},
		{"-1000", ErrAmountOutOfRange},
		{"1001", ErrAmountStep},
		{"7777", ErrAmountStep},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := rule.Parse(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestAmountRule_Parse_ReturnsValue(t *testing.T) {
	amount, err := DefaultAmountRule().Parse("1200")
	require.NoError(t, err)
	assert.Equal(t, 1200, amount)
}

func TestAmountRule_ZeroStepDisablesStepCheck(t *testing.T) {
	rule := AmountRule{Min: 1, Max: 10, Step: 0}
	assert.NoError(t, rule.Check(7))
}
