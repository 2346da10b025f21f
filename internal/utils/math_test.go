package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestRoundCurrency verifies half-even rounding to cents
func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"tie rounds down to even", "0.125", "0.12"},
		{"tie rounds up to even", "0.135", "0.14"},
		{"above tie rounds up", "0.1251", "0.13"},
		{"already at scale", "32.27", "32.27"},
		{"long fraction", "138.8888888888888888", "138.89"},
		{"zero", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, dec(tt.expected).Equal(RoundCurrency(dec(tt.value))),
				"RoundCurrency(%s) = %s, want %s", tt.value, RoundCurrency(dec(tt.value)), tt.expected)
		})
	}
}

// TestRoundRate verifies half-even rounding to rate precision
func TestRoundRate(t *testing.T) {
	assert.Equal(t, "0.070", RoundRate(dec("0.0705")).StringFixed(3))
	assert.Equal(t, "0.072", RoundRate(dec("0.0715")).StringFixed(3))
	assert.Equal(t, "0.133", RoundRate(dec("0.13333333")).StringFixed(3))
}

// TestDivide keeps enough digits for repayment math
func TestDivide(t *testing.T) {
	third := Divide(dec("1"), dec("3"))
	assert.Equal(t, "0.3333333333333333333333333333333333", third.String())

	monthly := Divide(dec("0.1"), dec("12"))
	assert.Equal(t, "0.0083333333333333333333333333333333", monthly.String())
}

// TestPowInt checks exact integer powers
func TestPowInt(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		exp      int
		expected string
	}{
		{"zero exponent", "1.5", 0, "1"},
		{"one exponent", "1.5", 1, "1.5"},
		{"square", "1.1", 2, "1.21"},
		{"odd exponent", "2", 5, "32"},
		{"term length", "1.01", 36, "1.430768783591580"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PowInt(dec(tt.base), tt.exp)
			if tt.name == "term length" {
				assert.Equal(t, tt.expected, got.Truncate(15).StringFixed(15))
				return
			}
			assert.True(t, dec(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestMin(t *testing.T) {
	assert.True(t, dec("1").Equal(Min(dec("1"), dec("2"))))
	assert.True(t, dec("1").Equal(Min(dec("2"), dec("1"))))
	assert.True(t, dec("1.0").Equal(Min(dec("1.00"), dec("1"))))
}

func TestParseDecimal(t *testing.T) {
	t.Run("parses trimmed literal", func(t *testing.T) {
		d, err := ParseDecimal(" 0.075 ")
		require.NoError(t, err)
		assert.Equal(t, "0.075", d.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseDecimal("  ")
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseDecimal("seven")
		assert.Error(t, err)
	})
}
