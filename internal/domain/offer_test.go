package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffer(t *testing.T) {
	tests := []struct {
		name    string
		lender  string
		rate    string
		amount  string
		wantErr error
	}{
		{"valid", "Bob", "0.075", "640", nil},
		{"zero rate and amount", "Jane", "0", "0", nil},
		{"blank lender", "  ", "0.075", "640", ErrBlankLender},
		{"empty lender", "", "0.075", "640", ErrBlankLender},
		{"negative rate", "Bob", "-0.01", "640", ErrNegativeRate},
		{"negative amount", "Bob", "0.075", "-1", ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewOffer(tt.lender, decimal.RequireFromString(tt.rate), decimal.RequireFromString(tt.amount))

			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.lender, o.LenderName)
				assert.True(t, decimal.RequireFromString(tt.rate).Equal(o.Rate))
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidOffer))
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Contains(t, err.Error(), ErrMsgInvalidOffer)
		})
	}
}

func TestOffer_Equal(t *testing.T) {
	a, err := NewOffer("Bob", decimal.RequireFromString("0.07"), decimal.RequireFromString("640"))
	require.NoError(t, err)
	b, err := NewOffer("Bob", decimal.RequireFromString("0.070"), decimal.RequireFromString("640.00"))
	require.NoError(t, err)
	c, err := NewOffer("Jane", decimal.RequireFromString("0.07"), decimal.RequireFromString("640"))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestAllocation_Sums(t *testing.T) {
	a := Allocation{
		{Rate: decimal.RequireFromString("0.069"), Amount: decimal.RequireFromString("480")},
		{Rate: decimal.RequireFromString("0.071"), Amount: decimal.RequireFromString("520")},
	}

	assert.Equal(t, "1000", a.Total().String())
	assert.Equal(t, "70.04", a.WeightedSum().String())
	assert.True(t, Allocation(nil).Total().IsZero())
}
