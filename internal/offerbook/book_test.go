package offerbook

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LoanQuote_Go/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func offer(t *testing.T, lender, rate, amount string) domain.Offer {
	t.Helper()
	o, err := domain.NewOffer(lender, dec(rate), dec(amount))
	require.NoError(t, err)
	return o
}

func sampleMarket(t *testing.T) []domain.Offer {
	t.Helper()
	return []domain.Offer{
		offer(t, "Bob", "0.075", "640"),
		offer(t, "Jane", "0.069", "480"),
		offer(t, "Fred", "0.071", "520"),
		offer(t, "Mary", "0.104", "170"),
		offer(t, "John", "0.081", "320"),
		offer(t, "Dave", "0.074", "140"),
		offer(t, "Angela", "0.071", "60"),
	}
}

func sumTiers(tiers []domain.Tier) decimal.Decimal {
	total := decimal.Zero
	for _, tier := range tiers {
		total = total.Add(tier.Amount)
	}
	return total
}

func TestBuild_MergesAndSorts(t *testing.T) {
	book := Build(sampleMarket(t))

	tiers := book.Tiers()
	require.Len(t, tiers, 6, "two offers at 0.071 merge into one tier")
	assert.Equal(t, 6, book.Len())

	expected := []struct{ rate, amount string }{
		{"0.069", "480"},
		{"0.071", "580"},
		{"0.074", "140"},
		{"0.075", "640"},
		{"0.081", "320"},
		{"0.104", "170"},
	}
	for i, e := range expected {
		assert.True(t, dec(e.rate).Equal(tiers[i].Rate), "tier %d rate = %s", i, tiers[i].Rate)
		assert.True(t, dec(e.amount).Equal(tiers[i].Amount), "tier %d amount = %s", i, tiers[i].Amount)
	}

	assert.True(t, dec("2330").Equal(book.TotalSupply()))
	assert.True(t, book.TotalSupply().Equal(sumTiers(tiers)), "tier amounts must sum to total supply")
}

func TestBuild_MergesNumericallyEqualRates(t *testing.T) {
	book := Build([]domain.Offer{
		offer(t, "A", "0.1", "100"),
		offer(t, "B", "0.10", "50"),
		offer(t, "C", "0.100", "25"),
	})

	require.Equal(t, 1, book.Len())
	assert.True(t, dec("175").Equal(book.Capacity(dec("0.1"))))
}

func TestBuild_Empty(t *testing.T) {
	book := Build(nil)

	assert.Equal(t, 0, book.Len())
	assert.True(t, book.TotalSupply().IsZero())
	assert.Empty(t, book.Tiers())
}

func TestBuild_ZeroAmountOffers(t *testing.T) {
	book := Build([]domain.Offer{
		offer(t, "A", "0.05", "0"),
		offer(t, "B", "0.06", "10"),
	})

	assert.Equal(t, 2, book.Len())
	assert.True(t, dec("10").Equal(book.TotalSupply()))
}

func TestBuild_DoesNotRetainInput(t *testing.T) {
	offers := sampleMarket(t)
	book := Build(offers)

	offers[0].Amount = dec("999999")
	assert.True(t, dec("2330").Equal(book.TotalSupply()))
	assert.True(t, dec("640").Equal(book.Capacity(dec("0.075"))))
}

func TestTiers_ReturnsCopy(t *testing.T) {
	book := Build(sampleMarket(t))

	tiers := book.Tiers()
	tiers[0].Amount = dec("1")

	assert.True(t, dec("480").Equal(book.Tiers()[0].Amount))
}

func TestCapacity(t *testing.T) {
	book := Build(sampleMarket(t))

	t.Run("known rate", func(t *testing.T) {
		assert.True(t, dec("580").Equal(book.Capacity(dec("0.071"))))
	})

	t.Run("unknown rate", func(t *testing.T) {
		assert.True(t, book.Capacity(dec("0.070")).IsZero())
	})

	t.Run("rate above all tiers", func(t *testing.T) {
		assert.True(t, book.Capacity(dec("0.5")).IsZero())
	})
}

func TestEach_StopsEarly(t *testing.T) {
	book := Build(sampleMarket(t))

	var seen []decimal.Decimal
	book.Each(func(tier domain.Tier) bool {
		seen = append(seen, tier.Rate)
		return len(seen) < 2
	})

	require.Len(t, seen, 2)
	assert.True(t, dec("0.069").Equal(seen[0]))
	assert.True(t, dec("0.071").Equal(seen[1]))
}

func TestBuild_ConcurrentReaders(t *testing.T) {
	book := Build(sampleMarket(t))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, book.TotalSupply().Equal(sumTiers(book.Tiers())))
		}()
	}
	wg.Wait()
}
