package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordQuote(t *testing.T) {
	c := NewCollector()

	c.RecordQuote(OutcomeAvailable, 2, time.Millisecond)
	c.RecordQuote(OutcomeAvailable, 1, time.Millisecond)
	c.RecordQuote(OutcomeUnavailable, 0, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.QuotesTotal.WithLabelValues(OutcomeAvailable)))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.QuotesTotal.WithLabelValues(OutcomeUnavailable)))
	assert.Equal(t, 2, testutil.CollectAndCount(c.QuotesTotal))
}

func TestRecordQuote_Histograms(t *testing.T) {
	c := NewCollector()

	c.RecordQuote(OutcomeAvailable, 2, 3*time.Millisecond)
	c.RecordQuote(OutcomeRejected, 0, time.Millisecond)

	var duration dto.Metric
	require.NoError(t, c.QuoteDuration.Write(&duration))
	assert.Equal(t, uint64(2), duration.GetHistogram().GetSampleCount())

	// only available quotes carry an allocation
	var tiers dto.Metric
	require.NoError(t, c.AllocationTiers.Write(&tiers))
	assert.Equal(t, uint64(1), tiers.GetHistogram().GetSampleCount())
	assert.Equal(t, float64(2), tiers.GetHistogram().GetSampleSum())
}

func TestRecordMarket(t *testing.T) {
	c := NewCollector()

	c.RecordMarket(7, 6, decimal.NewFromInt(2330))

	assert.Equal(t, float64(7), testutil.ToFloat64(c.OffersLoaded))
	assert.Equal(t, float64(6), testutil.ToFloat64(c.MarketRateTiers))
	assert.Equal(t, float64(2330), testutil.ToFloat64(c.MarketSupply))
}

func TestRecordCacheLookup(t *testing.T) {
	c := NewCollector()

	c.RecordCacheLookup(true)
	c.RecordCacheLookup(false)
	c.RecordCacheLookup(false)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.CacheLookups.WithLabelValues(ResultHit)))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.CacheLookups.WithLabelValues(ResultMiss)))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.RecordMarket(1, 1, decimal.NewFromInt(1))
		c.RecordQuote(OutcomeAvailable, 1, time.Millisecond)
		c.RecordCacheLookup(true)
	})
}

func TestWriteTextfile(t *testing.T) {
	c := NewCollector()
	c.RecordQuote(OutcomeAvailable, 3, time.Millisecond)

	path := filepath.Join(t.TempDir(), "loanquote.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `loanquote_quotes_total{outcome="available"} 1`)
	assert.Contains(t, string(data), "loanquote_allocation_tiers_bucket")
}

func TestWriteTextfile_BadPath(t *testing.T) {
	c := NewCollector()

	err := c.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	assert.Error(t, err)
}
