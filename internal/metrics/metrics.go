package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Collector owns a dedicated registry and the quoting metrics registered on it.
// All methods are safe for concurrent use and tolerate a nil receiver, so
// callers that do not collect metrics can pass nil.
type Collector struct {
	registry *prometheus.Registry

	OffersLoaded    prometheus.Counter
	MarketSupply    prometheus.Gauge
	MarketRateTiers prometheus.Gauge

	QuotesTotal     *prometheus.CounterVec
	QuoteDuration   prometheus.Histogram
	AllocationTiers prometheus.Histogram
	CacheLookups    *prometheus.CounterVec
}

// NewCollector creates a Collector backed by a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		OffersLoaded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameOffersLoaded,
			Help:      HelpTextOffersLoaded,
		}),
		MarketSupply: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameMarketSupply,
			Help:      HelpTextMarketSupply,
		}),
		MarketRateTiers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameMarketRateTiers,
			Help:      HelpTextMarketRateTiers,
		}),

		QuotesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameQuotesTotal,
				Help:      HelpTextQuotesTotal,
			},
			[]string{LabelOutcome},
		),
		QuoteDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameQuoteDuration,
			Help:      HelpTextQuoteDuration,
			Buckets:   QuoteLatencyBuckets,
		}),
		AllocationTiers: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameAllocationTiers,
			Help:      HelpTextAllocationTiers,
			Buckets:   AllocationTierBuckets,
		}),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameCacheLookups,
				Help:      HelpTextCacheLookups,
			},
			[]string{LabelResult},
		),
	}
}

// Registry exposes the underlying registry, e.g. for gathering in tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordMarket records the shape of a freshly loaded market.
func (c *Collector) RecordMarket(offers, tiers int, supply decimal.Decimal) {
	if c == nil {
		return
	}
	c.OffersLoaded.Add(float64(offers))
	c.MarketRateTiers.Set(float64(tiers))
	c.MarketSupply.Set(supply.InexactFloat64())
}

// RecordQuote records one computed quote.
func (c *Collector) RecordQuote(outcome string, tiers int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.QuotesTotal.WithLabelValues(outcome).Inc()
	c.QuoteDuration.Observe(elapsed.Seconds())
	if outcome == OutcomeAvailable {
		c.AllocationTiers.Observe(float64(tiers))
	}
}

// RecordCacheLookup records a quote cache hit or miss.
func (c *Collector) RecordCacheLookup(hit bool) {
	if c == nil {
		return
	}
	result := ResultMiss
	if hit {
		result = ResultHit
	}
	c.CacheLookups.WithLabelValues(result).Inc()
}

// WriteTextfile writes every registered metric to path in the text exposition
// format read by the node exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
