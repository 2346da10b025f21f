package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the quoting tool
const Namespace = "loanquote"

// Market metric names
const (
	MetricNameOffersLoaded    = "offers_loaded_total"
	MetricNameMarketSupply    = "market_supply_amount"
	MetricNameMarketRateTiers = "market_rate_tiers"
)

// Quote metric names
const (
	MetricNameQuotesTotal     = "quotes_total"
	MetricNameQuoteDuration   = "quote_duration_seconds"
	MetricNameAllocationTiers = "allocation_tiers"
	MetricNameCacheLookups    = "quote_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// Market metric help text
const (
	HelpTextOffersLoaded    = "Total number of lender offers ingested"
	HelpTextMarketSupply    = "Total amount available across the loaded market"
	HelpTextMarketRateTiers = "Number of distinct rate tiers in the loaded market"
)

// Quote metric help text
const (
	HelpTextQuotesTotal     = "Total number of quotes computed, by outcome"
	HelpTextQuoteDuration   = "Time spent computing a single quote in seconds"
	HelpTextAllocationTiers = "Number of rate tiers drawn by a satisfied quote"
	HelpTextCacheLookups    = "Quote cache lookups, by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Label values
const (
	OutcomeAvailable   = "available"
	OutcomeUnavailable = "unavailable"
	OutcomeRejected    = "rejected"

	ResultHit  = "hit"
	ResultMiss = "miss"
)

// QuoteLatencyBuckets are tuned for sub-millisecond pure computation
var QuoteLatencyBuckets = []float64{.00001, .00005, .0001, .00025, .0005, .001, .005, .01}

// AllocationTierBuckets cover markets from a single tier to a few hundred
var AllocationTierBuckets = []float64{1, 2, 3, 5, 8, 13, 21, 55, 144}
