package lending

// Log messages
const (
	LogMsgMarketLoaded  = "Market loaded"
	LogMsgQuoteComputed = "Quote computed"
	LogMsgQuoteCached   = "Quote served from cache"
	LogMsgQuoteRejected = "Quote rejected"
	LogMsgCacheDisabled = "Quote cache disabled"
)

// Error message formats
const (
	ErrMsgLoadMarketFailed = "failed to load market: %w"
	ErrMsgCreateCache      = "failed to create quote cache: %w"
	ErrMsgQuoteFailed      = "failed to quote %s: %w"
)

// DefaultCacheSize bounds the quote cache when no size is configured
const DefaultCacheSize = 128
