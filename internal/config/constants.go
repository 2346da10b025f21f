package config

// Environment variable names
const (
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvLogFile        = "LOG_FILE"
	EnvLogMaxAgeDays  = "LOG_MAX_AGE_DAYS"
	EnvEnvironment    = "ENVIRONMENT"
	EnvCurrencySymbol = "CURRENCY_SYMBOL"
	EnvLanguage       = "REPORT_LANGUAGE"
	EnvQuoteCacheSize = "QUOTE_CACHE_SIZE"
	EnvMinLoanAmount  = "MIN_LOAN_AMOUNT"
	EnvMaxLoanAmount  = "MAX_LOAN_AMOUNT"
	EnvLoanAmountStep = "LOAN_AMOUNT_STEP"
	EnvMetricsFile    = "METRICS_FILE"
)

// Defaults
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultCurrencySymbol = "£"
	DefaultLanguage       = "en"
	DefaultQuoteCacheSize = 128
)

// Error messages
const (
	ErrMsgInvalidConfig = "invalid configuration"
	ErrMsgOpenConfig    = "failed to open config file %s: %w"
	ErrMsgDecodeConfig  = "failed to decode config file %s: %w"
)
