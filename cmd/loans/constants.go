package main

// Flag names
const (
	FlagConfig      = "config"
	FlagAmount      = "amount"
	FlagSeparator   = "sep"
	FlagLineSkip    = "line-skip"
	FlagMetricsFile = "metrics-file"
)

// Log messages
const (
	LogMsgQuotingStarted  = "Quoting started"
	LogMsgQuotingFinished = "Quoting finished"
	LogMsgConvertFinished = "Market converted"
	LogMsgMetricsWritten  = "Metrics written"
	LogMsgCommandFailed   = "Command failed"
)

// Error messages
const (
	ErrMsgMarketFileRequired = "a market file is required"
	ErrMsgAmountRequired     = "at least one --amount is required"
	ErrMsgFlagsAfterFile     = "unexpected arguments after the market file %q: %v (flags must come before the file)"
	ErrMsgConvertArgs        = "convert needs an input market file and an output parquet file"
	ErrMsgSeparator          = "separator must be a single character, got %q"
)

const serviceName = "loans"
