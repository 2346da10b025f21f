package market

// Error message formats
const (
	ErrMsgOpenFileFailed = "failed to open market file %s: %w"
	ErrMsgLineFmt        = "line %d: %w"
	ErrMsgRowFmt         = "row %d: %w"
	ErrMsgParquetFailed  = "failed to read parquet market %s: %w"
	ErrMsgParquetWrite   = "failed to write parquet market %s: %w"
)

// Log messages
const (
	LogMsgMarketRead    = "Market file read"
	LogMsgMarketWritten = "Market snapshot written"
)
