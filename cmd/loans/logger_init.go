package main

import (
	"io"

	"github.com/osse101/LoanQuote_Go/internal/config"
	"github.com/osse101/LoanQuote_Go/internal/logger"
)

// initLogger initializes the logger from the app configuration. stdout is
// reserved for quotes, so console logs go to stderr.
func initLogger(cfg *config.Config, stderr io.Writer) io.Closer {
	return logger.InitLoggerTo(cfg.LoggerConfig(serviceName, version), stderr)
}
