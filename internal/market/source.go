// Package market ingests lender offers from delimited and Parquet market files.
package market

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/osse101/LoanQuote_Go/internal/domain"
)

// ParquetExtension selects the Parquet reader in Open
const ParquetExtension = ".parquet"

var (
	// ErrMalformedRow is returned for rows that do not hold lender, rate and amount
	ErrMalformedRow = errors.New("malformed market row")
	// ErrUnsupportedSeparator is returned for separators the delimited reader cannot use
	ErrUnsupportedSeparator = errors.New("unsupported separator")
)

// Source yields the validated offers of one market snapshot
type Source interface {
	Offers(ctx context.Context) ([]domain.Offer, error)
}

// Open picks a reader for path by extension: Parquet for ".parquet",
// delimited text for anything else.
func Open(path string, opts CSVOptions) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ParquetExtension) {
		return NewParquetReader(path), nil
	}
	return NewCSVReader(path, opts)
}
