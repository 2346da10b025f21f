package market

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/osse101/LoanQuote_Go/internal/domain"
	"github.com/osse101/LoanQuote_Go/internal/logger"
	"github.com/osse101/LoanQuote_Go/internal/utils"
	"github.com/osse101/LoanQuote_Go/internal/validation"
)

// DefaultSeparator is used when CSVOptions.Separator is zero
const DefaultSeparator = ','

// columns per market row: lender, rate, amount
const rowColumns = 3

// CSVOptions configures the delimited reader
type CSVOptions struct {
	Separator  rune // zero means DefaultSeparator
	SkipHeader bool // drop the first row
}

// CSVReader reads offers from a delimited text file
type CSVReader struct {
	path      string
	opts      CSVOptions
	validator *validation.OfferValidator
}

// NewCSVReader creates a reader for path. It fails only when the separator
// cannot be used for delimited text.
func NewCSVReader(path string, opts CSVOptions) (*CSVReader, error) {
	if opts.Separator == 0 {
		opts.Separator = DefaultSeparator
	}
	if !validSeparator(opts.Separator) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSeparator, opts.Separator)
	}
	return &CSVReader{path: path, opts: opts, validator: validation.Default()}, nil
}

// Offers reads and validates every row of the file
func (r *CSVReader) Offers(ctx context.Context) ([]domain.Offer, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFileFailed, r.path, err)
	}
	defer f.Close()

	offers, err := r.read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}

	logger.FromContext(ctx).Debug(LogMsgMarketRead, "path", r.path, "offers", len(offers))
	return offers, nil
}

func (r *CSVReader) read(in io.Reader) ([]domain.Offer, error) {
	cr := csv.NewReader(in)
	cr.Comma = r.opts.Separator
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var offers []domain.Offer
	for first := true; ; first = false {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRow, err)
		}
		line, _ := cr.FieldPos(0)
		if first && r.opts.SkipHeader {
			continue
		}

		offer, err := r.convert(row)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgLineFmt, line, err)
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

func (r *CSVReader) convert(row []string) (domain.Offer, error) {
	if len(row) != rowColumns {
		return domain.Offer{}, fmt.Errorf("%w: expected %d cells, got %d: %q", ErrMalformedRow, rowColumns, len(row), row)
	}
	return toOffer(r.validator, row[0], row[1], row[2])
}

// toOffer parses the textual cells shared by every market format
func toOffer(v *validation.OfferValidator, lender, rate, amount string) (domain.Offer, error) {
	parsedRate, err := utils.ParseDecimal(rate)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("%w: rate: %w", ErrMalformedRow, err)
	}
	parsedAmount, err := utils.ParseDecimal(amount)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("%w: amount: %w", ErrMalformedRow, err)
	}
	return v.ToOffer(validation.OfferRecord{
		LenderName: lender,
		Rate:       parsedRate,
		Amount:     parsedAmount,
	})
}

func validSeparator(r rune) bool {
	return r != '"' && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}
