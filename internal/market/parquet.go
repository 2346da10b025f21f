package market

import (
	"context"
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/osse101/LoanQuote_Go/internal/domain"
	"github.com/osse101/LoanQuote_Go/internal/logger"
	"github.com/osse101/LoanQuote_Go/internal/validation"
)

// offerRow is the Parquet layout of a market snapshot. Rate and amount are
// stored as decimal strings so no precision is lost to floating point.
type offerRow struct {
	Lender string `parquet:"name=lender, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rate   string `parquet:"name=rate, type=BYTE_ARRAY, convertedtype=UTF8"`
	Amount string `parquet:"name=amount, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// ParquetReader reads offers from a Parquet market snapshot
type ParquetReader struct {
	path      string
	validator *validation.OfferValidator
}

// NewParquetReader creates a reader for path
func NewParquetReader(path string) *ParquetReader {
	return &ParquetReader{path: path, validator: validation.Default()}
}

// Offers reads and validates every row of the snapshot
func (r *ParquetReader) Offers(ctx context.Context) ([]domain.Offer, error) {
	fr, err := local.NewLocalFileReader(r.path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFileFailed, r.path, err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(offerRow), 1)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParquetFailed, r.path, err)
	}
	defer pr.ReadStop()

	rows := make([]offerRow, int(pr.GetNumRows()))
	if err := pr.Read(&rows); err != nil {
		return nil, fmt.Errorf(ErrMsgParquetFailed, r.path, err)
	}

	offers := make([]domain.Offer, 0, len(rows))
	for i, row := range rows {
		offer, err := toOffer(r.validator, row.Lender, row.Rate, row.Amount)
		if err != nil {
			return nil, fmt.Errorf("%s: "+ErrMsgRowFmt, r.path, i+1, err)
		}
		offers = append(offers, offer)
	}

	logger.FromContext(ctx).Debug(LogMsgMarketRead, "path", r.path, "offers", len(offers))
	return offers, nil
}

// WriteParquet stores offers as a Parquet market snapshot at path
func WriteParquet(ctx context.Context, path string, offers []domain.Offer) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf(ErrMsgParquetWrite, path, err)
	}

	pw, err := writer.NewParquetWriter(fw, new(offerRow), 1)
	if err != nil {
		fw.Close()
		return fmt.Errorf(ErrMsgParquetWrite, path, err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, o := range offers {
		row := &offerRow{Lender: o.LenderName, Rate: o.Rate.String(), Amount: o.Amount.String()}
		if err := pw.Write(row); err != nil {
			fw.Close()
			return fmt.Errorf(ErrMsgParquetWrite, path, err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		fw.Close()
		return fmt.Errorf(ErrMsgParquetWrite, path, err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf(ErrMsgParquetWrite, path, err)
	}

	logger.FromContext(ctx).Debug(LogMsgMarketWritten, "path", path, "offers", len(offers))
	return nil
}
