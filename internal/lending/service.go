package lending

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"

	"github.com/osse101/LoanQuote_Go/internal/domain"
	"github.com/osse101/LoanQuote_Go/internal/logger"
	"github.com/osse101/LoanQuote_Go/internal/metrics"
	"github.com/osse101/LoanQuote_Go/internal/offerbook"
)

// OfferSource yields the offers a Service is built from.
// market.Source satisfies it.
type OfferSource interface {
	Offers(ctx context.Context) ([]domain.Offer, error)
}

// Option configures a Service
type Option func(*options)

type options struct {
	cacheSize int
	metrics   *metrics.Collector
}

// WithCacheSize bounds the number of memoised quotes. Zero disables the cache.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithMetrics records quote and cache metrics on c
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) {
		o.metrics = c
	}
}

// Service quotes loans against one immutable market. It is safe for
// concurrent use.
type Service struct {
	book    *offerbook.Book
	cache   *lru.Cache[string, domain.LoanQuote]
	metrics *metrics.Collector
}

// NewService creates a Service quoting against book
func NewService(book *offerbook.Book, opts ...Option) (*Service, error) {
	o := options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Service{book: book, metrics: o.metrics}
	if o.cacheSize > 0 {
		cache, err := lru.New[string, domain.LoanQuote](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCreateCache, err)
		}
		s.cache = cache
	}
	return s, nil
}

// NewServiceFromSource loads every offer from src, builds the book and
// returns a Service over it.
func NewServiceFromSource(ctx context.Context, src OfferSource, opts ...Option) (*Service, error) {
	offers, err := src.Offers(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadMarketFailed, err)
	}

	book := offerbook.Build(offers)
	s, err := NewService(book, opts...)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordMarket(len(offers), book.Len(), book.TotalSupply())
	log := logger.FromContext(ctx)
	log.Info(LogMsgMarketLoaded,
		"offers", len(offers),
		"rate_tiers", book.Len(),
		"total_supply", book.TotalSupply().String())
	if s.cache == nil {
		log.Debug(LogMsgCacheDisabled)
	}
	return s, nil
}

// Book returns the market the Service quotes against
func (s *Service) Book() *offerbook.Book {
	return s.book
}

// Quote prices amount against the market. Numerically equal amounts share
// a cache entry.
func (s *Service) Quote(ctx context.Context, amount decimal.Decimal) (domain.LoanQuote, error) {
	log := logger.FromContext(ctx)
	key := amount.String()

	if s.cache != nil {
		if q, ok := s.cache.Get(key); ok {
			s.metrics.RecordCacheLookup(true)
			log.Debug(LogMsgQuoteCached, "amount", key)
			return q, nil
		}
		s.metrics.RecordCacheLookup(false)
	}

	start := time.Now()
	q, allocation, err := quote(s.book, amount)
	elapsed := time.Since(start)
	if err != nil {
		s.metrics.RecordQuote(metrics.OutcomeRejected, 0, elapsed)
		log.Warn(LogMsgQuoteRejected, "amount", key, "error", err)
		return domain.LoanQuote{}, fmt.Errorf(ErrMsgQuoteFailed, key, err)
	}

	outcome := metrics.OutcomeUnavailable
	if q.IsAvailable() {
		outcome = metrics.OutcomeAvailable
	}
	s.metrics.RecordQuote(outcome, len(allocation), elapsed)
	log.Debug(LogMsgQuoteComputed,
		"amount", key,
		"outcome", outcome,
		"tiers", len(allocation),
		"duration", elapsed)

	if s.cache != nil {
		s.cache.Add(key, q)
	}
	return q, nil
}

// QuoteAll prices every amount in order, stopping at the first error
func (s *Service) QuoteAll(ctx context.Context, amounts []decimal.Decimal) ([]domain.LoanQuote, error) {
	quotes := make([]domain.LoanQuote, 0, len(amounts))
	for _, amount := range amounts {
		q, err := s.Quote(ctx, amount)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}
