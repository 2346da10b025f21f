package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/osse101/LoanQuote_Go/internal/config"
	"github.com/osse101/LoanQuote_Go/internal/lending"
	"github.com/osse101/LoanQuote_Go/internal/logger"
	"github.com/osse101/LoanQuote_Go/internal/market"
	"github.com/osse101/LoanQuote_Go/internal/metrics"
	"github.com/osse101/LoanQuote_Go/internal/render"
	"github.com/osse101/LoanQuote_Go/internal/validation"
)

func quoteAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New(ErrMsgMarketFileRequired)
	}
	if c.NArg() > 1 {
		return fmt.Errorf(ErrMsgFlagsAfterFile, c.Args().First(), c.Args().Tail())
	}
	path := c.Args().First()

	cfg, err := config.Load(c.String(FlagConfig))
	if err != nil {
		return err
	}
	closer := initLogger(cfg, c.App.ErrWriter)
	defer closer.Close()

	ctx := logger.WithRequestID(c.Context, logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	err = runQuotes(ctx, c, cfg, path)
	if err != nil {
		log.Error(LogMsgCommandFailed, "error", err)
	}
	return err
}

func runQuotes(ctx context.Context, c *cli.Context, cfg *config.Config, path string) error {
	log := logger.FromContext(ctx)

	raw := c.StringSlice(FlagAmount)
	if len(raw) == 0 {
		return errors.New(ErrMsgAmountRequired)
	}
	amounts, err := parseAmounts(cfg.AmountRule(), raw)
	if err != nil {
		return err
	}
	opts, err := csvOptions(c)
	if err != nil {
		return err
	}
	src, err := market.Open(path, opts)
	if err != nil {
		return err
	}

	log.Info(LogMsgQuotingStarted, "market", path, "amounts", len(amounts))
	collector := metrics.NewCollector()
	svc, err := lending.NewServiceFromSource(ctx, src,
		lending.WithCacheSize(cfg.QuoteCacheSize),
		lending.WithMetrics(collector))
	if err != nil {
		return err
	}

	quotes, err := svc.QuoteAll(ctx, amounts)
	if err != nil {
		return err
	}

	renderer := render.New(cfg.CurrencySymbol, cfg.LanguageTag())
	if _, err := fmt.Fprintln(c.App.Writer, renderer.RenderAll(quotes)); err != nil {
		return err
	}
	log.Info(LogMsgQuotingFinished, "quotes", len(quotes))

	metricsFile := c.String(FlagMetricsFile)
	if metricsFile == "" {
		metricsFile = cfg.MetricsFile
	}
	if metricsFile != "" {
		if err := collector.WriteTextfile(metricsFile); err != nil {
			return err
		}
		log.Info(LogMsgMetricsWritten, "path", metricsFile)
	}
	return nil
}

// parseAmounts validates every requested amount before any quoting starts
func parseAmounts(rule validation.AmountRule, raw []string) ([]decimal.Decimal, error) {
	amounts := make([]decimal.Decimal, 0, len(raw))
	for _, s := range raw {
		amount, err := rule.Parse(s)
		if err != nil {
			return nil, err
		}
		amounts = append(amounts, decimal.NewFromInt(int64(amount)))
	}
	return amounts, nil
}
