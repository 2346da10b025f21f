package main

import (
	"context"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/osse101/LoanQuote_Go/internal/config"
	"github.com/osse101/LoanQuote_Go/internal/logger"
	"github.com/osse101/LoanQuote_Go/internal/market"
)

var convertCmd = &cli.Command{
	Name:      "convert",
	Usage:     "Rewrite a market file as a Parquet snapshot",
	ArgsUsage: "<input> <output.parquet>",
	Flags: []cli.Flag{
		configFlag(),
		separatorFlag(),
		lineSkipFlag(),
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return errors.New(ErrMsgConvertArgs)
		}
		var (
			in  = c.Args().Get(0)
			out = c.Args().Get(1)
		)

		cfg, err := config.Load(c.String(FlagConfig))
		if err != nil {
			return err
		}
		closer := initLogger(cfg, c.App.ErrWriter)
		defer closer.Close()

		ctx := logger.WithRequestID(c.Context, logger.GenerateRequestID())
		if err := convert(ctx, c, in, out); err != nil {
			logger.FromContext(ctx).Error(LogMsgCommandFailed, "error", err)
			return err
		}
		logger.FromContext(ctx).Info(LogMsgConvertFinished, "input", in, "output", out)
		return nil
	},
}

func convert(ctx context.Context, c *cli.Context, in, out string) error {
	opts, err := csvOptions(c)
	if err != nil {
		return err
	}
	src, err := market.Open(in, opts)
	if err != nil {
		return err
	}
	offers, err := src.Offers(ctx)
	if err != nil {
		return err
	}
	return market.WriteParquet(ctx, out, offers)
}
