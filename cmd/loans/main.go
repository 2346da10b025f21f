// Command loans quotes fixed-term loans against a market of lender offers.
package main

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/osse101/LoanQuote_Go/internal/market"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if err := newApp(stdout, stderr).Run(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            serviceName,
		Usage:           "Quote 36 month loans against a market of lender offers",
		ArgsUsage:       "<market-file>",
		Version:         version,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringSliceFlag{
				Name:    FlagAmount,
				Aliases: []string{"a"},
				Usage:   "loan amount to quote, repeatable",
			},
			separatorFlag(),
			lineSkipFlag(),
			&cli.StringFlag{
				Name:  FlagMetricsFile,
				Usage: "write prometheus metrics to this textfile after quoting",
			},
		},
		Action: quoteAction,
		Commands: []*cli.Command{
			convertCmd,
		},
	}
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    FlagConfig,
		Aliases: []string{"c"},
		Usage:   "YAML config file",
	}
}

func separatorFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    FlagSeparator,
		Aliases: []string{"s"},
		Value:   string(market.DefaultSeparator),
		Usage:   `market file cell separator, "\t" for tab`,
	}
}

func lineSkipFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    FlagLineSkip,
		Aliases: []string{"l"},
		Usage:   "skip the header row of the market file",
	}
}

// csvOptions reads the shared market flags
func csvOptions(c *cli.Context) (market.CSVOptions, error) {
	sep, err := parseSeparator(c.String(FlagSeparator))
	if err != nil {
		return market.CSVOptions{}, err
	}
	return market.CSVOptions{Separator: sep, SkipHeader: c.Bool(FlagLineSkip)}, nil
}

func parseSeparator(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf(ErrMsgSeparator, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
