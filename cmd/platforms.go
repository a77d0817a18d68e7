package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/resale"
	"github.com/etnz/resale/internal/logging"
	"github.com/etnz/resale/renderer"
	"github.com/google/subcommands"
)

type platformsCmd struct {
	year  string
	month int
	json  bool
}

func (*platformsCmd) Name() string     { return "platforms" }
func (*platformsCmd) Synopsis() string { return "split the sales of a month or a year by marketplace" }
func (*platformsCmd) Usage() string {
	return `resale platforms [-y <year>] [-m <month>] [-json]

  Sums purchases, sales and profit of the items sold on Vinted and on eBay.
  Sales tagged for no marketplace, or for both, are listed so that their tags
  can be fixed. Without -m, every month of the year is reported.
`
}

func (c *platformsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "y", "", "Year to report on. Defaults to the current year.")
	f.IntVar(&c.month, "m", 0, "Month to report on (1-12). Defaults to the whole year.")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON.")
}

func (c *platformsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month < 0 || c.month > 12 {
		fmt.Fprintf(os.Stderr, "Error: invalid month %d, want 1 to 12\n", c.month)
		return subcommands.ExitUsageError
	}
	reporter, closer, ok := openReporter(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer closer()

	scope := resale.ParseScope(c.year, reporter.Today())
	if scope.All {
		fmt.Fprintln(os.Stderr, "Error: platform reports need a single year")
		return subcommands.ExitUsageError
	}

	if c.month == 0 {
		months, err := reporter.PlatformYear(ctx, scope.Year)
		if err != nil {
			logging.Logger.WithError(err).Error("could not compute the platform report")
			return subcommands.ExitFailure
		}
		if c.json {
			return printJSON(months)
		}
		printMarkdown(renderer.PlatformYearMarkdown(scope.Year, months))
		return subcommands.ExitSuccess
	}

	p, err := reporter.Platforms(ctx, scope.Year, time.Month(c.month))
	if err != nil {
		logging.Logger.WithError(err).Error("could not compute the platform report")
		return subcommands.ExitFailure
	}
	if c.json {
		return printJSON(p)
	}
	printMarkdown(renderer.PlatformMarkdown(p))
	return subcommands.ExitSuccess
}
