package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/etnz/resale"
	"github.com/etnz/resale/internal/logging"
	"github.com/etnz/resale/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	year string
	json bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the analytics report of a year" }
func (*reportCmd) Usage() string {
	return `resale report [-y <year>|all] [-json]

  Displays profit, ROI, sell-through rate, averages and inventory figures of
  a year. A year without any data falls back to the most recent year that has
  some. Use -y all to report on the whole history.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.year, "y", "", "Year to report on, or 'all'. Defaults to the current year.")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON.")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reporter, closer, ok := openReporter(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer closer()

	scope := resale.ParseScope(c.year, reporter.Today())
	report, err := reporter.Report(ctx, scope)
	if err != nil {
		logging.Logger.WithError(err).Error("could not compute the report")
		return subcommands.ExitFailure
	}

	if c.json {
		return printJSON(report)
	}
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}

func printJSON(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logging.Logger.WithError(err).Error("could not encode JSON")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
