package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/resale/internal/logging"
	"github.com/google/subcommands"
)

type yearsCmd struct{}

func (*yearsCmd) Name() string     { return "years" }
func (*yearsCmd) Synopsis() string { return "list the years with ledger activity" }
func (*yearsCmd) Usage() string {
	return `resale years

  Lists, most recent first, the years in which something was bought or sold.
`
}

func (*yearsCmd) SetFlags(*flag.FlagSet) {}

func (*yearsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reporter, closer, ok := openReporter(ctx)
	if !ok {
		return subcommands.ExitFailure
	}
	defer closer()

	years, err := reporter.Years(ctx)
	if err != nil {
		logging.Logger.WithError(err).Error("could not read the ledger")
		return subcommands.ExitFailure
	}
	for _, y := range years {
		fmt.Println(y)
	}
	return subcommands.ExitSuccess
}
