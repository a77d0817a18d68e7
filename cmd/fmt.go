package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/resale"
	"github.com/etnz/resale/internal/config"
	"github.com/etnz/resale/internal/logging"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type fmtCmd struct {
	dryRun bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `resale fmt [-n]

  Validates and formats the ledger files. This command reads all transactions,
  gives an id to the ones without, reports inconsistencies (negative prices,
  sales before purchases, duplicate ids), sorts them by purchase date, and
  writes them back in a canonical JSONL format.
  Inconsistencies are only reported, never fixed.

Usage Examples:
# Formats the default ledger file in place.
$ resale fmt

# Prints the formatted ledger instead.
$ resale fmt -n
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "Print the formatted ledgers on stdout instead of rewriting the files.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, err := Settings()
	if err != nil {
		logging.Logger.WithError(err).Error("invalid configuration")
		return subcommands.ExitFailure
	}
	if settings.Store != config.StoreFile {
		fmt.Fprintf(os.Stderr, "Error: fmt only formats ledger files, the store is %q\n", settings.Store)
		return subcommands.ExitUsageError
	}

	ledgers, err := resale.FileStore{Path: settings.LedgerPath}.Ledgers()
	if err != nil {
		logging.Logger.WithError(err).Error("could not load ledgers")
		return subcommands.ExitFailure
	}
	if len(ledgers) == 0 {
		logging.Logger.Warn("no ledgers found to format")
		return subcommands.ExitSuccess
	}

	status := subcommands.ExitSuccess
	for _, ledger := range ledgers {
		log := logging.Logger.WithField("ledger", ledger.Name())
		if n := ledger.AssignIDs(); n > 0 {
			log.WithField("count", n).Info("assigned ids to transactions")
		}
		reportProblems(log, ledger.Validate())

		if c.dryRun {
			if err := resale.EncodeLedger(os.Stdout, ledger); err != nil {
				log.WithError(err).Error("could not encode ledger")
				status = subcommands.ExitFailure
			}
			continue
		}
		if err := resale.SaveLedger(ledger.Path(), ledger); err != nil {
			log.WithError(err).Error("could not save formatted ledger")
			status = subcommands.ExitFailure
			continue
		}
		log.Info("formatted ledger")
	}
	return status
}

// reportProblems logs each of the joined validation errors as a warning.
func reportProblems(log *logrus.Entry, err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			reportProblems(log, e)
		}
		return
	}
	log.Warn(err.Error())
}
