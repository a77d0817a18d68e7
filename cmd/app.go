// Package cmd implements the resale command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/resale"
	"github.com/etnz/resale/internal/config"
	"github.com/etnz/resale/internal/logging"
	"github.com/etnz/resale/internal/store/mysqlstore"
	"github.com/etnz/resale/internal/store/pgstore"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&platformsCmd{}, "reports")
	c.Register(&yearsCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")

	c.Register(&serveCmd{}, "server")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerPath = flag.String("ledger", "", "Ledger file or directory of .jsonl ledgers. Overrides "+config.EnvLedgerPath+".")
var storeKind = flag.String("store", "", "Ledger store: file, postgres or mysql. Overrides "+config.EnvStore+".")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error. Overrides "+config.EnvLogLevel+".")
var rawMarkdown = flag.Bool("raw", false, "Print reports as raw markdown instead of rendering them for the terminal.")

var (
	settingsOnce sync.Once
	settingsVal  config.Config
	settingsErr  error
)

// Settings returns the configuration: the .env file and the environment,
// overridden by the global flags. It also sets up logging and the currency.
func Settings() (config.Config, error) {
	settingsOnce.Do(func() {
		settingsVal, settingsErr = config.Load()
		if *ledgerPath != "" {
			settingsVal.LedgerPath = *ledgerPath
		}
		if *storeKind != "" {
			settingsVal.Store = *storeKind
		}
		if *logLevel != "" {
			settingsVal.LogLevel = *logLevel
		}
		logging.Init(settingsVal.LogLevel, settingsVal.LogFormat, os.Stderr)
		resale.Currency = settingsVal.Currency
	})
	return settingsVal, settingsErr
}

// OpenStore opens the configured ledger store. The returned function
// releases it.
func OpenStore(ctx context.Context, c config.Config) (resale.Store, func() error, error) {
	noop := func() error { return nil }
	switch c.Store {
	case config.StoreFile:
		return resale.FileStore{Path: c.LedgerPath}, noop, nil
	case config.StorePostgres:
		s, err := pgstore.Open(c.DB)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	case config.StoreMySQL:
		s, err := mysqlstore.Open(ctx, c.DB)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown store %q", c.Store)
	}
}

// openReporter opens the store and returns a reporter on it, logging failures.
func openReporter(ctx context.Context) (*resale.Reporter, func() error, bool) {
	c, err := Settings()
	if err != nil {
		logging.Logger.WithError(err).Error("invalid configuration")
		return nil, nil, false
	}
	store, closer, err := OpenStore(ctx, c)
	if err != nil {
		logging.Logger.WithError(err).WithField("store", c.Store).Error("could not open the ledger store")
		return nil, nil, false
	}
	return resale.NewReporter(store), closer, true
}

// printMarkdown prints a markdown document, rendered for the terminal unless
// -raw is set.
func printMarkdown(doc string) {
	if *rawMarkdown {
		fmt.Print(doc)
		return
	}
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		logging.Logger.WithError(err).Debug("could not render markdown")
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
