package cmd

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/etnz/resale/internal/config"
	"github.com/etnz/resale/internal/logging"
	"github.com/google/subcommands"
)

// ExtensionPrefix prefixes the name of the external commands: "resale foo"
// runs "resale-foo" when foo is not a built-in command.
const ExtensionPrefix = "resale-"

// IsBuiltin reports whether name is a command registered in commander.
func IsBuiltin(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}

// extensionEnv returns the environment of an extension: ours, plus the
// effective settings, so that the extension reads the same ledger.
func extensionEnv(c config.Config, environ []string) []string {
	ledger := c.LedgerPath
	if abs, err := filepath.Abs(ledger); err == nil {
		ledger = abs
	}
	return append(environ,
		config.EnvLedgerPath+"="+ledger,
		config.EnvStore+"="+c.Store,
		config.EnvCurrency+"="+c.Currency,
		config.EnvLogLevel+"="+c.LogLevel,
	)
}

// RunExtension attempts to find and execute an external resale-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand
	log := logging.Logger.WithField("extension", name)

	lp, err := exec.LookPath(name)
	if err != nil {
		log.WithError(err).Debug("no external command in PATH")
		return false, 0
	}

	c, err := Settings()
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		return true, int(subcommands.ExitFailure)
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv(c, os.Environ())

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		log.WithError(err).Error("could not run the external command")
		return true, int(subcommands.ExitFailure)
	}
	return true, 0
}
