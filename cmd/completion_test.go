package cmd

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
)

// Every registered command must be known to shell completion, with the same flags.
func TestCompletion_Commands(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("resale", flag.ContinueOnError), "resale")
	Register(commander)
	completion := Completion()

	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		sub, ok := completion.Sub[c.Name()]
		if !ok {
			t.Errorf("command %q has no completion", c.Name())
			return
		}
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			if _, ok := sub.Flags[f.Name]; !ok {
				t.Errorf("flag -%s of %q has no completion", f.Name, c.Name())
			}
		})
	})
}
