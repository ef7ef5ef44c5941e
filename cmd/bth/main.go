package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bth/internal/cli"
	"bth/internal/cli/commands"
	"bth/internal/config"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "bth",
		Short:   "Bootgen test harness",
		Long:    `A unit-testing harness for the Bootgen boot-image tool's command-line behavior. Runs the registered mock suites in parallel, reports results, and tracks failures across runs.`,
		Version: version,
	}

	// Flags struct populated by command flags at parse time
	var flags cli.Flags

	cfg, err := config.Load(flags.ToConfigFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmds, err := commands.NewCommands(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		// Failed tests already printed their own summary; keep the exit
		// code contract (0 all passed, 1 any failure) without extra noise.
		if !errors.Is(err, commands.ErrTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
