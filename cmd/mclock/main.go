package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/mclock/internal/cli"
	"github.com/example/mclock/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "mclock",
		Short:   "mclock - countdown board for time-bounded missions",
		Version: version.String(),
		Long: `mclock tracks named missions with a start and end date and shows how
much time has elapsed and how much remains, most urgent first.

Missions are read from a file with one "Name,DD-MM-YYYY,DD-MM-YYYY" line
each, or from the SQLite store filled by "mclock import".`,
	}

	rootCmd.AddCommand(cli.Commands()...)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
