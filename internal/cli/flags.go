// Package cli contains the cobra sub-commands of mclock.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/mclock/internal/config"
)

// getwdFunc resolves the directory holding .mclock/config.yaml.
type getwdFunc func() (string, error)

// addSourceFlags registers the flags shared by commands that load missions.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "", "Mission file (default ~/.mclock/missions.csv)")
	cmd.Flags().String("source-kind", "", "Mission source: csv or sqlite")
	cmd.Flags().Bool("strict", false, "Fail on the first malformed record instead of skipping it")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")
}

// loadConfig reads the config for the working directory, then applies any
// flags the user set explicitly.
func loadConfig(cmd *cobra.Command, getwd getwdFunc) (*config.Config, error) {
	dir, err := getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source, _ = flags.GetString("source")
		if !flags.Changed("source-kind") {
			cfg.SourceKind = config.SourceCSV
		}
	}
	if flags.Changed("source-kind") {
		cfg.SourceKind, _ = flags.GetString("source-kind")
	}
	if flags.Changed("strict") {
		if strict, _ := flags.GetBool("strict"); strict {
			cfg.ParsePolicy = "strict"
		}
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Lookup("interval") != nil && flags.Changed("interval") {
		cfg.TickInterval, _ = flags.GetDuration("interval")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Commands returns every mclock sub-command.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		InitCmd(),
		WatchCmd(),
		ListCmd(),
		ShowCmd(),
		ImportCmd(),
		ExportCmd(),
		SessionCmd(),
	}
}
