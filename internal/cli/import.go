package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/mclock/internal/adapters/filesystem"
	"github.com/example/mclock/internal/app"
	"github.com/example/mclock/internal/config"
	"github.com/example/mclock/internal/db"
	"github.com/example/mclock/internal/ports/primary"
	"github.com/example/mclock/internal/ports/secondary"
	"github.com/example/mclock/internal/wire"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Copy a mission file into the SQLite store",
		Long: `Validate a mission file and replace the SQLite store's missions with
its valid records, keeping their order.

Set source_kind: sqlite (or MCLOCK_SOURCE_KIND=sqlite) to watch the store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, os.Getwd)
			if err != nil {
				return err
			}
			return runImport(cmd.Context(), cfg, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().Bool("strict", false, "Abort on the first malformed record")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn or error")
	return cmd
}

func runImport(ctx context.Context, cfg *config.Config, path string, out, logOut io.Writer) error {
	policy, err := primary.ParseParsePolicy(cfg.ParsePolicy)
	if err != nil {
		return err
	}

	file, err := filesystem.NewMissionFile(path)
	if err != nil {
		return err
	}

	store, err := wire.MissionStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := app.ImportMissions(ctx, file, store, policy, cfg.NewLogger(logOut))
	if err != nil {
		return err
	}

	for _, rec := range result.Skipped {
		fmt.Fprintf(out, "⚠ Skipped %s line %d: %v\n", rec.Source, rec.Line, rec.Err)
	}
	fmt.Fprintf(out, "✓ Imported %d missions from %s\n", result.Imported, file.Path())
	return nil
}

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the SQLite store's missions in mission file format",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, os.Getwd)
			if err != nil {
				return err
			}
			return runExport(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	return cmd
}

func runExport(ctx context.Context, cfg *config.Config, out io.Writer) error {
	store, err := wire.MissionStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := store.Records(ctx)
	if err != nil {
		return err
	}

	defs := make([]secondary.MissionDefinition, 0, len(records))
	for _, rec := range records {
		defs = append(defs, secondary.MissionDefinition{
			Name:      rec.Fields[0],
			StartDate: rec.Fields[1],
			EndDate:   rec.Fields[2],
		})
	}
	return filesystem.WriteRecords(out, defs)
}
