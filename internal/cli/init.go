package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/mclock/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default mclock config",
		Long:  `Write .mclock/config.yaml in the current directory with the default settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			source, _ := cmd.Flags().GetString("source")
			return initRunE(os.Getwd, cmd.OutOrStdout(), source, force)
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	cmd.Flags().String("source", "", "Mission file to record in the config")
	return cmd
}

func initRunE(getwd getwdFunc, out io.Writer, source string, force bool) error {
	dir, err := getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path := config.Path(dir)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	cfg := config.Default()
	cfg.Source = source
	if err := config.SaveConfig(dir, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "✓ Config written to %s\n", path)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  echo 'Thesis,01-02-2024,30-04-2024' >> ~/.mclock/missions.csv")
	fmt.Fprintln(out, "  mclock watch")
	return nil
}
