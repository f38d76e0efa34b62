// Package cmd implements the nestegg CLI commands.
package cmd

import (
	"fmt"

	"github.com/theirongolddev/nestegg/internal/cli"
	"github.com/theirongolddev/nestegg/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Defaults]")
	fmt.Fprintf(out, "    Inflation rate:    %s\n", cli.FormatRate(cfg.Defaults.InflationRate))
	fmt.Fprintf(out, "    Investment return: %s\n", cli.FormatRate(cfg.Defaults.InvestmentRate))
	fmt.Fprintf(out, "    Currency:          %s\n", cfg.Defaults.Currency)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Planner]")
	fmt.Fprintf(out, "    Tolerance: %g\n", cfg.Planner.Tolerance)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Export]")
	fmt.Fprintf(out, "    Path: %s\n", cfg.Export.Path)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `nestegg setup` to reconfigure.")
	return nil
}
