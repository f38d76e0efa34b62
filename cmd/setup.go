package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/nestegg/internal/config"
	"github.com/theirongolddev/nestegg/internal/prompt"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set default rates, currency and theme",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	if !stdinIsTerminal() {
		return errors.New("setup needs an interactive terminal; edit " + config.ConfigPath() + " instead")
	}

	// Start from the file, not env overrides, so they are not persisted.
	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to nestegg!")
	fmt.Fprintln(out)

	if err := prompt.RunSetup(&cfg); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.ConfigPath())
	fmt.Fprintln(out, "  Run `nestegg setup` anytime to reconfigure.")
	fmt.Fprintln(out)
	return nil
}
