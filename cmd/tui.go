package cmd

import (
	"errors"

	"github.com/theirongolddev/nestegg/internal/model"
	"github.com/theirongolddev/nestegg/internal/tui"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func launchTUI(p model.Plan, cur string) error {
	if !stdinIsTerminal() {
		return errors.New("--tui needs an interactive terminal")
	}

	// Force TrueColor so row highlighting renders even when lipgloss
	// detects a limited profile; --no-color keeps plain output.
	if !flagNoColor {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	return tui.Run(p, cur)
}
