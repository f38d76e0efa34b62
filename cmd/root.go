package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/nestegg/internal/cli"
	"github.com/theirongolddev/nestegg/internal/config"
	"github.com/theirongolddev/nestegg/internal/model"
	"github.com/theirongolddev/nestegg/internal/planner"
	"github.com/theirongolddev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagGoal        float64
	flagYears       int
	flagInflation   float64
	flagReturn      float64
	flagStartYear   int
	flagTolerance   float64
	flagExport      string
	flagCurrency    string
	flagInteractive bool
	flagTUI         bool
	flagNoColor     bool
	flagQuiet       bool
)

// appConfig is loaded once per invocation before any command runs.
var appConfig = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "nestegg",
	Short: "Retirement savings calculator",
	Long: "Work out the level annual contribution needed to reach a retirement goal\n" +
		"stated in today's money, and print the year-by-year schedule.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runPlan,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Float64VarP(&flagGoal, "goal", "g", 0, "Retirement goal in today's money")
	pf.IntVarP(&flagYears, "years", "y", 0, "Years until retirement")
	pf.Float64VarP(&flagInflation, "inflation", "i", 0, "Expected inflation rate, e.g. 0.03 (default from config)")
	pf.Float64VarP(&flagReturn, "return", "r", 0, "Expected investment return, e.g. 0.05 (default from config)")
	pf.IntVarP(&flagStartYear, "start-year", "s", 0,
		fmt.Sprintf("Year of the first contribution, %d-%d (default current year)", planner.MinStartYear, planner.MaxStartYear))
	pf.Float64Var(&flagTolerance, "tolerance", 0, "Solver tolerance in currency units (default from config)")
	pf.StringVarP(&flagExport, "export", "o", "", "Export the schedule to a .csv, .db or .sqlite file")
	pf.StringVar(&flagCurrency, "currency", "", "ISO currency code for display (default from config)")
	pf.BoolVar(&flagInteractive, "interactive", false, "Ask for inputs with a form even when flags are given")
	pf.BoolVar(&flagTUI, "tui", false, "Browse the schedule in an interactive table")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notes on stderr")
}

// setup loads configuration and applies appearance settings.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(); err != nil {
		warn("%v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appConfig = cfg

	theme.SetActive(cfg.Appearance.Theme)
	if flagNoColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return nil
}

// currency returns the display currency: flag, then config.
func currency() string {
	if flagCurrency != "" {
		return strings.ToUpper(flagCurrency)
	}
	return appConfig.Defaults.Currency
}

// inputFromFlags builds a GoalInput from flags, filling rates and start year
// from config defaults. It returns the names of required inputs that are
// still missing.
func inputFromFlags(cmd *cobra.Command) (model.GoalInput, []string) {
	in := model.GoalInput{
		PresentValue:   flagGoal,
		Years:          flagYears,
		InflationRate:  appConfig.Defaults.InflationRate,
		InvestmentRate: appConfig.Defaults.InvestmentRate,
		StartYear:      time.Now().Year(),
	}
	flags := cmd.Flags()
	if flags.Changed("inflation") {
		in.InflationRate = flagInflation
	}
	if flags.Changed("return") {
		in.InvestmentRate = flagReturn
	}
	if flags.Changed("start-year") {
		in.StartYear = flagStartYear
	}

	var missing []string
	if !flags.Changed("goal") {
		missing = append(missing, "--goal")
	}
	if !flags.Changed("years") {
		missing = append(missing, "--years")
	}
	return in, missing
}

func tolerance(cmd *cobra.Command) float64 {
	if cmd.Flags().Changed("tolerance") {
		return flagTolerance
	}
	return appConfig.Planner.Tolerance
}

// stdinIsTerminal is swapped in tests.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func warn(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(os.Stderr, cli.RenderWarning(fmt.Sprintf(format, args...)))
}
