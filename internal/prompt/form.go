package prompt

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/theirongolddev/nestegg/internal/config"
	"github.com/theirongolddev/nestegg/internal/model"
	"github.com/theirongolddev/nestegg/internal/planner"
	"github.com/theirongolddev/nestegg/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("input cancelled")

// GoalValues holds the raw answers of the goal form. Pre-filled fields show
// as defaults.
type GoalValues struct {
	Goal           string
	Years          string
	InflationRate  string
	InvestmentRate string
	StartYear      string
}

// NewGoalValues pre-fills a form from known inputs. Zero goal or years are
// left blank so the user must answer them.
func NewGoalValues(in model.GoalInput) GoalValues {
	v := GoalValues{
		InflationRate:  strconv.FormatFloat(in.InflationRate, 'f', -1, 64),
		InvestmentRate: strconv.FormatFloat(in.InvestmentRate, 'f', -1, 64),
		StartYear:      strconv.Itoa(in.StartYear),
	}
	if in.PresentValue > 0 {
		v.Goal = strconv.FormatFloat(in.PresentValue, 'f', -1, 64)
	}
	if in.Years > 0 {
		v.Years = strconv.Itoa(in.Years)
	}
	return v
}

// Input parses the answers into a validated GoalInput.
func (v GoalValues) Input() (model.GoalInput, error) {
	var in model.GoalInput
	var err error

	if in.PresentValue, err = ParseAmount(v.Goal); err != nil {
		return in, fmt.Errorf("%w: goal: %v", planner.ErrInvalidInput, err)
	}
	if in.Years, err = ParseYears(v.Years); err != nil {
		return in, fmt.Errorf("%w: years: %v", planner.ErrInvalidInput, err)
	}
	if in.InflationRate, err = ParseRate(v.InflationRate); err != nil {
		return in, fmt.Errorf("%w: inflation rate: %v", planner.ErrInvalidInput, err)
	}
	if in.InvestmentRate, err = ParseRate(v.InvestmentRate); err != nil {
		return in, fmt.Errorf("%w: investment rate: %v", planner.ErrInvalidInput, err)
	}
	if in.StartYear, err = ParseYear(v.StartYear); err != nil {
		return in, fmt.Errorf("%w: start year: %v", planner.ErrInvalidInput, err)
	}
	return in, planner.Validate(in)
}

func discard[T any](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(s)
		return err
	}
}

// NewGoalForm builds the form asking for the five plan inputs.
func NewGoalForm(v *GoalValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal in today's money").
				Description("The amount you want at retirement, in today's purchasing power.").
				Placeholder("1000000").
				Value(&v.Goal).
				Validate(discard(ParseAmount)),
			huh.NewInput().
				Title("Years until retirement").
				Placeholder("40").
				Value(&v.Years).
				Validate(discard(ParseYears)),
			huh.NewInput().
				Title("Expected inflation rate").
				Description("0.03 or 3%").
				Value(&v.InflationRate).
				Validate(discard(ParseRate)),
			huh.NewInput().
				Title("Expected investment return").
				Description("0.05 or 5%").
				Value(&v.InvestmentRate).
				Validate(discard(ParseRate)),
			huh.NewInput().
				Title("Current year").
				Value(&v.StartYear).
				Validate(discard(ParseYear)),
		).Title("Retirement goal"),
	)
}

// AskGoal runs the goal form pre-filled from defaults and returns the parsed
// input.
func AskGoal(defaults model.GoalInput) (model.GoalInput, error) {
	v := NewGoalValues(defaults)
	if err := run(NewGoalForm(&v)); err != nil {
		return model.GoalInput{}, err
	}
	return v.Input()
}

// ConfirmExport asks whether to save the schedule to path.
func ConfirmExport(path string) (bool, error) {
	save := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Would you like to save this schedule?").
			Description("Writes " + path).
			Affirmative("Save").
			Negative("Skip").
			Value(&save),
	))
	if err := run(form); err != nil {
		return false, err
	}
	return save, nil
}

// SetupValues holds the answers of the setup wizard.
type SetupValues struct {
	InflationRate  string
	InvestmentRate string
	Currency       string
	Theme          string
	ExportPath     string
}

// NewSetupValues pre-fills the wizard from an existing config.
func NewSetupValues(cfg config.Config) SetupValues {
	return SetupValues{
		InflationRate:  strconv.FormatFloat(cfg.Defaults.InflationRate, 'f', -1, 64),
		InvestmentRate: strconv.FormatFloat(cfg.Defaults.InvestmentRate, 'f', -1, 64),
		Currency:       cfg.Defaults.Currency,
		Theme:          cfg.Appearance.Theme,
		ExportPath:     cfg.Export.Path,
	}
}

// Apply parses the wizard answers into cfg.
func (v SetupValues) Apply(cfg *config.Config) error {
	infl, err := ParseRate(v.InflationRate)
	if err != nil {
		return fmt.Errorf("inflation rate: %w", err)
	}
	ret, err := ParseRate(v.InvestmentRate)
	if err != nil {
		return fmt.Errorf("investment rate: %w", err)
	}
	cfg.Defaults.InflationRate = infl
	cfg.Defaults.InvestmentRate = ret
	if v.Currency != "" {
		cfg.Defaults.Currency = v.Currency
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
	if v.ExportPath != "" {
		cfg.Export.Path = v.ExportPath
	}
	return nil
}

// Currencies offered by the setup wizard.
var Currencies = []string{"USD", "EUR", "GBP", "CAD", "AUD", "CHF", "JPY"}

// NewSetupForm builds the first-run wizard.
func NewSetupForm(v *SetupValues) *huh.Form {
	themes := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themes = append(themes, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default inflation rate").
				Description("Used when --inflation is not given. 0.03 or 3%").
				Value(&v.InflationRate).
				Validate(discard(ParseRate)),
			huh.NewInput().
				Title("Default investment return").
				Description("Used when --return is not given. 0.05 or 5%").
				Value(&v.InvestmentRate).
				Validate(discard(ParseRate)),
		).Title("Rates"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Currency").
				Options(huh.NewOptions(Currencies...)...).
				Value(&v.Currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themes...).
				Value(&v.Theme),
			huh.NewInput().
				Title("Default export file").
				Description(".csv, .db or .sqlite").
				Value(&v.ExportPath),
		).Title("Output"),
	)
}

// RunSetup runs the setup wizard against cfg, updating it in place.
func RunSetup(cfg *config.Config) error {
	v := NewSetupValues(*cfg)
	if err := run(NewSetupForm(&v)); err != nil {
		return err
	}
	return v.Apply(cfg)
}

func run(form *huh.Form) error {
	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
