package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/nestegg/internal/cli"
	"github.com/theirongolddev/nestegg/internal/export"
	"github.com/theirongolddev/nestegg/internal/model"
	"github.com/theirongolddev/nestegg/internal/planner"
	"github.com/theirongolddev/nestegg/internal/prompt"

	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the required contribution and schedule",
	Example: "  nestegg plan --goal 1000000 --years 40 --inflation 0.03 --return 0.05\n" +
		"  nestegg plan -g 750000 -y 25 -o schedule.csv",
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	in, missing := inputFromFlags(cmd)

	interactive := flagInteractive || (len(missing) > 0 && stdinIsTerminal())
	if len(missing) > 0 && !interactive {
		return fmt.Errorf("%w: missing %s (pass them as flags or run in a terminal)",
			planner.ErrInvalidInput, strings.Join(missing, " and "))
	}

	if interactive {
		answered, err := prompt.AskGoal(in)
		if err != nil {
			return err
		}
		in = answered
	}

	plan, err := planner.Compute(in, tolerance(cmd))
	if err != nil {
		return err
	}

	cur := currency()
	if !cli.KnownCurrency(cur) {
		warn("Unknown currency %q, amounts shown without a symbol", cur)
	}

	if flagTUI {
		return launchTUI(plan, cur)
	}

	out := cmd.OutOrStdout()
	printPlan(out, plan, cur)

	exportPath := flagExport
	if exportPath == "" && interactive {
		save, err := prompt.ConfirmExport(appConfig.Export.Path)
		if err != nil {
			return err
		}
		if save {
			exportPath = appConfig.Export.Path
		}
	}
	if exportPath == "" {
		return nil
	}

	if err := export.Write(exportPath, plan, cur); err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderNote("Saved to "+exportPath))
	return nil
}

// printPlan writes the headline results, the inputs and the schedule table.
func printPlan(w io.Writer, p model.Plan, cur string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("RETIREMENT PLAN"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderKeyValue("Future Value Needed", cli.FormatMoney(p.FutureGoal, cur)))
	fmt.Fprintln(w, cli.RenderKeyValue("Required Annual Contribution", cli.FormatMoney(p.Contribution, cur)))
	fmt.Fprintln(w)
	fmt.Fprint(w, cli.RenderTable(cli.SummaryTable(p, cur)))
	fmt.Fprintln(w)
	printSchedule(w, p.Schedule, cur)
}

func printSchedule(w io.Writer, s model.Schedule, cur string) {
	tbl := cli.ScheduleTable(s, cur)
	tbl.Title = "Retirement Contribution Schedule"
	fmt.Fprint(w, cli.RenderTable(tbl))
}
