package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/nestegg/internal/cli"
	"github.com/theirongolddev/nestegg/internal/export"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Display a previously exported schedule",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	doc, err := export.Read(args[0])
	if err != nil {
		return err
	}

	cur := doc.Currency
	if flagCurrency != "" || cur == "" {
		cur = currency()
	}

	if flagTUI {
		return launchTUI(doc.Plan, cur)
	}

	out := cmd.OutOrStdout()
	if !doc.Partial {
		printPlan(out, doc.Plan, cur)
		if !doc.CreatedAt.IsZero() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.RenderNote("Exported "+doc.CreatedAt.Local().Format("2006-01-02 15:04")))
		}
		return nil
	}

	p := doc.Plan
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("RETIREMENT PLAN  "+strings.ToUpper(doc.Format.String())))
	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderKeyValue("Future Value at Retirement", cli.FormatMoney(p.FutureGoal, cur)))
	fmt.Fprintln(out, cli.RenderKeyValue("Annual Contribution", cli.FormatMoney(p.Contribution, cur)))
	if p.Input.Years > 1 {
		fmt.Fprintln(out, cli.RenderKeyValue("Implied Investment Return", cli.FormatRate(p.Input.InvestmentRate)))
	}
	fmt.Fprintln(out, cli.RenderNote("CSV exports carry the schedule only; goal and inflation are not stored."))
	fmt.Fprintln(out)
	printSchedule(out, p.Schedule, cur)
	return nil
}
