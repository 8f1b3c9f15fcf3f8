package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StephanGoldberg/startup-launch-checker/internal/checklist"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Print the launch readiness checklist",
	Long: `List every item the readiness score is built from. All items carry
equal weight; the score is the percentage of items passed.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Launch checklist (%d items, equally weighted):\n", checklist.Size())
		for i, item := range checklist.Catalog() {
			fmt.Fprintf(out, "  %d. %s\n", i+1, item.Name)
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Verdict tiers: >=80 %s, >=55 %s, otherwise %s\n",
			checklist.VerdictReady, checklist.VerdictAlmost, checklist.VerdictNotReady)
	},
}
