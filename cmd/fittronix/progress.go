package fittronix

import (
	"fmt"

	"github.com/Bharu-A/fittronix-cli/internal/tracker"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show today's intake against the macro plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			snap := t.Progress()
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", snap.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "Intake: %d kcal | P %.1fg | C %.1fg | F %.1fg\n",
				snap.TotalCalories, snap.TotalProteinG, snap.TotalCarbsG, snap.TotalFatG)
			printPct := func(label string, pct *int) {
				if pct == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: n/a (no plan)\n", label)
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d%%\n", label, *pct)
			}
			printPct("Calories", snap.CaloriesPct)
			printPct("Protein", snap.ProteinPct)
			printPct("Carbs", snap.CarbsPct)
			printPct("Fats", snap.FatsPct)
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d/%d glasses (%d%%)\n", snap.WaterGlasses, tracker.WaterGoalGlasses, snap.WaterPct)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
