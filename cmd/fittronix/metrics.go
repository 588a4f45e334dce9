package fittronix

import (
	"fmt"

	"github.com/Bharu-A/fittronix-cli/internal/tracker"
	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show BMI, BMR, TDEE, and goal calories for the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			m, err := t.Metrics()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\n", m.BMI, m.BMICategory)
			fmt.Fprintf(cmd.OutOrStdout(), "BMR: %.1f kcal\n", m.BMR)
			fmt.Fprintf(cmd.OutOrStdout(), "TDEE: %.1f kcal\n", m.TDEE)
			fmt.Fprintf(cmd.OutOrStdout(), "Goal calories: %.0f kcal\n", m.GoalCalories)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
