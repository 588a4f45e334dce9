package fittronix

import (
	"fmt"

	"github.com/Bharu-A/fittronix-cli/internal/tracker"
	"github.com/spf13/cobra"
)

var planPerMeal bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the derived daily macro plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			plan, err := t.DietPlan()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Daily: %d kcal | P %dg | C %dg | F %dg\n", plan.Calories, plan.ProteinG, plan.CarbsG, plan.FatG)
			if !planPerMeal {
				return nil
			}
			meal, err := t.MealPlan()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Per meal (%d meals): %d kcal | P %dg | C %dg | F %dg\n", meal.Meals, meal.Calories, meal.ProteinG, meal.CarbsG, meal.FatG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().BoolVar(&planPerMeal, "per-meal", false, "Also show the per-meal subdivision")
}
