package fittronix

import (
	"fmt"

	"github.com/Bharu-A/fittronix-cli/internal/tracker"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Manage food log entries",
}

var (
	foodName     string
	foodCalories int
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodMeal     string
	foodListAll  bool
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a food entry for today",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			entry, err := t.AddFood(tracker.FoodInput{
				Name:     foodName,
				Calories: foodCalories,
				ProteinG: foodProtein,
				CarbsG:   foodCarbs,
				FatG:     foodFat,
				MealType: foodMeal,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s entry %s\n", entry.MealType, entry.ID)
			return nil
		})
	},
}

var foodEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a food entry (id, date, and time are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			entry, err := t.UpdateFood(args[0], tracker.FoodInput{
				Name:     foodName,
				Calories: foodCalories,
				ProteinG: foodProtein,
				CarbsG:   foodCarbs,
				FatG:     foodFat,
				MealType: foodMeal,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s\n", entry.ID)
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			t.RemoveFood(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", args[0])
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's entries (or the whole log with --all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			entries := t.TodayView()
			if foodListAll {
				entries = t.Entries()
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tTIME\tMEAL\tNAME\tKCAL\tP\tC\tF\tID")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\t%.1f\t%.1f\t%.1f\t%s\n",
					e.Date, e.Time, e.MealType, e.Name, e.Calories, e.ProteinG, e.CarbsG, e.FatG, e.ID)
			}
			return nil
		})
	},
}

func addFoodFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&foodName, "name", "", "Food name")
	cmd.Flags().IntVar(&foodCalories, "calories", 0, "Calories (> 0)")
	cmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams")
	cmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs grams")
	cmd.Flags().Float64Var(&foodFat, "fats", 0, "Fat grams")
	cmd.Flags().StringVar(&foodMeal, "meal", "", "Meal type (breakfast, lunch, dinner, snack)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("calories")
	_ = cmd.MarkFlagRequired("meal")
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodEditCmd, foodDeleteCmd, foodListCmd)

	addFoodFieldFlags(foodAddCmd)
	addFoodFieldFlags(foodEditCmd)
	foodListCmd.Flags().BoolVar(&foodListAll, "all", false, "List the whole food log, not just today")
}
