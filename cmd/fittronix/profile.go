package fittronix

import (
	"fmt"

	"github.com/Bharu-A/fittronix-cli/internal/health"
	"github.com/Bharu-A/fittronix-cli/internal/model"
	"github.com/Bharu-A/fittronix-cli/internal/tracker"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the health profile",
}

var (
	profileGender     string
	profileAge        int
	profileHeight     float64
	profileWeight     float64
	profileUnit       string
	profileActivity   string
	profileGoal       string
	profileMeals      int
	profileDiet       string
	profileAllergies  string
	profileConditions string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the health profile (replaces all fields)",
	RunE: func(cmd *cobra.Command, args []string) error {
		weightKg, err := health.ToKg(profileWeight, profileUnit)
		if err != nil {
			return err
		}
		return withTracker(func(t *tracker.Tracker) error {
			p := model.UserHealthProfile{
				Gender:            model.Gender(profileGender),
				Age:               profileAge,
				HeightCm:          profileHeight,
				WeightKg:          weightKg,
				ActivityLevel:     model.ActivityLevel(profileActivity),
				Goal:              model.Goal(profileGoal),
				MealsPerDay:       profileMeals,
				DietaryPreference: profileDiet,
				Allergies:         profileAllergies,
				HealthConditions:  profileConditions,
			}
			if err := t.SetProfile(p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored health profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			p, ok := t.Profile()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile recorded")
				return nil
			}
			unit, _ := t.Setting(tracker.SettingWeightUnit)
			weight, err := health.FromKg(p.WeightKg, unit)
			if err != nil {
				return err
			}
			if unit == "" {
				unit = "kg"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Gender: %s\nAge: %d\nHeight: %.0f cm\nWeight: %.1f %s\nActivity: %s\nGoal: %s\nMeals/day: %d\n",
				p.Gender, p.Age, p.HeightCm, weight, unit, p.ActivityLevel, p.Goal, p.MealsPerDay)
			if p.DietaryPreference != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Dietary preference: %s\n", p.DietaryPreference)
			}
			if p.Allergies != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Allergies: %s\n", p.Allergies)
			}
			if p.HealthConditions != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Health conditions: %s\n", p.HealthConditions)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender (male or female)")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Body weight")
	profileSetCmd.Flags().StringVar(&profileUnit, "unit", "kg", "Weight unit (kg or lb)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level (sedentary, light, moderate, active, extra)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal (lose, maintain, gain)")
	profileSetCmd.Flags().IntVar(&profileMeals, "meals", 3, "Meals per day (3-6)")
	profileSetCmd.Flags().StringVar(&profileDiet, "diet", "", "Dietary preference tag")
	profileSetCmd.Flags().StringVar(&profileAllergies, "allergies", "", "Allergies, free text")
	profileSetCmd.Flags().StringVar(&profileConditions, "conditions", "", "Health conditions, free text")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("age")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("activity")
	_ = profileSetCmd.MarkFlagRequired("goal")
}
