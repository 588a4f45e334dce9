package health

import (
	"fmt"
	"math"

	"github.com/Bharu-A/fittronix-cli/internal/model"
)

// Fixed macro split by energy share and the kcal density per gram used to
// convert shares to grams.
const (
	proteinEnergyShare = 0.30
	carbsEnergyShare   = 0.40
	fatEnergyShare     = 0.30

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// DietPlanFor derives the daily macro targets from goal calories. Each
// field is rounded on its own, so the grams re-multiplied by kcal density
// may miss goalCalories by a few kcal.
func DietPlanFor(goalCalories float64) (model.DietPlan, error) {
	if goalCalories <= 0 {
		return model.DietPlan{}, fmt.Errorf("goal calories must be > 0")
	}
	return model.DietPlan{
		Calories: int(math.Round(goalCalories)),
		ProteinG: int(math.Round(goalCalories * proteinEnergyShare / kcalPerGramProtein)),
		CarbsG:   int(math.Round(goalCalories * carbsEnergyShare / kcalPerGramCarbs)),
		FatG:     int(math.Round(goalCalories * fatEnergyShare / kcalPerGramFat)),
	}, nil
}

// MealPlanFor divides a diet plan across mealsPerDay. Rounding is per
// field and is not redistributed, so meals summed back up may drift from
// the daily totals slightly.
func MealPlanFor(plan model.DietPlan, mealsPerDay int) (model.MealPlan, error) {
	if mealsPerDay < 1 {
		return model.MealPlan{}, fmt.Errorf("meals per day must be >= 1")
	}
	n := float64(mealsPerDay)
	return model.MealPlan{
		Meals:    mealsPerDay,
		Calories: int(math.Round(float64(plan.Calories) / n)),
		ProteinG: int(math.Round(float64(plan.ProteinG) / n)),
		CarbsG:   int(math.Round(float64(plan.CarbsG) / n)),
		FatG:     int(math.Round(float64(plan.FatG) / n)),
	}, nil
}
