package tracker

import "testing"

func TestProgressScenarioSedentaryMaintain(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	if err := tr.SetProfile(validProfile()); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	// Sanity-check the plan the scenario depends on.
	plan, err := tr.DietPlan()
	if err != nil {
		t.Fatalf("diet plan: %v", err)
	}
	if plan.Calories != 2035 || plan.ProteinG != 153 {
		t.Fatalf("unexpected plan for sedentary maintain: %+v", plan)
	}

	mustAddFood(t, tr, FoodInput{Name: "Breakfast bowl", Calories: 500, ProteinG: 30, MealType: "breakfast"})
	if err := tr.SetGlasses(3); err != nil {
		t.Fatalf("set glasses: %v", err)
	}

	snap := tr.Progress()
	if snap.TotalCalories != 500 || snap.TotalProteinG != 30 {
		t.Fatalf("unexpected totals: %+v", snap)
	}
	if snap.CaloriesPct == nil || *snap.CaloriesPct != 25 {
		t.Fatalf("expected caloriesPct 25, got %v", snap.CaloriesPct)
	}
	if snap.ProteinPct == nil || *snap.ProteinPct != 20 {
		t.Fatalf("expected proteinPct 20, got %v", snap.ProteinPct)
	}
	if snap.WaterPct != 38 {
		t.Fatalf("expected waterPct 38 for 3/8 glasses, got %d", snap.WaterPct)
	}
}

func TestProgressPercentagesClamped(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	if err := tr.SetProfile(validProfile()); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	mustAddFood(t, tr, FoodInput{Name: "Feast", Calories: 9000, ProteinG: 500, CarbsG: 900, FatG: 400, MealType: "dinner"})
	if err := tr.SetGlasses(MaxWaterGlasses); err != nil {
		t.Fatalf("set glasses: %v", err)
	}

	snap := tr.Progress()
	for name, pct := range map[string]*int{
		"calories": snap.CaloriesPct,
		"protein":  snap.ProteinPct,
		"carbs":    snap.CarbsPct,
		"fats":     snap.FatsPct,
	} {
		if pct == nil {
			t.Fatalf("%s pct missing", name)
		}
		if *pct != 100 {
			t.Fatalf("%s pct not clamped: %d", name, *pct)
		}
	}
	if snap.WaterPct != 100 {
		t.Fatalf("water pct not clamped: %d", snap.WaterPct)
	}
}

func TestProgressWithoutPlanOmitsPercentages(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	mustAddFood(t, tr, FoodInput{Name: "Lunch", Calories: 600, MealType: "lunch"})
	snap := tr.Progress()
	if snap.CaloriesPct != nil || snap.ProteinPct != nil || snap.CarbsPct != nil || snap.FatsPct != nil {
		t.Fatalf("expected omitted percentages without a plan: %+v", snap)
	}
	if snap.TotalCalories != 600 {
		t.Fatalf("totals must still be summed, got %d", snap.TotalCalories)
	}
}
