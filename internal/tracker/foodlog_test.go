package tracker

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Bharu-A/fittronix-cli/internal/health"
	"github.com/Bharu-A/fittronix-cli/internal/model"
)

func TestAddFoodStampsIDDateAndTime(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	entry := mustAddFood(t, tr, FoodInput{
		Name:     "  Oatmeal ",
		Calories: 320,
		ProteinG: 12,
		CarbsG:   54,
		FatG:     6,
		MealType: "breakfast",
	})
	if entry.ID == "" {
		t.Fatalf("expected an assigned id")
	}
	if entry.Name != "Oatmeal" {
		t.Fatalf("expected trimmed name, got %q", entry.Name)
	}
	if entry.Date != "2026-03-14" {
		t.Fatalf("expected date 2026-03-14, got %q", entry.Date)
	}
	if entry.Time != "09:30:15" {
		t.Fatalf("expected time 09:30:15, got %q", entry.Time)
	}
}

func TestAddFoodReportsAllFieldFailures(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	_, err := tr.AddFood(FoodInput{Name: "  ", Calories: 0, ProteinG: -1, MealType: "brunch"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var fieldErrs health.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	fields := map[string]bool{}
	for _, fe := range fieldErrs {
		fields[fe.Field] = true
	}
	for _, want := range []string{"name", "calories", "protein", "mealType"} {
		if !fields[want] {
			t.Fatalf("expected failure for field %q, got %v", want, fieldErrs)
		}
	}
	if len(tr.Entries()) != 0 {
		t.Fatalf("invalid entry must not be added")
	}
}

func TestUpdateFoodKeepsIDDateAndTime(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	entry := mustAddFood(t, tr, FoodInput{Name: "Rice", Calories: 400, CarbsG: 80, MealType: "lunch"})

	updated, err := tr.UpdateFood(entry.ID, FoodInput{
		Name:     "Fried rice",
		Calories: 520,
		ProteinG: 14,
		CarbsG:   70,
		FatG:     18,
		MealType: "dinner",
	})
	if err != nil {
		t.Fatalf("update food: %v", err)
	}
	if updated.ID != entry.ID {
		t.Fatalf("id changed on edit: %q -> %q", entry.ID, updated.ID)
	}
	if updated.Date != entry.Date || updated.Time != entry.Time {
		t.Fatalf("date/time re-stamped on edit: %+v", updated)
	}
	if updated.Name != "Fried rice" || updated.Calories != 520 || updated.MealType != model.MealDinner {
		t.Fatalf("editable fields not replaced: %+v", updated)
	}
}

func TestUpdateFoodUnknownID(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	_, err := tr.UpdateFood("nope", FoodInput{Name: "x", Calories: 1, MealType: "snack"})
	if err == nil {
		t.Fatalf("expected not-found error")
	}
}

func TestRemoveFoodAbsentIDIsNoop(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	entry := mustAddFood(t, tr, FoodInput{Name: "Apple", Calories: 80, MealType: "snack"})
	tr.RemoveFood("missing")
	if len(tr.Entries()) != 1 {
		t.Fatalf("no-op remove changed the log")
	}
	tr.RemoveFood(entry.ID)
	if len(tr.Entries()) != 0 {
		t.Fatalf("expected empty log after remove")
	}
}

func TestIDsNotReusedAfterDeletion(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	first := mustAddFood(t, tr, FoodInput{Name: "Egg", Calories: 70, MealType: "breakfast"})
	tr.RemoveFood(first.ID)
	second := mustAddFood(t, tr, FoodInput{Name: "Egg", Calories: 70, MealType: "breakfast"})
	if first.ID == second.ID {
		t.Fatalf("id %q reused after deletion", first.ID)
	}
}

func TestTodayViewIdempotentAndOrdered(t *testing.T) {
	t.Parallel()
	tr, _ := newTestTracker(t)

	mustAddFood(t, tr, FoodInput{Name: "Toast", Calories: 150, MealType: "breakfast"})
	mustAddFood(t, tr, FoodInput{Name: "Soup", Calories: 220, MealType: "lunch"})
	// Entry from another day must not show up in the today view.
	tr.foodLog = append(tr.foodLog, model.FoodEntry{
		ID: "old", Name: "Leftovers", Calories: 300, MealType: model.MealDinner,
		Date: "2026-03-13", Time: "20:00:00",
	})

	first := tr.TodayView()
	second := tr.TodayView()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("today view not idempotent:\n%v\n%v", first, second)
	}
	if len(first) != 2 || first[0].Name != "Toast" || first[1].Name != "Soup" {
		t.Fatalf("expected insertion order [Toast Soup], got %v", first)
	}
}
