package tracker

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Bharu-A/fittronix-cli/internal/health"
	"github.com/Bharu-A/fittronix-cli/internal/model"
	"github.com/Bharu-A/fittronix-cli/internal/store"
)

// FoodInput carries the editable fields of a food entry. The same rules
// apply on add and update.
type FoodInput struct {
	Name     string
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
	MealType string
}

func ParseMealType(value string) (model.MealType, error) {
	switch model.MealType(strings.TrimSpace(strings.ToLower(value))) {
	case model.MealBreakfast:
		return model.MealBreakfast, nil
	case model.MealLunch:
		return model.MealLunch, nil
	case model.MealDinner:
		return model.MealDinner, nil
	case model.MealSnack:
		return model.MealSnack, nil
	default:
		return "", fmt.Errorf("invalid meal type %q (use breakfast, lunch, dinner, or snack)", value)
	}
}

func validateFoodInput(in FoodInput) (FoodInput, error) {
	var errs health.FieldErrors
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		errs = append(errs, health.FieldError{Field: "name", Message: "is required"})
	}
	if in.Calories <= 0 {
		errs = append(errs, health.FieldError{Field: "calories", Message: "must be > 0"})
	}
	if in.ProteinG < 0 {
		errs = append(errs, health.FieldError{Field: "protein", Message: "must be >= 0"})
	}
	if in.CarbsG < 0 {
		errs = append(errs, health.FieldError{Field: "carbs", Message: "must be >= 0"})
	}
	if in.FatG < 0 {
		errs = append(errs, health.FieldError{Field: "fats", Message: "must be >= 0"})
	}
	meal, err := ParseMealType(in.MealType)
	if err != nil {
		errs = append(errs, health.FieldError{Field: "mealType", Message: err.Error()})
	} else {
		in.MealType = string(meal)
	}
	if len(errs) > 0 {
		return in, errs
	}
	return in, nil
}

// AddFood appends a validated entry to the food log. The id is a fresh
// UUID, never reused even after deletion; date and time are stamped from
// the clock at insertion.
func (t *Tracker) AddFood(in FoodInput) (model.FoodEntry, error) {
	in, err := validateFoodInput(in)
	if err != nil {
		return model.FoodEntry{}, err
	}
	entry := model.FoodEntry{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Calories: in.Calories,
		ProteinG: in.ProteinG,
		CarbsG:   in.CarbsG,
		FatG:     in.FatG,
		MealType: model.MealType(in.MealType),
		Date:     t.today(),
		Time:     t.clock(),
	}
	t.foodLog = append(t.foodLog, entry)
	t.persist(store.KeyFoodLog, t.foodLog)
	return entry, nil
}

// UpdateFood replaces the editable fields of an existing entry in place.
// ID, date, and time are never re-stamped by an edit.
func (t *Tracker) UpdateFood(id string, in FoodInput) (model.FoodEntry, error) {
	in, err := validateFoodInput(in)
	if err != nil {
		return model.FoodEntry{}, err
	}
	for i := range t.foodLog {
		if t.foodLog[i].ID != id {
			continue
		}
		t.foodLog[i].Name = in.Name
		t.foodLog[i].Calories = in.Calories
		t.foodLog[i].ProteinG = in.ProteinG
		t.foodLog[i].CarbsG = in.CarbsG
		t.foodLog[i].FatG = in.FatG
		t.foodLog[i].MealType = model.MealType(in.MealType)
		t.persist(store.KeyFoodLog, t.foodLog)
		return t.foodLog[i], nil
	}
	return model.FoodEntry{}, fmt.Errorf("food entry %q not found", id)
}

// RemoveFood deletes an entry by id. An absent id is a no-op.
func (t *Tracker) RemoveFood(id string) {
	for i := range t.foodLog {
		if t.foodLog[i].ID != id {
			continue
		}
		t.foodLog = append(t.foodLog[:i], t.foodLog[i+1:]...)
		t.persist(store.KeyFoodLog, t.foodLog)
		return
	}
}

// Entries returns the whole food log in insertion order.
func (t *Tracker) Entries() []model.FoodEntry {
	out := make([]model.FoodEntry, len(t.foodLog))
	copy(out, t.foodLog)
	return out
}

// TodayView returns the entries stamped with the current calendar day, in
// insertion order. It is a fresh copy on every call and never mutates
// the log.
func (t *Tracker) TodayView() []model.FoodEntry {
	today := t.today()
	out := make([]model.FoodEntry, 0)
	for _, e := range t.foodLog {
		if e.Date == today {
			out = append(out, e)
		}
	}
	return out
}
