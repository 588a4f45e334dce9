package tracker

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Bharu-A/fittronix-cli/internal/health"
	"github.com/Bharu-A/fittronix-cli/internal/model"
	"github.com/Bharu-A/fittronix-cli/internal/store"
)

// Tracker owns the in-memory health state: profile, food log, water
// intake, and settings. Every mutation goes through its methods and is
// mirrored to the injected store; in-memory state is the source of truth,
// so a failed write never blocks or corrupts a mutation.
type Tracker struct {
	store    store.Store
	profile  *model.UserHealthProfile
	foodLog  []model.FoodEntry
	water    int
	settings map[string]string

	// now is swapped out by tests to pin the calendar day.
	now func() time.Time
}

func New(s store.Store) (*Tracker, error) {
	t := &Tracker{store: s, settings: map[string]string{}, now: time.Now}
	if err := t.loadAll(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tracker) loadAll() error {
	raw, ok, err := t.store.Load(store.KeyProfile)
	if err != nil {
		return err
	}
	if ok {
		var p model.UserHealthProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("decode %s record: %w", store.KeyProfile, err)
		}
		t.profile = &p
	}

	raw, ok, err = t.store.Load(store.KeyFoodLog)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal(raw, &t.foodLog); err != nil {
			return fmt.Errorf("decode %s record: %w", store.KeyFoodLog, err)
		}
	}

	raw, ok, err = t.store.Load(store.KeyWater)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal(raw, &t.water); err != nil {
			return fmt.Errorf("decode %s record: %w", store.KeyWater, err)
		}
	}

	raw, ok, err = t.store.Load(store.KeySettings)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal(raw, &t.settings); err != nil {
			return fmt.Errorf("decode %s record: %w", store.KeySettings, err)
		}
	}
	if t.settings == nil {
		t.settings = map[string]string{}
	}
	return nil
}

// persist mirrors one record to the store. Write-back is fire-and-forget:
// a failure is logged and the in-memory mutation stands.
func (t *Tracker) persist(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("encode %s record: %v", key, err)
		return
	}
	if err := t.store.Save(key, raw); err != nil {
		log.Printf("persist %s record: %v", key, err)
	}
}

// today is the canonical calendar-day form used for entry stamping and
// the today view: ISO date in local time.
func (t *Tracker) today() string {
	return t.now().Format("2006-01-02")
}

func (t *Tracker) clock() string {
	return t.now().Format("15:04:05")
}

// Metrics derives BMI, BMR, TDEE, and goal calories from the current
// profile. No metrics at all are produced for a missing or invalid
// profile; the validation errors are returned instead.
func (t *Tracker) Metrics() (*model.HealthMetrics, error) {
	if t.profile == nil {
		return nil, fmt.Errorf("no health profile recorded")
	}
	return health.Calculate(*t.profile)
}

// DietPlan derives the daily macro targets from the current profile.
func (t *Tracker) DietPlan() (model.DietPlan, error) {
	m, err := t.Metrics()
	if err != nil {
		return model.DietPlan{}, err
	}
	return health.DietPlanFor(m.GoalCalories)
}

// MealPlan divides the diet plan across the profile's meals per day.
func (t *Tracker) MealPlan() (model.MealPlan, error) {
	plan, err := t.DietPlan()
	if err != nil {
		return model.MealPlan{}, err
	}
	return health.MealPlanFor(plan, t.profile.MealsPerDay)
}
