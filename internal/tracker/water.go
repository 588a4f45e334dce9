package tracker

import (
	"fmt"

	"github.com/Bharu-A/fittronix-cli/internal/store"
)

const (
	// WaterGoalGlasses is the fixed daily hydration reference.
	WaterGoalGlasses = 8
	// MaxWaterGlasses bounds the counter.
	MaxWaterGlasses = 20
)

func (t *Tracker) Glasses() int {
	return t.water
}

// AddGlass increments the water counter, saturating at the upper bound.
func (t *Tracker) AddGlass() int {
	if t.water >= MaxWaterGlasses {
		return t.water
	}
	t.water++
	t.persist(store.KeyWater, t.water)
	return t.water
}

// SetGlasses sets the counter directly.
func (t *Tracker) SetGlasses(n int) error {
	if n < 0 || n > MaxWaterGlasses {
		return fmt.Errorf("glasses must be between 0 and %d", MaxWaterGlasses)
	}
	t.water = n
	t.persist(store.KeyWater, t.water)
	return nil
}

func (t *Tracker) ResetWater() {
	t.water = 0
	t.persist(store.KeyWater, t.water)
}
