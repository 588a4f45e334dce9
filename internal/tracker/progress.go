package tracker

import (
	"math"

	"github.com/Bharu-A/fittronix-cli/internal/model"
)

// clampPct turns a total/goal pair into a percentage clamped to [0,100].
// A zero or missing goal yields nil: the percentage is omitted rather
// than computed as Inf or NaN.
func clampPct(total, goal float64) *int {
	if goal <= 0 {
		return nil
	}
	p := int(math.Round(total / goal * 100))
	if p > 100 {
		p = 100
	}
	if p < 0 {
		p = 0
	}
	return &p
}

// Progress recomputes today's totals against the diet plan. It is derived
// from current state on every call, never cached. Macro percentages are
// omitted when no valid diet plan exists; water progress is always
// reported.
func (t *Tracker) Progress() model.ProgressSnapshot {
	snap := model.ProgressSnapshot{
		Date:         t.today(),
		WaterGlasses: t.water,
	}
	for _, e := range t.TodayView() {
		snap.TotalCalories += e.Calories
		snap.TotalProteinG += e.ProteinG
		snap.TotalCarbsG += e.CarbsG
		snap.TotalFatG += e.FatG
	}
	if plan, err := t.DietPlan(); err == nil {
		snap.CaloriesPct = clampPct(float64(snap.TotalCalories), float64(plan.Calories))
		snap.ProteinPct = clampPct(snap.TotalProteinG, float64(plan.ProteinG))
		snap.CarbsPct = clampPct(snap.TotalCarbsG, float64(plan.CarbsG))
		snap.FatsPct = clampPct(snap.TotalFatG, float64(plan.FatG))
	}
	if pct := clampPct(float64(t.water), WaterGoalGlasses); pct != nil {
		snap.WaterPct = *pct
	}
	return snap
}
