package tracker

import (
	"fmt"

	"github.com/Bharu-A/fittronix-cli/internal/model"
)

// Report assembles the structured report for an external renderer. The
// weekly variant carries the profile, analysis, and plan sections only;
// it does not aggregate multi-day intake.
func (t *Tracker) Report(typ model.ReportType) (*model.Report, error) {
	metrics, err := t.Metrics()
	if err != nil {
		return nil, fmt.Errorf("report needs a valid health profile: %w", err)
	}
	plan, err := t.DietPlan()
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		Type: typ,
		Sections: []model.ReportSection{
			t.personalSection(),
			healthSection(metrics),
			planSection(plan),
		},
	}
	if typ == model.ReportDaily {
		report.Sections = append(report.Sections, t.intakeSection(), t.progressSection())
	}
	return report, nil
}

func (t *Tracker) personalSection() model.ReportSection {
	p := *t.profile
	rows := [][2]string{
		{"Gender", string(p.Gender)},
		{"Age", fmt.Sprintf("%d years", p.Age)},
		{"Height", fmt.Sprintf("%.0f cm", p.HeightCm)},
		{"Weight", fmt.Sprintf("%.1f kg", p.WeightKg)},
		{"Activity Level", string(p.ActivityLevel)},
		{"Goal", string(p.Goal)},
		{"Meals Per Day", fmt.Sprintf("%d", p.MealsPerDay)},
	}
	if p.DietaryPreference != "" {
		rows = append(rows, [2]string{"Dietary Preference", p.DietaryPreference})
	}
	if p.Allergies != "" {
		rows = append(rows, [2]string{"Allergies", p.Allergies})
	}
	if p.HealthConditions != "" {
		rows = append(rows, [2]string{"Health Conditions", p.HealthConditions})
	}
	return model.ReportSection{Title: "Personal Information", Rows: rows}
}

func healthSection(m *model.HealthMetrics) model.ReportSection {
	return model.ReportSection{
		Title: "Health Analysis",
		Rows: [][2]string{
			{"BMI", fmt.Sprintf("%.1f (%s)", m.BMI, m.BMICategory)},
			{"BMR", fmt.Sprintf("%.0f kcal", m.BMR)},
			{"TDEE", fmt.Sprintf("%.0f kcal", m.TDEE)},
			{"Goal Calories", fmt.Sprintf("%.0f kcal", m.GoalCalories)},
		},
	}
}

func planSection(plan model.DietPlan) model.ReportSection {
	return model.ReportSection{
		Title: "Nutrition Plan",
		Rows: [][2]string{
			{"Calories", fmt.Sprintf("%d kcal", plan.Calories)},
			{"Protein", fmt.Sprintf("%d g", plan.ProteinG)},
			{"Carbs", fmt.Sprintf("%d g", plan.CarbsG)},
			{"Fats", fmt.Sprintf("%d g", plan.FatG)},
		},
	}
}

// intakeSection lists today's entries one per row. Field order within the
// value is fixed: name, calories, protein, carbs, fats.
func (t *Tracker) intakeSection() model.ReportSection {
	section := model.ReportSection{Title: "Today's Food Intake", Rows: [][2]string{}}
	for _, e := range t.TodayView() {
		section.Rows = append(section.Rows, [2]string{
			string(e.MealType),
			fmt.Sprintf("%s | %d kcal | P %.1f g | C %.1f g | F %.1f g", e.Name, e.Calories, e.ProteinG, e.CarbsG, e.FatG),
		})
	}
	return section
}

func (t *Tracker) progressSection() model.ReportSection {
	snap := t.Progress()
	fmtPct := func(pct *int) string {
		if pct == nil {
			return "n/a"
		}
		return fmt.Sprintf("%d%%", *pct)
	}
	return model.ReportSection{
		Title: "Daily Progress",
		Rows: [][2]string{
			{"Calories", fmtPct(snap.CaloriesPct)},
			{"Protein", fmtPct(snap.ProteinPct)},
			{"Carbs", fmtPct(snap.CarbsPct)},
			{"Fats", fmtPct(snap.FatsPct)},
			{"Water", fmt.Sprintf("%d/%d glasses (%d%%)", snap.WaterGlasses, WaterGoalGlasses, snap.WaterPct)},
		},
	}
}
