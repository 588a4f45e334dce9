package health

import (
	"fmt"
	"strings"

	"github.com/Bharu-A/fittronix-cli/internal/model"
)

// Valid profile ranges. A profile outside these bounds produces no
// metrics at all; the failing fields are reported instead.
const (
	MinAge      = 1
	MaxAge      = 120
	MinHeightCm = 50
	MaxHeightCm = 250
	MinWeightKg = 10
	MaxWeightKg = 300

	MinMealsPerDay = 3
	MaxMealsPerDay = 6
)

var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary: 1.20,
	model.ActivityLight:     1.375,
	model.ActivityModerate:  1.55,
	model.ActivityActive:    1.725,
	model.ActivityExtra:     1.90,
}

// goalCalorieOffset is applied on top of TDEE for lose/gain goals.
const goalCalorieOffset = 500

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

// ValidateProfile checks every field the calculators depend on and returns
// all failures at once so a form layer can surface them per field.
func ValidateProfile(p model.UserHealthProfile) error {
	var errs FieldErrors
	if p.Gender != model.GenderMale && p.Gender != model.GenderFemale {
		errs = append(errs, FieldError{"gender", fmt.Sprintf("must be %q or %q", model.GenderMale, model.GenderFemale)})
	}
	if p.Age < MinAge || p.Age > MaxAge {
		errs = append(errs, FieldError{"age", fmt.Sprintf("must be between %d and %d", MinAge, MaxAge)})
	}
	if p.HeightCm < MinHeightCm || p.HeightCm > MaxHeightCm {
		errs = append(errs, FieldError{"height", fmt.Sprintf("must be between %d and %d cm", MinHeightCm, MaxHeightCm)})
	}
	if p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg {
		errs = append(errs, FieldError{"weight", fmt.Sprintf("must be between %d and %d kg", MinWeightKg, MaxWeightKg)})
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		errs = append(errs, FieldError{"activityLevel", "must be one of sedentary, light, moderate, active, extra"})
	}
	switch p.Goal {
	case model.GoalLose, model.GoalMaintain, model.GoalGain:
	default:
		errs = append(errs, FieldError{"goal", "must be one of lose, maintain, gain"})
	}
	if p.MealsPerDay < MinMealsPerDay || p.MealsPerDay > MaxMealsPerDay {
		errs = append(errs, FieldError{"mealsPerDay", fmt.Sprintf("must be between %d and %d", MinMealsPerDay, MaxMealsPerDay)})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BMI expects height in centimeters and weight in kilograms.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100.0
	return weightKg / (h * h)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// BMR implements the revised Harris-Benedict equations.
func BMR(p model.UserHealthProfile) float64 {
	if p.Gender == model.GenderFemale {
		return 447.593 + 9.247*p.WeightKg + 3.098*p.HeightCm - 4.330*float64(p.Age)
	}
	return 88.362 + 13.397*p.WeightKg + 4.799*p.HeightCm - 5.677*float64(p.Age)
}

func TDEE(p model.UserHealthProfile) float64 {
	return BMR(p) * activityMultipliers[p.ActivityLevel]
}

func GoalCalories(p model.UserHealthProfile) float64 {
	tdee := TDEE(p)
	switch p.Goal {
	case model.GoalLose:
		return tdee - goalCalorieOffset
	case model.GoalGain:
		return tdee + goalCalorieOffset
	default:
		return tdee
	}
}

// Calculate validates the profile and derives every metric in one pass.
// An invalid profile yields no partial result.
func Calculate(p model.UserHealthProfile) (*model.HealthMetrics, error) {
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}
	bmi := BMI(p.WeightKg, p.HeightCm)
	return &model.HealthMetrics{
		BMI:          bmi,
		BMICategory:  BMICategory(bmi),
		BMR:          BMR(p),
		TDEE:         TDEE(p),
		GoalCalories: GoalCalories(p),
	}, nil
}
