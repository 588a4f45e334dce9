package model

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityExtra     ActivityLevel = "extra"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// UserHealthProfile is persisted as the userHealthData record. JSON field
// names match the stored shape and must not change.
type UserHealthProfile struct {
	Gender            Gender        `json:"gender"`
	Age               int           `json:"age"`
	HeightCm          float64       `json:"height"`
	WeightKg          float64       `json:"weight"`
	ActivityLevel     ActivityLevel `json:"activityLevel"`
	Goal              Goal          `json:"goal"`
	MealsPerDay       int           `json:"mealsPerDay"`
	DietaryPreference string        `json:"dietaryPreference,omitempty"`
	Allergies         string        `json:"allergies,omitempty"`
	HealthConditions  string        `json:"healthConditions,omitempty"`
}

// FoodEntry is one element of the persisted foodLog record. ID is assigned
// once at insertion and survives edits; Date and Time are stamped at
// insertion and never re-stamped.
type FoodEntry struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Calories int      `json:"calories"`
	ProteinG float64  `json:"protein"`
	CarbsG   float64  `json:"carbs"`
	FatG     float64  `json:"fats"`
	MealType MealType `json:"mealType"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
}

// HealthMetrics carries the derived physiological numbers for a valid
// profile. Never persisted.
type HealthMetrics struct {
	BMI          float64 `json:"bmi"`
	BMICategory  string  `json:"bmiCategory"`
	BMR          float64 `json:"bmr"`
	TDEE         float64 `json:"tdee"`
	GoalCalories float64 `json:"goalCalories"`
}

// DietPlan is the daily macro target derived from goal calories.
type DietPlan struct {
	Calories int `json:"calories"`
	ProteinG int `json:"protein"`
	CarbsG   int `json:"carbs"`
	FatG     int `json:"fats"`
}

// MealPlan is DietPlan divided across meals, each field rounded on its own.
type MealPlan struct {
	Meals    int `json:"meals"`
	Calories int `json:"calories"`
	ProteinG int `json:"protein"`
	CarbsG   int `json:"carbs"`
	FatG     int `json:"fats"`
}

// ProgressSnapshot expresses today's totals against the diet plan. A nil
// percentage means the corresponding goal is zero or absent and the value
// is deliberately not computed.
type ProgressSnapshot struct {
	Date          string  `json:"date"`
	TotalCalories int     `json:"totalCalories"`
	TotalProteinG float64 `json:"totalProtein"`
	TotalCarbsG   float64 `json:"totalCarbs"`
	TotalFatG     float64 `json:"totalFats"`
	CaloriesPct   *int    `json:"caloriesPct,omitempty"`
	ProteinPct    *int    `json:"proteinPct,omitempty"`
	CarbsPct      *int    `json:"carbsPct,omitempty"`
	FatsPct       *int    `json:"fatsPct,omitempty"`
	WaterGlasses  int     `json:"waterGlasses"`
	WaterPct      int     `json:"waterPct"`
}

type ReportType string

const (
	ReportDaily  ReportType = "daily"
	ReportWeekly ReportType = "weekly"
)

// Report is a read-only projection handed to an external renderer.
type Report struct {
	Type     ReportType      `json:"type"`
	Sections []ReportSection `json:"sections"`
}

type ReportSection struct {
	Title string      `json:"title"`
	Rows  [][2]string `json:"rows"`
}
