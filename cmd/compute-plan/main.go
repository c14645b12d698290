// CLI tool to compute one plan from flags and print it as JSON.
// Usage: go run ./cmd/compute-plan -sex male -age 30 -weight 80 -height 180 -goal lose -goal-weight 72 -goal-date 2026-12-01
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"lg/metabolic-plan-api/plan"
)

// input mirrors the HTTP request body's validation rules.
type input struct {
	Sex           string  `validate:"required"`
	Age           int     `validate:"gt=0,lte=130"`
	Weight        float64 `validate:"gt=0"`
	WeightUnit    string  `validate:"oneof=kg lb"`
	Height        float64 `validate:"gt=0"`
	HeightUnit    string  `validate:"oneof=cm in"`
	ActivityLevel string  `validate:"required"`
	Goal          string  `validate:"oneof=lose maintain gain"`
	Diet          string
	Mode          string `validate:"omitempty,oneof=date intensity"`
	Intensity     string
	GoalWeight    float64 `validate:"omitempty,gt=0"`
	GoalDate      string  `validate:"omitempty,datetime=2006-01-02"`
}

type output struct {
	Plan     plan.Result   `json:"plan"`
	MealPlan plan.MealPlan `json:"meal_plan"`
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	// Optional: only PLAN_DEFAULT_MODE is read from the environment.
	_ = godotenv.Load()

	var in input
	flag.StringVar(&in.Sex, "sex", "", "male or female")
	flag.IntVar(&in.Age, "age", 0, "age in years")
	flag.Float64Var(&in.Weight, "weight", 0, "current weight")
	flag.StringVar(&in.WeightUnit, "weight-unit", "kg", "kg or lb")
	flag.Float64Var(&in.Height, "height", 0, "height")
	flag.StringVar(&in.HeightUnit, "height-unit", "cm", "cm or in")
	flag.StringVar(&in.ActivityLevel, "activity", "sedentary", "activity level")
	flag.StringVar(&in.Goal, "goal", "maintain", "lose, maintain or gain")
	flag.StringVar(&in.Diet, "diet", string(plan.Balanced), "balanced, low_carb or high_carb")
	flag.StringVar(&in.Mode, "mode", "", "date or intensity (default: date when -goal-date is set)")
	flag.StringVar(&in.Intensity, "intensity", string(plan.Moderate), "mild, moderate or aggressive")
	flag.Float64Var(&in.GoalWeight, "goal-weight", 0, "goal weight, in -weight-unit")
	flag.StringVar(&in.GoalDate, "goal-date", "", "goal date, YYYY-MM-DD")
	flag.Parse()

	if err := validator.New().Struct(in); err != nil {
		fail("Invalid input: %v", err)
	}

	mode, ok := plan.ParseMode(os.Getenv("PLAN_DEFAULT_MODE"))
	if !ok {
		mode = plan.DateMode
	}
	switch {
	case in.Mode != "":
		mode, _ = plan.ParseMode(in.Mode)
	case in.GoalDate != "":
		mode = plan.DateMode
	}

	profile := plan.ClientProfile{
		Sex:            in.Sex,
		Age:            in.Age,
		Weight:         in.Weight,
		WeightUnit:     plan.WeightUnit(in.WeightUnit),
		Height:         in.Height,
		HeightUnit:     plan.HeightUnit(in.HeightUnit),
		ActivityLevel:  plan.ActivityLevel(in.ActivityLevel),
		Goal:           plan.Goal(in.Goal),
		DietPreference: plan.DietPreference(in.Diet),
		GoalWeight:     in.GoalWeight,
		Intensity:      plan.Intensity(in.Intensity),
	}
	if mode == plan.DateMode {
		if in.GoalWeight <= 0 || in.GoalDate == "" {
			fail("Invalid input: date mode needs -goal-weight and -goal-date")
		}
		// Already checked by the datetime rule.
		profile.GoalDate, _ = time.Parse("2006-01-02", in.GoalDate)
	}

	p := plan.NewPlanner(plan.Preset(mode))
	result := p.Compute(profile)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output{
		Plan:     result,
		MealPlan: p.BuildMealPlan(plan.Goal(in.Goal), plan.DietPreference(in.Diet), result.Calories),
	}); err != nil {
		fail("Error writing plan: %v", err)
	}
}
