package main

import (
	"lg/metabolic-plan-api/plan"
)

// dateLayout is the wire format for goal_date.
const dateLayout = "2006-01-02"

// planRequest is the request body for POST /api/plan and /api/plan/report.
// Enum fields the core has defaults for (activity level, intensity, diet
// preference) are passed through unchecked; units and goal must be known.
type planRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	Sex            string  `json:"sex"             binding:"required"`
	Age            int     `json:"age"             binding:"required,gt=0,lte=130"`
	Weight         float64 `json:"weight"          binding:"required,gt=0"`
	WeightUnit     string  `json:"weight_unit"     binding:"required,oneof=kg lb"`
	Height         float64 `json:"height"          binding:"required,gt=0"`
	HeightUnit     string  `json:"height_unit"     binding:"required,oneof=cm in"`
	ActivityLevel  string  `json:"activity_level"  binding:"required"`
	Goal           string  `json:"goal"            binding:"required,oneof=lose maintain gain"`
	DietPreference string  `json:"diet_preference"`

	// Mode is "date" or "intensity". Empty picks date when goal_date is
	// present, otherwise the server default.
	Mode string `json:"mode"`

	GoalWeight     float64 `json:"goal_weight"      binding:"omitempty,gt=0"`
	GoalWeightUnit string  `json:"goal_weight_unit" binding:"omitempty,oneof=kg lb"`
	GoalDate       string  `json:"goal_date"` // YYYY-MM-DD

	Intensity string `json:"intensity"`
}

// planResponse is the response shape for POST /api/plan.
type planResponse struct {
	Client   planRequest   `json:"client"`
	Plan     plan.Result   `json:"plan"`
	MealPlan plan.MealPlan `json:"meal_plan"`
}

// profile converts the request into the core's input. goalDate is parsed
// by the caller so each endpoint can apply its own leniency.
func (r planRequest) profile() plan.ClientProfile {
	diet := r.DietPreference
	if diet == "" {
		diet = string(plan.Balanced)
	}
	intensity := r.Intensity
	if intensity == "" {
		intensity = string(plan.Moderate)
	}
	return plan.ClientProfile{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Sex:            r.Sex,
		Age:            r.Age,
		Weight:         r.Weight,
		WeightUnit:     plan.WeightUnit(r.WeightUnit),
		Height:         r.Height,
		HeightUnit:     plan.HeightUnit(r.HeightUnit),
		ActivityLevel:  plan.ActivityLevel(r.ActivityLevel),
		Goal:           plan.Goal(r.Goal),
		DietPreference: plan.DietPreference(diet),
		GoalWeight:     r.GoalWeight,
		GoalWeightUnit: plan.WeightUnit(r.GoalWeightUnit),
		Intensity:      plan.Intensity(intensity),
	}
}
