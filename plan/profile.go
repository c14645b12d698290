package plan

import (
	"strings"
	"time"
)

// Goal is what the client wants to do with their weight.
type Goal string

const (
	Lose     Goal = "lose"
	Maintain Goal = "maintain"
	Gain     Goal = "gain"
)

// Intensity names a fixed calorie delta for the intensity mode.
type Intensity string

const (
	Mild       Intensity = "mild"
	Moderate   Intensity = "moderate"
	Aggressive Intensity = "aggressive"
)

// DietPreference controls the fat share and the meal suggestions.
type DietPreference string

const (
	Balanced DietPreference = "balanced"
	LowCarb  DietPreference = "low_carb"
	HighCarb DietPreference = "high_carb"
)

// ClientProfile is the raw input as the client entered it. Name and email
// are carried through for rendering only.
type ClientProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	Sex            string         `json:"sex"`
	Age            int            `json:"age"`
	Weight         float64        `json:"weight"`
	WeightUnit     WeightUnit     `json:"weight_unit"`
	Height         float64        `json:"height"`
	HeightUnit     HeightUnit     `json:"height_unit"`
	ActivityLevel  ActivityLevel  `json:"activity_level"`
	Goal           Goal           `json:"goal"`
	DietPreference DietPreference `json:"diet_preference"`

	// Date mode refinement.
	GoalWeight     float64    `json:"goal_weight,omitempty"`
	GoalWeightUnit WeightUnit `json:"goal_weight_unit,omitempty"`
	GoalDate       time.Time  `json:"goal_date"`

	// Intensity mode refinement.
	Intensity Intensity `json:"intensity,omitempty"`
}

// MetricProfile is a ClientProfile with every measurement in canonical
// units. WeightLb is kept alongside WeightKg because the date mode reasons
// in pounds.
type MetricProfile struct {
	Sex            string
	Age            int
	WeightKG       float64
	WeightLb       float64
	HeightCM       float64
	ActivityLevel  ActivityLevel
	Goal           Goal
	DietPreference DietPreference
	GoalWeightLb   float64
	GoalDate       time.Time
	Intensity      Intensity
}

// Normalize converts p to canonical units and lower-cases the enum fields.
func Normalize(p ClientProfile) MetricProfile {
	wu := WeightUnit(lower(string(p.WeightUnit)))
	gwu := WeightUnit(lower(string(p.GoalWeightUnit)))
	if gwu == "" {
		gwu = wu
	}
	return MetricProfile{
		Sex:            lower(p.Sex),
		Age:            p.Age,
		WeightKG:       WeightToKg(p.Weight, wu),
		WeightLb:       WeightToLb(p.Weight, wu),
		HeightCM:       HeightToCm(p.Height, HeightUnit(lower(string(p.HeightUnit)))),
		ActivityLevel:  ActivityLevel(lower(string(p.ActivityLevel))),
		Goal:           Goal(lower(string(p.Goal))),
		DietPreference: DietPreference(lower(string(p.DietPreference))),
		GoalWeightLb:   WeightToLb(p.GoalWeight, gwu),
		GoalDate:       p.GoalDate,
		Intensity:      Intensity(lower(string(p.Intensity))),
	}
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
