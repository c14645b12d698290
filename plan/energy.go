package plan

import (
	"math"
	"strings"
)

// ActivityLevel is the self-reported daily activity bucket.
type ActivityLevel string

const (
	Sedentary        ActivityLevel = "sedentary"
	LightlyActive    ActivityLevel = "lightly_active"
	ModeratelyActive ActivityLevel = "moderately_active"
	VeryActive       ActivityLevel = "very_active"
	ExtremelyActive  ActivityLevel = "extremely_active"
)

// DefaultActivityFactor is used for activity levels missing from the table.
const DefaultActivityFactor = 1.2

// Round rounds half away from zero to the nearest integer.
func Round(x float64) int {
	return int(math.Round(x))
}

// BMR computes basal metabolic rate with Mifflin-St Jeor. Only "male"
// (case-insensitive) takes the male constant; every other value uses the
// female one.
func BMR(sex string, ageYears int, weightKG, heightCM float64) float64 {
	bmr := 10*weightKG + 6.25*heightCM - 5*float64(ageYears)
	if strings.EqualFold(strings.TrimSpace(sex), "male") {
		return bmr + 5
	}
	return bmr - 161
}

// ActivityFactor looks up the TDEE multiplier for level, falling back to the
// sedentary factor for unknown levels.
func ActivityFactor(factors map[ActivityLevel]float64, level ActivityLevel) float64 {
	if f, ok := factors[level]; ok {
		return f
	}
	return DefaultActivityFactor
}

// TDEE multiplies BMR by the activity factor.
func TDEE(bmr float64, factor float64) float64 {
	return bmr * factor
}
