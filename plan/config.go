package plan

import (
	"maps"
	"strings"
)

// Mode selects how the goal calorie target is derived.
type Mode string

const (
	// DateMode derives a deficit from a goal weight and a goal date.
	DateMode Mode = "date"
	// IntensityMode applies a fixed delta picked by a named intensity.
	IntensityMode Mode = "intensity"
)

// ParseMode maps a request string onto a Mode, ignoring case and
// surrounding space. ok is false for anything else.
func ParseMode(s string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case DateMode, IntensityMode:
		return m, true
	}
	return "", false
}

// Protein presets, in grams per kilogram of bodyweight.
const (
	// ProteinPerPound is 1 g per pound of bodyweight.
	ProteinPerPound = 1 / LbToKg
	// ProteinPerKg is a flat 2 g per kilogram.
	ProteinPerKg = 2.0
)

// DefaultFatPct is used for diet preferences missing from the fat table.
const DefaultFatPct = 0.30

// DefaultIntensityDelta is used for intensities missing from the delta table.
const DefaultIntensityDelta = 500

/* ─── Lookup tables ──────────────────────────────────────────────────── */

// StandardActivityFactors maps each activity level to its TDEE multiplier.
func StandardActivityFactors() map[ActivityLevel]float64 {
	return map[ActivityLevel]float64{
		Sedentary:        1.2,
		LightlyActive:    1.375,
		ModeratelyActive: 1.55,
		VeryActive:       1.725,
		ExtremelyActive:  1.9,
	}
}

// StandardIntensityDeltas maps each intensity to its kcal/day delta.
func StandardIntensityDeltas() map[Intensity]int {
	return map[Intensity]int{
		Mild:       250,
		Moderate:   500,
		Aggressive: 750,
	}
}

// StandardFatTable sets the share of calories from fat per diet preference.
func StandardFatTable() map[DietPreference]float64 {
	return map[DietPreference]float64{
		LowCarb:  0.35,
		HighCarb: 0.25,
		Balanced: 0.30,
	}
}

// FlatFatTable uses 30% fat regardless of preference, as the older
// date-targeted calculator did.
func FlatFatTable() map[DietPreference]float64 {
	return map[DietPreference]float64{
		LowCarb:  0.30,
		HighCarb: 0.30,
		Balanced: 0.30,
	}
}

/* ─── Config ─────────────────────────────────────────────────────────── */

// Config is the full constants table for one pipeline. Build one from a
// preset and adjust fields before handing it to NewPlanner; the planner
// keeps its own copy of every map.
type Config struct {
	Mode Mode

	ActivityFactors map[ActivityLevel]float64
	IntensityDeltas map[Intensity]int
	FatTable        map[DietPreference]float64

	// GainDelta is added to TDEE for the gain goal unless GainUsesIntensity
	// is set, in which case the intensity delta is used instead.
	GainDelta         int
	GainUsesIntensity bool

	// Weekly loss rate bounds (lb/week) and daily deficit bounds (kcal/day)
	// for the date mode.
	MinWeeklyLossLb float64
	MaxWeeklyLossLb float64
	MinDailyDeficit int
	MaxDailyDeficit int
	// KcalPerWeeklyLb converts a weekly loss rate into a daily deficit
	// (3500 kcal per lb spread over 7 days).
	KcalPerWeeklyLb float64

	// LoseFloor is the absolute minimum for the intensity-mode lose goal.
	LoseFloor int
	// BMRFloor, when set, keeps calories at or above BMR + BMRBuffer.
	// It runs last and wins over every other clamp.
	BMRFloor  bool
	BMRBuffer int

	// ProteinPerKg is grams of protein per kilogram of bodyweight.
	ProteinPerKg float64

	// Portions enables the hand-measure counts. Grams per unit below.
	Portions     bool
	PalmProteinG float64
	HandfulCarbG float64
	ThumbFatG    float64

	// Meal suggestion data. MealShare is the fraction of daily calories
	// quoted per meal; DefaultMealKey picks the template for unknown
	// preferences.
	MealShare      float64
	MealTemplates  map[DietPreference]MealTemplate
	GoalLabels     map[Goal]string
	DefaultMealKey DietPreference
}

// DateTargeted is the goal-weight/goal-date pipeline: 1 g/lb protein, a
// flat +250 for gain, the BMR+200 floor and hand portions.
func DateTargeted() Config {
	return Config{
		Mode:            DateMode,
		ActivityFactors: StandardActivityFactors(),
		IntensityDeltas: StandardIntensityDeltas(),
		FatTable:        StandardFatTable(),
		GainDelta:       250,
		MinWeeklyLossLb: 0.5,
		MaxWeeklyLossLb: 2.0,
		MinDailyDeficit: 250,
		MaxDailyDeficit: 1000,
		KcalPerWeeklyLb: 500,
		LoseFloor:       1200,
		BMRFloor:        true,
		BMRBuffer:       200,
		ProteinPerKg:    ProteinPerPound,
		Portions:        true,
		PalmProteinG:    24,
		HandfulCarbG:    24,
		ThumbFatG:       10,
		MealShare:       0.25,
		MealTemplates:   StandardMealTemplates(),
		GoalLabels:      StandardGoalLabels(),
		DefaultMealKey:  Balanced,
	}
}

// IntensityTargeted is the named-intensity pipeline: 2 g/kg protein, the
// intensity delta for both lose and gain, and a 1200 kcal lose floor.
func IntensityTargeted() Config {
	c := DateTargeted()
	c.Mode = IntensityMode
	c.GainUsesIntensity = true
	c.BMRFloor = false
	c.ProteinPerKg = ProteinPerKg
	c.Portions = false
	return c
}

// Preset returns the preset for mode, defaulting to DateTargeted.
func Preset(mode Mode) Config {
	if mode == IntensityMode {
		return IntensityTargeted()
	}
	return DateTargeted()
}

// clone deep-copies the lookup maps so a planner never shares them with the caller.
func (c Config) clone() Config {
	c.ActivityFactors = maps.Clone(c.ActivityFactors)
	c.IntensityDeltas = maps.Clone(c.IntensityDeltas)
	c.FatTable = maps.Clone(c.FatTable)
	c.MealTemplates = maps.Clone(c.MealTemplates)
	c.GoalLabels = maps.Clone(c.GoalLabels)
	return c
}
