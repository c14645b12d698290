// Package plan computes a daily calorie and macronutrient plan from a client's
// biometrics: unit normalization, BMR (Mifflin-St Jeor), TDEE, a goal
// calorie target and a macro split. Every call is a pure function of its
// input and the planner's config; a Planner is safe for concurrent use.
package plan

import (
	"math"
	"time"
)

// Result is one computed plan. The date-mode fields (LbsToLose through
// DailyDeficit) and the portion counts are zero when the active config
// doesn't produce them.
type Result struct {
	Mode           Mode    `json:"mode"`
	BMR            int     `json:"bmr"`
	TDEE           int     `json:"tdee"`
	ActivityFactor float64 `json:"activity_factor"`
	Calories       int     `json:"calories"`

	ProteinG    int `json:"protein_g"`
	FatG        int `json:"fat_g"`
	CarbG       int `json:"carb_g"`
	ProteinKcal int `json:"protein_kcal"`
	FatKcal     int `json:"fat_kcal"`
	CarbKcal    int `json:"carb_kcal"`

	LbsToLose      float64 `json:"lbs_to_lose"`
	WeeksToGoal    float64 `json:"weeks_to_goal"`
	WeeklyLoss     float64 `json:"weekly_loss"`
	DailyDeficit   int     `json:"daily_deficit"`
	IntensityDelta int     `json:"intensity_delta,omitempty"`

	PortionProtein int `json:"portion_protein,omitempty"`
	PortionCarbs   int `json:"portion_carbs,omitempty"`
	PortionFats    int `json:"portion_fats,omitempty"`
}

// Planner runs the whole pipeline for one config.
type Planner struct {
	cfg    Config
	goals  *GoalPlanner
	macros *MacroAllocator
	now    func() time.Time
}

// Option customizes a Planner.
type Option func(*Planner)

// WithClock sets the source of "today" for the date mode.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// NewPlanner builds a planner from cfg. The planner keeps its own copy of
// the config's lookup tables.
func NewPlanner(cfg Config, opts ...Option) *Planner {
	cfg = cfg.clone()
	p := &Planner{
		cfg:    cfg,
		goals:  NewGoalPlanner(cfg),
		macros: NewMacroAllocator(cfg),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mode reports which goal mode the planner runs.
func (p *Planner) Mode() Mode {
	return p.cfg.Mode
}

// Compute runs profile through normalization, energy, goal and macro stages.
func (p *Planner) Compute(profile ClientProfile) Result {
	m := Normalize(profile)

	// BMR is rounded before the activity factor is applied.
	bmr := Round(BMR(m.Sex, m.Age, m.WeightKG, m.HeightCM))
	factor := ActivityFactor(p.cfg.ActivityFactors, m.ActivityLevel)
	tdee := Round(TDEE(float64(bmr), factor))

	goal := p.goals.Plan(GoalInput{
		Goal:         m.Goal,
		Intensity:    m.Intensity,
		BMR:          bmr,
		TDEE:         tdee,
		WeightLb:     m.WeightLb,
		GoalWeightLb: m.GoalWeightLb,
		GoalDate:     m.GoalDate,
		Today:        p.now(),
	})

	mac := p.macros.Allocate(goal.Calories, m.WeightKG, m.DietPreference)

	r := Result{
		Mode:           p.cfg.Mode,
		BMR:            bmr,
		TDEE:           tdee,
		ActivityFactor: factor,
		Calories:       goal.Calories,
		ProteinG:       mac.ProteinG,
		FatG:           mac.FatG,
		CarbG:          mac.CarbG,
		ProteinKcal:    mac.ProteinKcal,
		FatKcal:        mac.FatKcal,
		CarbKcal:       mac.CarbKcal,
		DailyDeficit:   goal.DailyDeficit,
		IntensityDelta: goal.Delta,
		PortionProtein: mac.PortionProtein,
		PortionCarbs:   mac.PortionCarbs,
		PortionFats:    mac.PortionFats,
	}
	if p.cfg.Mode == DateMode {
		r.LbsToLose = roundTo(goal.LbsToLose, 1)
		r.WeeksToGoal = roundTo(goal.WeeksToGoal, 1)
		r.WeeklyLoss = roundTo(goal.WeeklyLoss, 2)
	}
	return r
}

func roundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
