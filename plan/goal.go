package plan

import "time"

// GoalInput is everything the goal planner needs from upstream stages.
type GoalInput struct {
	Goal      Goal
	Intensity Intensity
	BMR       int
	TDEE      int

	// Date mode only.
	WeightLb     float64
	GoalWeightLb float64
	GoalDate     time.Time
	Today        time.Time
}

// GoalOutcome is the calorie target plus the figures that explain it.
// LbsToLose, WeeksToGoal, WeeklyLoss and DailyDeficit are only filled in
// the date mode; Delta only in the intensity mode.
type GoalOutcome struct {
	Calories     int
	DailyDeficit int
	LbsToLose    float64
	WeeksToGoal  float64
	WeeklyLoss   float64
	Delta        int
}

// GoalPlanner turns TDEE into a daily calorie target for a goal. The same
// planner serves both modes; cfg.Mode picks the branch and cfg holds every
// constant either branch reads.
type GoalPlanner struct {
	cfg Config
}

// NewGoalPlanner returns a planner over a private copy of cfg.
func NewGoalPlanner(cfg Config) *GoalPlanner {
	return &GoalPlanner{cfg: cfg.clone()}
}

// Plan derives the calorie target for in. It never fails: unknown goals are
// treated as maintain, unknown intensities use the moderate delta, and the
// BMR floor (when enabled) is applied last.
func (g *GoalPlanner) Plan(in GoalInput) GoalOutcome {
	var out GoalOutcome
	if g.cfg.Mode == IntensityMode {
		out = g.byIntensity(in)
	} else {
		out = g.byDate(in)
	}

	if g.cfg.BMRFloor {
		if minSafe := in.BMR + g.cfg.BMRBuffer; out.Calories < minSafe {
			out.Calories = minSafe
		}
	}
	return out
}

// byDate sizes the deficit from how many pounds remain and how many weeks
// are left, inside the weekly-loss and daily-deficit rails.
func (g *GoalPlanner) byDate(in GoalInput) GoalOutcome {
	days := daysBetween(in.Today, in.GoalDate)
	if days < 1 {
		days = 1
	}
	weeks := float64(days) / 7.0

	lbs := in.WeightLb - in.GoalWeightLb
	if lbs < 0 {
		lbs = 0
	}

	out := GoalOutcome{LbsToLose: lbs, WeeksToGoal: weeks}

	switch in.Goal {
	case Lose:
		if lbs > 0 {
			raw := 0.0
			if weeks > 0 {
				raw = lbs / weeks
			}
			out.WeeklyLoss = clamp(raw, g.cfg.MinWeeklyLossLb, g.cfg.MaxWeeklyLossLb)
			deficit := Round(out.WeeklyLoss * g.cfg.KcalPerWeeklyLb)
			out.DailyDeficit = clampInt(deficit, g.cfg.MinDailyDeficit, g.cfg.MaxDailyDeficit)
		}
		out.Calories = in.TDEE - out.DailyDeficit
	case Gain:
		out.Calories = in.TDEE + g.gainDelta(in.Intensity)
	default:
		out.Calories = in.TDEE
	}
	return out
}

// byIntensity applies the fixed delta for the named intensity.
func (g *GoalPlanner) byIntensity(in GoalInput) GoalOutcome {
	delta := g.intensityDelta(in.Intensity)
	out := GoalOutcome{}

	switch in.Goal {
	case Lose:
		out.Delta = delta
		out.Calories = in.TDEE - delta
		if out.Calories < g.cfg.LoseFloor {
			out.Calories = g.cfg.LoseFloor
		}
	case Gain:
		out.Delta = g.gainDelta(in.Intensity)
		out.Calories = in.TDEE + out.Delta
	default:
		out.Calories = in.TDEE
	}
	return out
}

func (g *GoalPlanner) intensityDelta(i Intensity) int {
	if d, ok := g.cfg.IntensityDeltas[i]; ok {
		return d
	}
	return DefaultIntensityDelta
}

func (g *GoalPlanner) gainDelta(i Intensity) int {
	if g.cfg.GainUsesIntensity {
		return g.intensityDelta(i)
	}
	return g.cfg.GainDelta
}

// daysBetween counts calendar days from from to to, ignoring time of day.
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
