package plan

import (
	"testing"
	"time"
)

func fixedClock() time.Time { return testToday }

// maleLoser is a 30y 180lb/70in moderately active man aiming for 160lb.
func maleLoser(days int) ClientProfile {
	return ClientProfile{
		FirstName:      "Sam",
		LastName:       "Rivera",
		Sex:            "male",
		Age:            30,
		Weight:         180,
		WeightUnit:     Pounds,
		Height:         70,
		HeightUnit:     Inches,
		ActivityLevel:  ModeratelyActive,
		Goal:           Lose,
		DietPreference: Balanced,
		GoalWeight:     160,
		GoalWeightUnit: Pounds,
		GoalDate:       testToday.AddDate(0, 0, days),
	}
}

// TestCompute_DateModeScenario runs the 16-week, 20 lb loss end to end.
//
// BMR = round(1782.716) = 1783; TDEE = round(1783 * 1.55) = 2764;
// 1.25 lb/week -> 625 kcal deficit -> 2139 kcal.
func TestCompute_DateModeScenario(t *testing.T) {
	p := NewPlanner(DateTargeted(), WithClock(fixedClock))
	got := p.Compute(maleLoser(16 * 7))
	want := Result{
		Mode:           DateMode,
		BMR:            1783,
		TDEE:           2764,
		ActivityFactor: 1.55,
		Calories:       2139,
		ProteinG:       180,
		FatG:           71,
		CarbG:          194,
		ProteinKcal:    720,
		FatKcal:        642,
		CarbKcal:       776,
		LbsToLose:      20,
		WeeksToGoal:    16,
		WeeklyLoss:     1.25,
		DailyDeficit:   625,
		PortionProtein: 8,
		PortionCarbs:   8,
		PortionFats:    7,
	}
	if got != want {
		t.Errorf("Compute =\n%+v\nwant\n%+v", got, want)
	}
	if got.Calories < got.BMR+200 {
		t.Errorf("calories %d below bmr+200", got.Calories)
	}
}

// TestCompute_GoalDateToday clamps the horizon to one day and the weekly
// loss to 2.0; the reported weeks round to 0.1.
func TestCompute_GoalDateToday(t *testing.T) {
	p := NewPlanner(DateTargeted(), WithClock(fixedClock))
	got := p.Compute(maleLoser(0))
	if got.WeeklyLoss != 2.0 {
		t.Errorf("WeeklyLoss = %v, want 2.0", got.WeeklyLoss)
	}
	if got.WeeksToGoal != 0.1 {
		t.Errorf("WeeksToGoal = %v, want 0.1", got.WeeksToGoal)
	}
	// 2764 - 1000 = 1764 is under bmr+200, so the floor sets the target.
	if got.DailyDeficit != 1000 || got.Calories != 1983 {
		t.Errorf("deficit/calories = %d/%d, want 1000/1983", got.DailyDeficit, got.Calories)
	}
}

// TestCompute_GoalWeightAboveCurrent gets no deficit at all.
func TestCompute_GoalWeightAboveCurrent(t *testing.T) {
	p := NewPlanner(DateTargeted(), WithClock(fixedClock))
	prof := maleLoser(112)
	prof.GoalWeight = 200
	got := p.Compute(prof)
	if got.LbsToLose != 0 || got.DailyDeficit != 0 || got.WeeklyLoss != 0 {
		t.Errorf("got lbs=%v deficit=%d weekly=%v, want zeros", got.LbsToLose, got.DailyDeficit, got.WeeklyLoss)
	}
	if got.Calories != got.TDEE {
		t.Errorf("Calories = %d, want tdee %d", got.Calories, got.TDEE)
	}
}

// TestCompute_MixedGoalWeightUnit enters current weight in lb and the goal in kg.
func TestCompute_MixedGoalWeightUnit(t *testing.T) {
	p := NewPlanner(DateTargeted(), WithClock(fixedClock))
	prof := maleLoser(112)
	prof.GoalWeight = 160 * LbToKg
	prof.GoalWeightUnit = Kilograms
	if got := p.Compute(prof); got.LbsToLose != 20 {
		t.Errorf("LbsToLose = %v, want 20", got.LbsToLose)
	}
}

// TestCompute_SmallClientFloor puts a small sedentary client on a fast
// loss; calories land on BMR+200.
//
// Female 60y 50kg 150cm: BMR = 500 + 937.5 - 300 - 161 = 976.5 -> 977
func TestCompute_SmallClientFloor(t *testing.T) {
	p := NewPlanner(DateTargeted(), WithClock(fixedClock))
	got := p.Compute(ClientProfile{
		Sex: "female", Age: 60,
		Weight: 50, WeightUnit: Kilograms,
		Height: 150, HeightUnit: Centimeters,
		ActivityLevel: Sedentary, Goal: Lose,
		GoalWeight: 45, GoalWeightUnit: Kilograms,
		GoalDate: testToday.AddDate(0, 0, 14),
	})
	if got.BMR != 977 || got.TDEE != 1172 {
		t.Fatalf("bmr/tdee = %d/%d, want 977/1172", got.BMR, got.TDEE)
	}
	if got.Calories != 1177 {
		t.Errorf("Calories = %d, want 1177", got.Calories)
	}
}

// TestCompute_IntensityMaintain: female 25y 65kg 165cm sedentary, maintain.
func TestCompute_IntensityMaintain(t *testing.T) {
	p := NewPlanner(IntensityTargeted())
	got := p.Compute(ClientProfile{
		Sex: "Female", Age: 25,
		Weight: 65, WeightUnit: Kilograms,
		Height: 165, HeightUnit: Centimeters,
		ActivityLevel: Sedentary, Goal: Maintain,
		DietPreference: Balanced,
	})
	if got.BMR != 1395 || got.TDEE != 1674 || got.Calories != 1674 {
		t.Errorf("bmr/tdee/calories = %d/%d/%d, want 1395/1674/1674", got.BMR, got.TDEE, got.Calories)
	}
	if got.ProteinG != 130 {
		t.Errorf("ProteinG = %d, want 130 (2 g/kg)", got.ProteinG)
	}
	if got.PortionProtein != 0 || got.LbsToLose != 0 || got.WeeksToGoal != 0 {
		t.Errorf("intensity mode reported date-mode fields: %+v", got)
	}
}

// TestCompute_IntensityAggressiveGain: male 40y 90kg 180cm very active.
func TestCompute_IntensityAggressiveGain(t *testing.T) {
	p := NewPlanner(IntensityTargeted())
	got := p.Compute(ClientProfile{
		Sex: "male", Age: 40,
		Weight: 90, WeightUnit: Kilograms,
		Height: 180, HeightUnit: Centimeters,
		ActivityLevel: VeryActive, Goal: Gain,
		Intensity: Aggressive,
	})
	if got.TDEE != 3157 || got.Calories != 3157+750 {
		t.Errorf("tdee/calories = %d/%d, want 3157/%d", got.TDEE, got.Calories, 3157+750)
	}
	if got.IntensityDelta != 750 {
		t.Errorf("IntensityDelta = %d, want 750", got.IntensityDelta)
	}
}

// TestCompute_Defaults sends enum values the tables don't know: activity
// falls back to sedentary and an unknown intensity to moderate.
func TestCompute_Defaults(t *testing.T) {
	p := NewPlanner(IntensityTargeted())
	got := p.Compute(ClientProfile{
		Sex: "male", Age: 40,
		Weight: 90, WeightUnit: Kilograms,
		Height: 180, HeightUnit: Centimeters,
		ActivityLevel: "couch", Goal: Lose,
		Intensity: "bogus", DietPreference: "carnivore",
	})
	if got.ActivityFactor != 1.2 {
		t.Errorf("ActivityFactor = %v, want 1.2", got.ActivityFactor)
	}
	if got.Calories != got.TDEE-500 {
		t.Errorf("Calories = %d, want tdee-500 = %d", got.Calories, got.TDEE-500)
	}
}

// TestCompute_Idempotent runs the same input twice through the same planner.
func TestCompute_Idempotent(t *testing.T) {
	for _, cfg := range []Config{DateTargeted(), IntensityTargeted()} {
		p := NewPlanner(cfg, WithClock(fixedClock))
		prof := maleLoser(60)
		if a, b := p.Compute(prof), p.Compute(prof); a != b {
			t.Errorf("mode %s: Compute not idempotent:\n%+v\n%+v", cfg.Mode, a, b)
		}
	}
}

// TestNewPlanner_CopiesTables mutates the caller's config after building a
// planner; the planner must not see the change.
func TestNewPlanner_CopiesTables(t *testing.T) {
	cfg := DateTargeted()
	p := NewPlanner(cfg, WithClock(fixedClock))
	cfg.ActivityFactors[ModeratelyActive] = 3.0
	cfg.FatTable[Balanced] = 0.9

	got := p.Compute(maleLoser(112))
	if got.ActivityFactor != 1.55 || got.FatG != 71 {
		t.Errorf("planner saw caller mutation: factor=%v fat=%d", got.ActivityFactor, got.FatG)
	}
}

// TestPreset_OverrideProtein swaps the date preset onto the per-kg protein rule.
func TestPreset_OverrideProtein(t *testing.T) {
	cfg := Preset(DateMode)
	cfg.ProteinPerKg = ProteinPerKg
	got := NewPlanner(cfg, WithClock(fixedClock)).Compute(maleLoser(112))
	// 81.6466 kg * 2.0 = 163.3 -> 163
	if got.ProteinG != 163 {
		t.Errorf("ProteinG = %d, want 163", got.ProteinG)
	}
	if Preset(IntensityMode).Mode != IntensityMode || Preset("").Mode != DateMode {
		t.Error("Preset returned the wrong mode")
	}
}

func TestParseMode(t *testing.T) {
	if m, ok := ParseMode("date"); !ok || m != DateMode {
		t.Errorf("ParseMode(date) = %q, %v", m, ok)
	}
	if m, ok := ParseMode("intensity"); !ok || m != IntensityMode {
		t.Errorf("ParseMode(intensity) = %q, %v", m, ok)
	}
	if _, ok := ParseMode("weekly"); ok {
		t.Error("ParseMode(weekly) should fail")
	}
}
