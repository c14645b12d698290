package plan

// Macros is the protein/fat/carb split of a calorie target, with optional
// hand-measure portions (zero when portions are disabled).
type Macros struct {
	ProteinG    int
	FatG        int
	CarbG       int
	ProteinKcal int
	FatKcal     int
	CarbKcal    int

	PortionProtein int
	PortionCarbs   int
	PortionFats    int
}

// MacroAllocator splits calories using the protein factor, fat table and
// portion sizes from its config.
type MacroAllocator struct {
	cfg Config
}

// NewMacroAllocator returns an allocator over a private copy of cfg.
func NewMacroAllocator(cfg Config) *MacroAllocator {
	return &MacroAllocator{cfg: cfg.clone()}
}

// FatPct returns the share of calories from fat for pref.
func (m *MacroAllocator) FatPct(pref DietPreference) float64 {
	if pct, ok := m.cfg.FatTable[pref]; ok {
		return pct
	}
	return DefaultFatPct
}

// Allocate splits calories for a client weighing weightKG. Every step rounds
// to whole grams before the next one reads it; carbs get whatever protein
// and fat leave over, never less than zero.
func (m *MacroAllocator) Allocate(calories int, weightKG float64, pref DietPreference) Macros {
	var out Macros

	out.ProteinG = Round(m.cfg.ProteinPerKg * weightKG)
	out.ProteinKcal = out.ProteinG * 4

	fatKcal := float64(calories) * m.FatPct(pref)
	out.FatG = Round(fatKcal / 9)
	out.FatKcal = Round(fatKcal)

	remaining := float64(calories) - (float64(out.ProteinKcal) + fatKcal)
	if remaining < 0 {
		remaining = 0
	}
	out.CarbG = Round(remaining / 4)
	out.CarbKcal = out.CarbG * 4

	if m.cfg.Portions {
		out.PortionProtein = portions(out.ProteinG, m.cfg.PalmProteinG)
		out.PortionCarbs = portions(out.CarbG, m.cfg.HandfulCarbG)
		out.PortionFats = portions(out.FatG, m.cfg.ThumbFatG)
	}
	return out
}

// portions converts grams to hand-measure units, never reporting fewer than one.
func portions(grams int, perUnit float64) int {
	if perUnit <= 0 {
		return 1
	}
	n := Round(float64(grams) / perUnit)
	if n < 1 {
		return 1
	}
	return n
}
