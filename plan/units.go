package plan

// LbToKg is the exact kilograms-per-pound conversion. All pipeline math uses it.
const LbToKg = 0.45359237

// LegacyLbToKg is the 1/2.20462 approximation some older calculators used.
// Only kept so tests can measure the drift against historical outputs.
const LegacyLbToKg = 1 / 2.20462

// CmPerInch converts inches to centimeters.
const CmPerInch = 2.54

// WeightUnit is the unit a weight was entered in.
type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lb"
)

// HeightUnit is the unit a height was entered in.
type HeightUnit string

const (
	Centimeters HeightUnit = "cm"
	Inches      HeightUnit = "in"
)

// WeightToKg converts a weight to kilograms. Anything that isn't pounds is
// passed through unchanged.
func WeightToKg(value float64, unit WeightUnit) float64 {
	if unit == Pounds {
		return value * LbToKg
	}
	return value
}

// WeightToLb converts a weight to pounds. Anything that isn't already pounds
// is treated as kilograms.
func WeightToLb(value float64, unit WeightUnit) float64 {
	if unit == Pounds {
		return value
	}
	return value / LbToKg
}

// HeightToCm converts a height to centimeters. Anything that isn't inches is
// passed through unchanged.
func HeightToCm(value float64, unit HeightUnit) float64 {
	if unit == Inches {
		return value * CmPerInch
	}
	return value
}
