package bmi

// Category classifies a body mass index into one of six ordered weight
// status bands.
type Category int

const (
	CategoryUnspecified Category = iota
	CategoryUnderweight
	CategoryNormal
	CategoryOverweight
	CategoryObesityI
	CategoryObesityII
	CategoryObesityIII
)

// Classification thresholds. Each lower bound is inclusive: a BMI of
// exactly 25.0 is Overweight, exactly 40.0 is ObesityIII.
const (
	thresholdNormal     = 18.5
	thresholdOverweight = 25.0
	thresholdObesityI   = 30.0
	thresholdObesityII  = 35.0
	thresholdObesityIII = 40.0
)

func (c Category) String() string {
	switch c {
	case CategoryUnderweight:
		return "Underweight"
	case CategoryNormal:
		return "Normal weight"
	case CategoryOverweight:
		return "Overweight"
	case CategoryObesityI:
		return "Obesity class I"
	case CategoryObesityII:
		return "Obesity class II"
	case CategoryObesityIII:
		return "Obesity class III"
	default:
		return "Unspecified"
	}
}

// Description returns the display text shown alongside the category.
func (c Category) Description() string {
	switch c {
	case CategoryUnderweight:
		return "Below the healthy weight range."
	case CategoryNormal:
		return "Within the healthy weight range."
	case CategoryOverweight:
		return "Above the healthy weight range."
	case CategoryObesityI:
		return "Obesity, class I."
	case CategoryObesityII:
		return "Obesity, class II."
	case CategoryObesityIII:
		return "Obesity, class III."
	default:
		return ""
	}
}

// Categorize maps a BMI value to its weight status band. It is total over
// finite non-negative inputs; boundary values belong to the higher band.
func Categorize(bmi float64) Category {
	switch {
	case bmi < thresholdNormal:
		return CategoryUnderweight
	case bmi < thresholdOverweight:
		return CategoryNormal
	case bmi < thresholdObesityI:
		return CategoryOverweight
	case bmi < thresholdObesityII:
		return CategoryObesityI
	case bmi < thresholdObesityIII:
		return CategoryObesityII
	default:
		return CategoryObesityIII
	}
}
