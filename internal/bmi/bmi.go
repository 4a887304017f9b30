// Package bmi implements body mass index validation, computation, and
// classification.
package bmi

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMissingInput indicates weight or height was empty after trimming.
var ErrMissingInput = errors.New("weight and height are required")

// ErrNotNumeric indicates weight or height did not parse as a finite number.
var ErrNotNumeric = errors.New("weight and height must be decimal numbers")

// ErrNonPositive indicates weight or height was zero or negative.
var ErrNonPositive = errors.New("weight and height must be greater than zero")

// ErrWeightOutOfRange indicates the weight exceeds the measurable range.
var ErrWeightOutOfRange = errors.New("weight must be at most 1000 kg")

// ErrHeightOutOfRange indicates the height is outside the measurable range.
var ErrHeightOutOfRange = errors.New("height is outside the measurable range")

// ErrInvalidUnit indicates an unrecognized height unit.
var ErrInvalidUnit = errors.New("height unit must be centimeters or meters")

// ErrInvalidMeasurement indicates a measurement that skipped validation.
var ErrInvalidMeasurement = errors.New("measurement violates validation invariants")

// maxWeightKg caps the accepted body weight.
const maxWeightKg = 1000

// Height acceptance ranges, inclusive on both ends.
const (
	minHeightCm = 50
	maxHeightCm = 300
	minHeightM  = 0.5
	maxHeightM  = 3
)

// Unit identifies the unit a height value was entered in.
type Unit int

const (
	UnitUnspecified Unit = iota
	UnitCentimeter
	UnitMeter
)

func (u Unit) String() string {
	switch u {
	case UnitCentimeter:
		return "cm"
	case UnitMeter:
		return "m"
	default:
		return "unspecified"
	}
}

// ParseUnit parses a height unit from user-facing text.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cm", "centimeter", "centimeters":
		return UnitCentimeter, nil
	case "m", "meter", "meters":
		return UnitMeter, nil
	default:
		return UnitUnspecified, fmt.Errorf("%w: got %q", ErrInvalidUnit, s)
	}
}

// Measurement is a validated weight and height pair. The height keeps the
// unit it was entered in; conversion to meters happens in Compute so the
// two steps stay independently testable.
type Measurement struct {
	WeightKg    float64
	HeightValue float64
	HeightUnit  Unit
}

// Result is a computed body mass index with its classification. Value is
// rounded to one decimal place and Category is derived from the rounded
// value, so the two can never disagree.
type Result struct {
	Value       float64
	Category    Category
	Description string
}

// Validate checks raw weight and height text against the acceptance rules
// and returns a Measurement ready for Compute.
//
// Rules are applied in order and the first failing rule wins, with both
// fields checked per rule: presence, numeric parse, positivity, weight
// ceiling, height range for the given unit. Only the matching sentinel
// error is returned; rendering any user notification is the caller's
// responsibility.
func Validate(weightRaw, heightRaw string, unit Unit) (Measurement, error) {
	weightText := strings.TrimSpace(weightRaw)
	heightText := strings.TrimSpace(heightRaw)
	if weightText == "" || heightText == "" {
		return Measurement{}, ErrMissingInput
	}

	weight, err := parseFinite(weightText)
	if err != nil {
		return Measurement{}, fmt.Errorf("%w: weight %q", ErrNotNumeric, weightText)
	}
	height, err := parseFinite(heightText)
	if err != nil {
		return Measurement{}, fmt.Errorf("%w: height %q", ErrNotNumeric, heightText)
	}

	if weight <= 0 || height <= 0 {
		return Measurement{}, ErrNonPositive
	}
	if weight > maxWeightKg {
		return Measurement{}, ErrWeightOutOfRange
	}

	switch unit {
	case UnitCentimeter:
		if height < minHeightCm || height > maxHeightCm {
			return Measurement{}, fmt.Errorf("%w: expected %d to %d cm", ErrHeightOutOfRange, minHeightCm, maxHeightCm)
		}
	case UnitMeter:
		if height < minHeightM || height > maxHeightM {
			return Measurement{}, fmt.Errorf("%w: expected %.1f to %.0f m", ErrHeightOutOfRange, minHeightM, float64(maxHeightM))
		}
	default:
		return Measurement{}, ErrInvalidUnit
	}

	return Measurement{
		WeightKg:    weight,
		HeightValue: height,
		HeightUnit:  unit,
	}, nil
}

// Compute derives the body mass index for a validated measurement.
//
// The height is normalized to meters, the raw ratio weight/height² is
// rounded to one decimal place (half away from zero), and the category is
// looked up from the rounded value. Categorizing the rounded value keeps
// the displayed number and the displayed category mutually consistent when
// rounding crosses a boundary (e.g. a raw 24.96 displays as 25.0 and must
// classify as Overweight, not Normal).
//
// Compute expects input that already passed Validate; it returns
// ErrInvalidMeasurement when the invariants do not hold.
func Compute(m Measurement) (Result, error) {
	if !isFinite(m.WeightKg) || !isFinite(m.HeightValue) || m.WeightKg <= 0 || m.HeightValue <= 0 {
		return Result{}, ErrInvalidMeasurement
	}

	var heightMeters float64
	switch m.HeightUnit {
	case UnitCentimeter:
		heightMeters = m.HeightValue / 100
	case UnitMeter:
		heightMeters = m.HeightValue
	default:
		return Result{}, fmt.Errorf("%w: unit %v", ErrInvalidMeasurement, m.HeightUnit)
	}

	raw := m.WeightKg / (heightMeters * heightMeters)
	value := roundTenth(raw)
	category := Categorize(value)

	return Result{
		Value:       value,
		Category:    category,
		Description: category.Description(),
	}, nil
}

// roundTenth rounds to one decimal place, halves away from zero.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// parseFinite parses a decimal number, rejecting NaN and infinities.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if !isFinite(v) {
		return 0, fmt.Errorf("not finite: %q", s)
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
