// Package bmi implements the one-shot command line calculator.
package bmi

import (
	"flag"
	"fmt"
	"io"

	bmiengine "github.com/gileadraab/bmi-calculator/internal/bmi"
)

// Config holds the CLI inputs.
type Config struct {
	Weight string
	Height string
	Unit   string
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.Weight, "weight", "", "body weight in kilograms")
	fs.StringVar(&cfg.Height, "height", "", "body height")
	fs.StringVar(&cfg.Unit, "unit", "cm", "height unit: cm or m")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run validates the inputs, computes the BMI, and writes the result.
func Run(cfg Config, out io.Writer) error {
	unit, err := bmiengine.ParseUnit(cfg.Unit)
	if err != nil {
		return err
	}

	measurement, err := bmiengine.Validate(cfg.Weight, cfg.Height, unit)
	if err != nil {
		return err
	}

	result, err := bmiengine.Compute(measurement)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "BMI: %.1f (%s)\n%s\n", result.Value, result.Category, result.Description)
	return nil
}
