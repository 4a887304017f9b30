package bmi

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	bmiengine "github.com/gileadraab/bmi-calculator/internal/bmi"
)

func TestParseConfig(t *testing.T) {
	fs := flag.NewFlagSet("bmi", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-weight", "70", "-height", "175"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Weight != "70" || cfg.Height != "175" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Unit != "cm" {
		t.Fatalf("expected default unit cm, got %q", cfg.Unit)
	}
}

func TestRunPrintsResult(t *testing.T) {
	var out bytes.Buffer
	err := Run(Config{Weight: "70", Height: "175", Unit: "cm"}, &out)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "BMI: 22.9") {
		t.Fatalf("expected BMI 22.9 in output, got %q", got)
	}
	if !strings.Contains(got, "Normal weight") {
		t.Fatalf("expected category in output, got %q", got)
	}
}

func TestRunMeterUnit(t *testing.T) {
	var out bytes.Buffer
	err := Run(Config{Weight: "120", Height: "1.7", Unit: "m"}, &out)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "BMI: 41.5") {
		t.Fatalf("expected BMI 41.5 in output, got %q", out.String())
	}
}

func TestRunReportsValidationFailure(t *testing.T) {
	var out bytes.Buffer
	err := Run(Config{Weight: "", Height: "175", Unit: "cm"}, &out)
	if !errors.Is(err, bmiengine.ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", out.String())
	}
}

func TestRunRejectsUnknownUnit(t *testing.T) {
	var out bytes.Buffer
	err := Run(Config{Weight: "70", Height: "175", Unit: "ft"}, &out)
	if !errors.Is(err, bmiengine.ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
}
