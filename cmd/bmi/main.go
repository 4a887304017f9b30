package main

import (
	"flag"
	"os"

	bmicmd "github.com/gileadraab/bmi-calculator/internal/cmd/bmi"
	"github.com/gileadraab/bmi-calculator/internal/platform/config"
)

// main runs the one-shot BMI calculator.
func main() {
	cfg, err := bmicmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	if err := bmicmd.Run(cfg, os.Stdout); err != nil {
		config.Exitf("%v", err)
	}
}
