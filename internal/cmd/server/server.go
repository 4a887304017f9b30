// Package server parses API server flags and runs the HTTP service.
package server

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gileadraab/bmi-calculator/internal/platform/config"
	"github.com/gileadraab/bmi-calculator/internal/platform/otel"
	"github.com/gileadraab/bmi-calculator/internal/services/api"
)

// Config holds API server command configuration.
type Config struct {
	Addr string `env:"BMI_HTTP_ADDR" envDefault:"localhost:8080"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the BMI API server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "bmi-api")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	return api.Run(ctx, api.Config{Addr: cfg.Addr})
}
