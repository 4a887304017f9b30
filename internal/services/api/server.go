package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// shutdownTimeout bounds the graceful drain on context cancellation.
const shutdownTimeout = 5 * time.Second

// Config defines the inputs for the API server.
type Config struct {
	Addr string
}

// Run starts the HTTP API server and blocks until the context is
// cancelled or the listener fails.
func Run(ctx context.Context, cfg Config) error {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return errors.New("http address is required")
	}

	server := &http.Server{
		Addr:    addr,
		Handler: NewHandler(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("bmi api listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("shutting down bmi api")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("http server error: %w", err)
	}
}
