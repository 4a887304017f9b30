package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gileadraab/bmi-calculator/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "BMI Calculator MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
	// httpShutdownTimeout bounds the graceful drain on cancellation.
	httpShutdownTimeout = 5 * time.Second
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	HTTPAddr  string
}

// newServer creates a configured MCP server with the BMI tools registered.
func newServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(server, domain.ComputeTool(), domain.ComputeHandler())
	mcp.AddTool(server, domain.CategorizeTool(), domain.CategorizeHandler())
	return server
}

// Run is the service entrypoint for MCP and blocks until context
// cancellation. Startup chooses stdio for local tools and HTTP for remote
// integrations.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return newServer().Run(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return runHTTP(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runHTTP serves the MCP server over streamable HTTP until the context is
// cancelled.
func runHTTP(ctx context.Context, cfg Config) error {
	addr := cfg.HTTPAddr
	if addr == "" {
		// Bind to localhost only by default.
		addr = "localhost:8081"
	}

	server := newServer()
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("bmi mcp listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("shutting down bmi mcp")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("http server error: %w", err)
	}
}
