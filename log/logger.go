// Package log wraps zerolog with a process-wide base logger
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for the base logger
type Config struct {
	Level     string    // "debug", "info", ...; empty falls back to DROPCHAIN_LOG_LEVEL then info
	Output    io.Writer // nil discards; the demo owns the terminal so nothing goes to stdout
	Component string    // default component attached to every entry
}

var (
	mu         sync.Mutex
	configured bool
	base       = zerolog.Nop()
)

// Configure installs the base logger
// First call wins; later calls are no-ops until Reset
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if configured {
		return
	}
	configured = true

	level := zerolog.InfoLevel
	raw := cfg.Level
	if raw == "" {
		raw = os.Getenv("DROPCHAIN_LOG_LEVEL")
	}
	if raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano

	writer := cfg.Output
	if writer == nil {
		writer = io.Discard
	}

	ctx := zerolog.New(writer).Level(level).With().Timestamp()
	if cfg.Component != "" {
		ctx = ctx.Str("component", cfg.Component)
	}
	base = ctx.Logger()
}

// Reset drops the configured logger so Configure can run again
// Test helper
func Reset() {
	mu.Lock()
	configured = false
	base = zerolog.Nop()
	mu.Unlock()
}

// Base returns the configured base logger, a no-op logger before Configure
func Base() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return base
}

// WithComponent returns a child logger annotated with the given component name
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
