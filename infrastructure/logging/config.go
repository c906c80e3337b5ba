// Package logging sets up diagnostics for the invoker demo.
//
// Stdout is the demo itself: every command, receiver and invoker action
// prints exactly one line there, and nothing else may. Diagnostics therefore
// go to stderr in the default build and to a rotating file in the prod build.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const logFileName = "invoker.log"

// Config holds logging configuration options.
type Config struct {
	Level     slog.Level
	AddSource bool
	// Rotation is only consulted by the prod build.
	Rotation Rotation
}

// Rotation controls the prod build's log file. The process runs one trigger
// cycle and exits, so files stay small and few are kept.
type Rotation struct {
	// Dir defaults to <user cache dir>/invoker-go, or the temp dir.
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Level: slog.LevelInfo,
		Rotation: Rotation{
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Path resolves the log file path, creating its directory.
func (r Rotation) Path() (string, error) {
	dir := r.Dir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		dir = filepath.Join(base, "invoker-go")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, logFileName), nil
}

// install builds a text logger on w and makes it the slog default.
func install(w io.Writer, cfg *Config) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}))
	slog.SetDefault(logger)
	return logger
}

type ctxKey struct{}

// With returns a context carrying logger.
func With(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// From returns the context's logger, or slog.Default() if there is none.
func From(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

// WithAttrs returns a context whose logger has args added.
func WithAttrs(ctx context.Context, args ...any) context.Context {
	return With(ctx, From(ctx).With(args...))
}
