package logging

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLevel  = "INVOKER_LOG_LEVEL"
	EnvDir    = "INVOKER_LOG_DIR"
	EnvSource = "INVOKER_LOG_SOURCE"
)

// LoadDotEnv loads variables from the given .env files (".env" if none are
// given) without overriding variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ConfigFromEnv returns DefaultConfig overridden by INVOKER_LOG_* variables.
// Unparseable values are ignored.
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv(EnvLevel); ok {
		if level, ok := parseLevel(v); ok {
			cfg.Level = level
		}
	}
	if v, ok := os.LookupEnv(EnvDir); ok {
		cfg.Rotation.Dir = v
	}
	if v, ok := os.LookupEnv(EnvSource); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AddSource = b
		}
	}

	return cfg
}

func parseLevel(s string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, false
	}
	return level, true
}
