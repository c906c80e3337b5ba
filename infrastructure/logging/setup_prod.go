//go:build prod

package logging

import (
	"fmt"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup installs a logger writing to a lumberjack-rotated file and nothing
// else. The returned close function closes the file.
func Setup(cfg *Config) (*slog.Logger, func() error, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	path, err := cfg.Rotation.Path()
	if err != nil {
		return nil, nil, fmt.Errorf("log directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.Rotation.MaxSizeMB,
		MaxBackups: cfg.Rotation.MaxBackups,
		MaxAge:     cfg.Rotation.MaxAgeDays,
		Compress:   cfg.Rotation.Compress,
		LocalTime:  true,
	}

	return install(file, cfg), file.Close, nil
}
