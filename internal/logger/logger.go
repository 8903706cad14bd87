// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"sync"
)

type Config struct {
	Debug bool
	// Output receives log lines when Debug is set. Usually os.Stderr.
	Output io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup replaces the global logger. Without Debug all output is dropped.
func Setup(cfg Config) {
	l := discard()
	if cfg.Debug && cfg.Output != nil {
		l = slog.New(slog.NewTextHandler(cfg.Output, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	mu.Lock()
	global = l
	mu.Unlock()
}

// L returns the global logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
