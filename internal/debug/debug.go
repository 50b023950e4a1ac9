package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables debug logging.
const EnvVar = "DESIGNER_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = slog.New(slog.NewJSONHandler(io.Discard, nil))
	envOnce sync.Once
)

// Init opens path for appending and routes all debug output to it.
// An empty path disables logging.
func Init(path string) error {
	envOnce.Do(func() {})
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	closeLocked()
	if path == "" {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return nil
}

func closeLocked() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// fromEnv lazily honours DESIGNER_DEBUG the first time logging is used.
func fromEnv() {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			mu.Lock()
			_ = initLocked(path)
			mu.Unlock()
		}
	})
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	return err
}

// Logger returns the structured logger backing Log.
func Logger() *slog.Logger {
	fromEnv()
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Enabled reports whether debug output is going anywhere.
func Enabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Logf is an alias for Log.
func Logf(format string, args ...any) {
	Log(format, args...)
}
