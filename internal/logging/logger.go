// Package logging configures the application's structured logger: JSON
// records appended to a platform-conventional log file, with simple
// size-based rotation.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// rotateAt is the log file size that triggers rotation (5 MB).
	rotateAt = 5 * 1024 * 1024
	// keepBackups is how many rotated files are retained.
	keepBackups = 3
)

// Options controls logger construction.
type Options struct {
	// Debug switches to DEBUG level and records source locations.
	Debug bool
	// Path overrides the platform-conventional log file location.
	Path string
}

// New initializes the application logger for appName. The log file lives at
// Options.Path when set, otherwise at the platform's conventional location:
//
//   - macOS:   ~/Library/Logs/<app>/<app>.log
//   - Linux:   ~/.local/state/<app>/<app>.log
//   - Windows: %LOCALAPPDATA%\<app>\Logs\<app>.log
func New(appName string, opts Options) (*slog.Logger, error) {
	path := opts.Path
	if path == "" {
		p, err := defaultLogPath(appName)
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if err := rotate(path); err != nil {
		return nil, fmt.Errorf("rotate log file: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: opts.Debug,
	})), nil
}

// Discard returns a logger that drops every record. Used in tests and as the
// library default before a real logger is wired in.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// rotate shifts path to path.1 (and .1 to .2, up to keepBackups) when the
// file has grown past rotateAt.
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < rotateAt {
		return nil
	}

	os.Remove(fmt.Sprintf("%s.%d", path, keepBackups))
	for i := keepBackups - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", path, i), fmt.Sprintf("%s.%d", path, i+1))
	}
	return os.Rename(path, path+".1")
}

// defaultLogPath resolves the platform-conventional log file for appName.
func defaultLogPath(appName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", appName, appName+".log"), nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(base, appName, "Logs", appName+".log"), nil
	default:
		return filepath.Join(home, ".local", "state", appName, appName+".log"), nil
	}
}
