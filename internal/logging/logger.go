package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// maxLogSize is the log file size that triggers rotation (5 MB).
	maxLogSize = 5 * 1024 * 1024
	// maxLogBackups is the number of rotated log files to keep.
	maxLogBackups = 3
)

// Options configures the application logger.
type Options struct {
	AppName string
	Debug   bool   // DEBUG level with source locations instead of INFO
	Dir     string // Overrides the platform log directory when set
}

// InitLogger opens the application log file and returns a JSON logger
// writing to it, along with the file so the caller can close it on exit.
// Unless opts.Dir is set, the log lives in the platform location:
//   - macOS:   ~/Library/Logs/<app>/<app>.log
//   - Linux:   ~/.local/state/<app>/<app>.log
//   - Windows: %LOCALAPPDATA%\<app>\Logs\<app>.log
func InitLogger(opts Options) (*slog.Logger, io.Closer, error) {
	logPath, err := logFilePath(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get log file path: %w", err)
	}

	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory %s: %w", logDir, err)
	}

	if err := rotateIfNeeded(logPath); err != nil {
		return nil, nil, fmt.Errorf("failed to rotate log file: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	return New(logFile, opts.Debug), logFile, nil
}

// New returns a JSON logger writing to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
}

// NewNopLogger returns a logger that discards everything. Used as the
// default for components constructed without a logger and in tests.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// rotateIfNeeded rotates the log file once it reaches maxLogSize:
// <log>.2 -> <log>.3, <log>.1 -> <log>.2, <log> -> <log>.1.
func rotateIfNeeded(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if info.Size() < maxLogSize {
		return nil
	}

	os.Remove(backupName(logPath, maxLogBackups))
	for i := maxLogBackups - 1; i >= 1; i-- {
		os.Rename(backupName(logPath, i), backupName(logPath, i+1))
	}

	if err := os.Rename(logPath, backupName(logPath, 1)); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	return nil
}

func backupName(logPath string, n int) string {
	return fmt.Sprintf("%s.%d", logPath, n)
}

// logFilePath returns where the log file for opts lives.
func logFilePath(opts Options) (string, error) {
	if opts.AppName == "" {
		return "", fmt.Errorf("app name must not be empty")
	}
	fileName := opts.AppName + ".log"
	if opts.Dir != "" {
		return filepath.Join(opts.Dir, fileName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", opts.AppName, fileName), nil
	case "linux":
		return filepath.Join(homeDir, ".local", "state", opts.AppName, fileName), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, opts.AppName, "Logs", fileName), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}
