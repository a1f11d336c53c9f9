package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
)

const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages
var Logger = slog.New(slog.DiscardHandler)

// Options controls where log records go
type Options struct {
	Debug       bool
	DebugFile   string
	MaxLogFiles int
	Verbose     bool
}

// Initialize sets up the logger from the options and SKILLPILOT_* environment variables
func Initialize(opts Options) error {
	inherited := os.Getenv("SKILLPILOT_DEBUG") == "1"
	if inherited {
		opts.Debug = true
	}
	if env := os.Getenv("SKILLPILOT_DEBUG_FILE"); env != "" && opts.DebugFile == "" {
		opts.DebugFile = env
	}
	if env := os.Getenv("SKILLPILOT_MAX_LOG_FILES"); env != "" && opts.MaxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(env); err == nil {
			opts.MaxLogFiles = parsed
		}
	}

	var handlers []slog.Handler
	if opts.Verbose {
		handlers = append(handlers, charmlog.NewWithOptions(os.Stderr, charmlog.Options{
			Level:           charmlog.DebugLevel,
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
		}))
	}

	logFilePath := ""
	if opts.Debug || opts.DebugFile != "" {
		path, err := openLogPath(opts)
		if err != nil {
			return err
		}
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
		logFilePath = path
	}

	switch len(handlers) {
	case 0:
		Logger = slog.New(slog.DiscardHandler)
	case 1:
		Logger = slog.New(handlers[0])
	default:
		Logger = slog.New(fanout(handlers))
	}

	if logFilePath != "" && !inherited {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logFilePath)
	}
	return nil
}

func openLogPath(opts Options) (string, error) {
	if opts.DebugFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.DebugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.DebugFile, nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	if opts.MaxLogFiles > 0 {
		if err := rotateLogs(logDir, opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}
	return filepath.Join(logDir, uuid.New().String()+".log"), nil
}

// rotateLogs removes the oldest log files so that a new one fits under maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{path: filepath.Join(logDir, entry.Name()), modTime: info.ModTime()})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	var errs []error
	for i := 0; i < len(logFiles)-maxLogFiles+1; i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "skillpilot"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "skillpilot"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "skillpilot", "logs"), nil
	default:
		return filepath.Join(homeDir, ".skillpilot", "logs"), nil
	}
}

// fanout sends every record to all handlers
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
