package logging

import (
	"cmp"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the number of log files kept when rotation is enabled
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages
var Logger = discard()

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Initialize points Logger at a log file when debugging is requested, either
// with debug, GITTREE_DEBUG=1 or an explicit debugFile. Without debugFile a new
// uuid-named file is created in the log directory and old ones are rotated.
// Returns the log file path, or "" when logging is discarded.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	debug = debug || os.Getenv("GITTREE_DEBUG") == "1"
	if env := os.Getenv("GITTREE_MAX_LOG_FILES"); env != "" && maxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(env); err == nil {
			maxLogFiles = n
		}
	}

	if !debug && debugFile == "" {
		Logger = discard()
		return "", nil
	}

	path := debugFile
	if path == "" {
		logDir, err := logDirectory()
		if err != nil {
			return "", fmt.Errorf("failed to get log directory: %w", err)
		}
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		if maxLogFiles > 0 {
			if err := rotateLogs(logDir, maxLogFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		path = filepath.Join(logDir, uuid.NewString()+".log")
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path)

	return path, nil
}

// rotateLogs deletes the oldest .log files in logDir, leaving room for one more
// below maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var logs []fs.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		if info, err := entry.Info(); err == nil {
			logs = append(logs, info)
		}
	}

	excess := len(logs) - maxLogFiles + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b fs.FileInfo) int {
		return cmp.Compare(a.ModTime().UnixNano(), b.ModTime().UnixNano())
	})
	for _, info := range logs[:excess] {
		path := filepath.Join(logDir, info.Name())
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", path, err)
		}
	}

	return nil
}

// logDirectory is $XDG_STATE_HOME/gittree/logs, or gittree/logs under the
// user cache directory
func logDirectory() (string, error) {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "gittree", "logs"), nil
	}
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cache, "gittree", "logs"), nil
}
