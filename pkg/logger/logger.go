package logger

import (
	"fmt"
	"log/slog"

	"github.com/PhotoScout/API/pkg/config"
)

// Logger defines the logging interface
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}

// New builds a logger from the settings. The instance is shared through
// dependency injection rather than a package singleton.
func New(cfg config.LoggerConfig) (Logger, error) {
	switch cfg.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(cfg.LogLevel), nil
	case config.LogTypeFile:
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("file path required for file logger")
		}
		return NewFileLogger(cfg.LogLevel, cfg.FilePath, cfg.MaxSize, cfg.MaxBackups, cfg.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", cfg.LogType)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func formatArgs(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	return fmt.Sprint(args...)
}
