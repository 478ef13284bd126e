package supabase

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"
)

// Logger receives lifecycle events from the SDK. Implementations must be safe
// for concurrent use.
type Logger interface {
	Debug(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
}

// LogLevel represents different logging levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

type leveledLogger struct {
	level  LogLevel
	logger *log.Logger
}

// NewLogger creates a leveled logger writing to stderr. Accepted levels are
// "debug", "info", "warn" and "error"; anything else falls back to info.
func NewLogger(levelStr string) Logger {
	return newLoggerWithWriter(levelStr, os.Stderr)
}

func newLoggerWithWriter(levelStr string, w io.Writer) Logger {
	return &leveledLogger{
		level:  parseLogLevel(levelStr),
		logger: log.New(w, "", 0),
	}
}

// Debug logs a debug message
func (l *leveledLogger) Debug(msg string, fields ...interface{}) {
	if l.level <= LevelDebug {
		l.log("DEBUG", msg, fields...)
	}
}

// Info logs an info message
func (l *leveledLogger) Info(msg string, fields ...interface{}) {
	if l.level <= LevelInfo {
		l.log("INFO", msg, fields...)
	}
}

// Warn logs a warning message
func (l *leveledLogger) Warn(msg string, fields ...interface{}) {
	if l.level <= LevelWarn {
		l.log("WARN", msg, fields...)
	}
}

// Error logs an error message
func (l *leveledLogger) Error(msg string, err error, fields ...interface{}) {
	if l.level <= LevelError {
		allFields := append([]interface{}{"error", err}, fields...)
		l.log("ERROR", msg, allFields...)
	}
}

func (l *leveledLogger) log(level, msg string, fields ...interface{}) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	logMsg := fmt.Sprintf("[%s] %s: %s", timestamp, level, msg)

	if len(fields) > 0 {
		fieldStrs := make([]string, 0, len(fields)/2)
		for i := 0; i < len(fields); i += 2 {
			if i+1 < len(fields) {
				fieldStrs = append(fieldStrs, fmt.Sprintf("%v=%v", fields[i], fields[i+1]))
			}
		}
		if len(fieldStrs) > 0 {
			logMsg += " " + strings.Join(fieldStrs, " ")
		}
	}

	l.logger.Println(logMsg)
}

func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// noopLogger is the default: a library should stay quiet unless asked.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{})        {}
func (noopLogger) Info(string, ...interface{})         {}
func (noopLogger) Warn(string, ...interface{})         {}
func (noopLogger) Error(string, error, ...interface{}) {}
