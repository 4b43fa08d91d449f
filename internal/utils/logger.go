// internal/utils/logger.go
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Logger writes formatted lines to the server log file and stdout. Each
// line carries the level, timestamp and call site so failed reply
// persistence and shutdown steps can be traced after the fact.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

var (
	globalLogger *Logger
	loggerOnce   sync.Once
)

// GetLogger returns the shared logger. Before InitLogger is called it
// writes to stdout only.
func GetLogger() *Logger {
	loggerOnce.Do(func() {
		globalLogger = &Logger{}
	})
	return globalLogger
}

// InitLogger points the shared logger at a log file, creating the
// directory if needed. The file is opened in append mode so restarts
// keep history.
func InitLogger(logFile string) error {
	logger := GetLogger()

	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	logger.mu.Lock()
	defer logger.mu.Unlock()

	if logger.file != nil {
		logger.file.Close()
	}
	logger.file = file
	return nil
}

// output formats and writes one line. Caller depth 2 skips the level
// wrapper so the logged location is the real call site.
func (l *Logger) output(level, message string) {
	caller := "???"
	if _, file, line, ok := runtime.Caller(2); ok {
		if idx := strings.LastIndex(file, "/"); idx >= 0 {
			file = file[idx+1:]
		}
		caller = fmt.Sprintf("%s:%d", file, line)
	}

	logLine := fmt.Sprintf("[%s] %s %s - %s\n",
		level,
		time.Now().Format("2006-01-02 15:04:05.000"),
		caller,
		message)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.WriteString(logLine)
		l.file.Sync()
	}
	os.Stdout.WriteString(logLine)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.output("DEBUG", fmt.Sprintf(format, args...))
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.output("INFO", fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.output("WARN", fmt.Sprintf(format, args...))
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.output("ERROR", fmt.Sprintf(format, args...))
}
