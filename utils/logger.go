package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level is the minimum severity a Logger writes.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel maps "debug", "info" or "error" to a Level; anything else is InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	}
	return InfoLevel
}

// Logger is the leveled logger used across the app.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger writes through a stdlib *log.Logger.
type DefaultLogger struct {
	level Level
	out   *log.Logger
}

func NewDefaultLogger(level Level, w io.Writer) *DefaultLogger {
	return &DefaultLogger{
		level: level,
		out:   log.New(w, "", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.out.Output(3, fmt.Sprintf("[INFO] "+format, v...))
	}
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.out.Output(3, fmt.Sprintf("[ERROR] "+format, v...))
	}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.out.Output(3, fmt.Sprintf("[DEBUG] "+format, v...))
	}
}

// OpenLogFile opens dir/hms-YYYY-MM-DD.log for appending, creating dir if needed.
func OpenLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("hms-%s.log", time.Now().Format("2006-01-02"))
	return os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

var (
	logMu  sync.RWMutex
	appLog Logger = NewDefaultLogger(InfoLevel, os.Stderr)
)

// SetLogger replaces the app-wide logger.
func SetLogger(l Logger) {
	logMu.Lock()
	appLog = l
	logMu.Unlock()
}

func current() Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return appLog
}

func LogInfo(format string, v ...interface{}) {
	current().Info(format, v...)
}

func LogError(format string, v ...interface{}) {
	current().Error(format, v...)
}

func LogDebug(format string, v ...interface{}) {
	current().Debug(format, v...)
}
