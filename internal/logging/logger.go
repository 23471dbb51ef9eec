// Package logging provides config-driven categorized logging for ordertable.
// The terminal belongs to the table UI, so logs go to files under the
// configured directory, and only when debug mode is on. With debug mode off
// every logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/subsystem.
type Category string

const (
	CategoryBoot   Category = "boot"   // Startup, CLI wiring
	CategoryConfig Category = "config" // Config loading and validation
	CategoryStore  Category = "store"  // Record store writes
	CategoryTable  Category = "table"  // Sort, filter, pagination changes
	CategoryDialog Category = "dialog" // Edit dialog lifecycle
	CategorySeed   Category = "seed"   // Seed file loading and watching
)

// Settings mirrors config.LoggingConfig to avoid an import cycle.
type Settings struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	Dir        string
	JSONFormat bool
	Categories map[string]bool
}

// Logger is a category-scoped printf-style logger.
type Logger struct {
	category Category
	sugar    *zap.SugaredLogger
}

var (
	mu       sync.RWMutex
	settings Settings
	root     *zap.Logger
	file     *os.File
	loggers  = make(map[Category]*Logger)
)

// Initialize opens <dir>/ordertable.log and routes every enabled category to
// it. Calling it again replaces the previous setup.
func Initialize(s Settings) error {
	CloseAll()
	if !s.DebugMode {
		mu.Lock()
		settings = s
		mu.Unlock()
		return nil
	}
	if s.Dir == "" {
		return fmt.Errorf("logging: directory required in debug mode")
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	path := filepath.Join(s.Dir, "ordertable.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if s.JSONFormat {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(f), ParseLevel(s.Level))

	mu.Lock()
	settings = s
	file = f
	root = zap.New(core)
	mu.Unlock()

	if err := initAudit(s); err != nil {
		return err
	}

	boot := Get(CategoryBoot)
	boot.Info("logging initialized: dir=%s level=%s", s.Dir, s.Level)
	if len(s.Categories) == 0 {
		boot.Debug("all categories enabled")
	}
	return nil
}

// InitializeWithCore routes every category to core. Tests use it with
// zaptest/observer.
func InitializeWithCore(core zapcore.Core, categories map[string]bool) {
	CloseAll()
	mu.Lock()
	settings = Settings{DebugMode: true, Level: "debug", Categories: categories}
	root = zap.New(core)
	mu.Unlock()
}

// ParseLevel maps a level name to a zap level; unknown names mean info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// IsDebugMode returns whether logging is enabled at all.
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return settings.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	if !settings.DebugMode {
		return false
	}
	enabled, exists := settings.Categories[string(category)]
	return !exists || enabled
}

// Get returns (or creates) the logger for category. Disabled categories get
// a no-op logger.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return &Logger{category: category, sugar: zap.NewNop().Sugar()}
	}

	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	if root == nil {
		return &Logger{category: category, sugar: zap.NewNop().Sugar()}
	}
	l := &Logger{category: category, sugar: root.Named(string(category)).Sugar()}
	loggers[category] = l
	return l
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) { l.sugar.Infof(format, args...) }

// Warn logs a warning.
func (l *Logger) Warn(format string, args ...interface{}) { l.sugar.Warnf(format, args...) }

// Error logs an error.
func (l *Logger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

// With returns a logger that adds key/value pairs to every entry.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{category: l.category, sugar: l.sugar.With(keysAndValues...)}
}

// CloseAll flushes and closes the log files and drops cached loggers.
func CloseAll() {
	closeAudit()

	mu.Lock()
	defer mu.Unlock()
	if root != nil {
		_ = root.Sync()
		root = nil
	}
	if file != nil {
		_ = file.Close()
		file = nil
	}
	loggers = make(map[Category]*Logger)
	settings = Settings{}
}

// Convenience functions, one pair per category.

func Boot(format string, args ...interface{})        { Get(CategoryBoot).Info(format, args...) }
func BootDebug(format string, args ...interface{})   { Get(CategoryBoot).Debug(format, args...) }
func Config(format string, args ...interface{})      { Get(CategoryConfig).Info(format, args...) }
func ConfigDebug(format string, args ...interface{}) { Get(CategoryConfig).Debug(format, args...) }
func Store(format string, args ...interface{})       { Get(CategoryStore).Info(format, args...) }
func StoreDebug(format string, args ...interface{})  { Get(CategoryStore).Debug(format, args...) }
func Table(format string, args ...interface{})       { Get(CategoryTable).Info(format, args...) }
func TableDebug(format string, args ...interface{})  { Get(CategoryTable).Debug(format, args...) }
func Dialog(format string, args ...interface{})      { Get(CategoryDialog).Info(format, args...) }
func DialogDebug(format string, args ...interface{}) { Get(CategoryDialog).Debug(format, args...) }
func Seed(format string, args ...interface{})        { Get(CategorySeed).Info(format, args...) }
func SeedDebug(format string, args ...interface{})   { Get(CategorySeed).Debug(format, args...) }
