// ============================================================================
// Rechenwerk - Verteilter Taschenrechner
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers with optional file
//              output
// Author:      msto63
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"sync"
	"time"

	rwlog "github.com/msto63/rechenwerk/foundation/core/log"
)

var (
	// Global FileWriter instance (singleton)
	globalFileWriter *FileWriter
	fileWriterOnce   sync.Once
	fileWriterMu     sync.RWMutex
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// LogFile is an optional file to append log entries to. If empty,
	// file output is disabled.
	LogFile string

	// Output format
	Format string // "json" or "text" (default: json)

	// Additional outputs (besides stdout and the log file)
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a new Foundation logger with optional file output
func NewLogger(cfg LoggerConfig) *rwlog.Logger {
	// Determine log level
	level := parseLevel(cfg.Level)

	// Build output writer
	var output io.Writer = os.Stdout

	// Add file writer if configured
	if cfg.LogFile != "" {
		fileWriter := getOrCreateFileWriter(cfg.LogFile)
		if fileWriter != nil {
			// FileWriter already writes to stdout internally, so just use it
			output = fileWriter
		}
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	// Determine format
	format := rwlog.FormatJSON
	if cfg.Format == "text" {
		format = rwlog.FormatText
	}

	// Create logger
	logger := rwlog.NewWithConfig(rwlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: true,
	})

	return logger
}

// NewServiceLogger creates a logger for a service with standard configuration
func NewServiceLogger(serviceName string, logFile string) *rwlog.Logger {
	cfg := DefaultLoggerConfig(serviceName)
	cfg.LogFile = logFile
	return NewLogger(cfg)
}

// NewSimpleLogger creates a simple logger without file output
func NewSimpleLogger(serviceName string) *rwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// getOrCreateFileWriter returns the global FileWriter, creating it if necessary
func getOrCreateFileWriter(path string) *FileWriter {
	fileWriterOnce.Do(func() {
		writer, err := NewFileWriter(FileWriterConfig{
			Path:        path,
			BatchSize:   100,
			FlushPeriod: 5 * time.Second,
			Fallback:    os.Stdout,
		})
		if err != nil {
			return
		}
		globalFileWriter = writer
	})

	return globalFileWriter
}

// GetGlobalFileWriter returns the global FileWriter instance
func GetGlobalFileWriter() *FileWriter {
	fileWriterMu.RLock()
	defer fileWriterMu.RUnlock()
	return globalFileWriter
}

// CloseGlobalFileWriter closes the global FileWriter
func CloseGlobalFileWriter() error {
	fileWriterMu.Lock()
	defer fileWriterMu.Unlock()

	if globalFileWriter != nil {
		err := globalFileWriter.Close()
		globalFileWriter = nil
		return err
	}
	return nil
}

// parseLevel converts a string level to rwlog.Level
func parseLevel(level string) rwlog.Level {
	switch level {
	case "trace":
		return rwlog.LevelTrace
	case "debug":
		return rwlog.LevelDebug
	case "info":
		return rwlog.LevelInfo
	case "warn", "warning":
		return rwlog.LevelWarn
	case "error":
		return rwlog.LevelError
	case "fatal":
		return rwlog.LevelFatal
	default:
		return rwlog.LevelInfo
	}
}

// Compatibility layer for code using the simple Logger

// Logger wraps the Foundation logger for compatibility
type Logger struct {
	*rwlog.Logger
	name string
}

// New creates a new simple logger with a key-value pair API
func New(name string) *Logger {
	return &Logger{
		Logger: NewSimpleLogger(name),
		name:   name,
	}
}

// WithLevel returns a new logger with the specified level (compatibility)
func (l *Logger) WithLevel(level Level) *Logger {
	rwLevel := rwlog.LevelInfo
	switch level {
	case LevelDebug:
		rwLevel = rwlog.LevelDebug
	case LevelInfo:
		rwLevel = rwlog.LevelInfo
	case LevelWarn:
		rwLevel = rwlog.LevelWarn
	case LevelError:
		rwLevel = rwlog.LevelError
	}

	return &Logger{
		Logger: l.Logger.WithLevel(rwLevel),
		name:   l.name,
	}
}

// Debug logs a debug message (compatibility with key-value pairs)
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message (compatibility with key-value pairs)
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message (compatibility with key-value pairs)
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message (compatibility with key-value pairs)
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to rwlog.Fields
func toFields(keysAndValues ...interface{}) rwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(rwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
