// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the main Logger type that provides structured
//              logging with contextual fields and multiple output formats.
// Author: msto63
// Version: v0.1.0
// Created: 2025-07-12
// Modified: 2025-07-12

package log

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	// Configuration
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields that are added to all log entries
	contextFields Fields
	requestID     string

	// Options
	enableCaller     bool
	callerSkipFrames int

	// Thread safety for output writes
	mutex sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// New creates a new logger with default configuration
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stdout,
		contextFields: make(Fields),
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := &Logger{
		level:            config.Level,
		output:           config.Output,
		name:             config.Name,
		contextFields:    make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
	}

	if config.Output == nil {
		logger.output = os.Stdout
	}
	logger.formatter = GetFormatter(config.Format)

	return logger
}

// clone returns a copy of the logger sharing the output writer
func (l *Logger) clone() *Logger {
	return &Logger{
		level:            l.level,
		formatter:        l.formatter,
		output:           l.output,
		name:             l.name,
		contextFields:    l.contextFields.clone(),
		requestID:        l.requestID,
		enableCaller:     l.enableCaller,
		callerSkipFrames: l.callerSkipFrames,
	}
}

// WithLevel returns a logger with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithName returns a logger with the given name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithFields returns a logger that adds the given fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	c.contextFields = c.contextFields.Merge(fields)
	return c
}

// WithRequestID returns a logger that tags every entry with a request id
func (l *Logger) WithRequestID(requestID string) *Logger {
	c := l.clone()
	c.requestID = requestID
	return c
}

// WithOutput returns a logger writing to the given writer
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	return c
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the minimum level of the logger
func (l *Logger) Level() Level {
	return l.level
}

// Trace logs a message at trace level
func (l *Logger) Trace(msg string, fields ...Fields) {
	l.log(LevelTrace, msg, nil, fields...)
}

// Debug logs a message at debug level
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.log(LevelDebug, msg, nil, fields...)
}

// Info logs a message at info level
func (l *Logger) Info(msg string, fields ...Fields) {
	l.log(LevelInfo, msg, nil, fields...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.log(LevelWarn, msg, nil, fields...)
}

// Error logs a message at error level
func (l *Logger) Error(msg string, fields ...Fields) {
	l.log(LevelError, msg, nil, fields...)
}

// ErrorErr logs an error value at error level
func (l *Logger) ErrorErr(msg string, err error, fields ...Fields) {
	l.log(LevelError, msg, err, fields...)
}

// Fatal logs a message at fatal level and exits the process
func (l *Logger) Fatal(msg string, fields ...Fields) {
	l.log(LevelFatal, msg, nil, fields...)
	os.Exit(1)
}

func (l *Logger) log(level Level, msg string, err error, fields ...Fields) {
	if !l.level.Enabled(level) {
		return
	}

	entry := &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   msg,
		Logger:    l.name,
		RequestID: l.requestID,
		Error:     err,
		Fields:    l.contextFields.clone(),
	}

	for _, f := range fields {
		entry.Fields = entry.Fields.Merge(f)
	}

	if l.enableCaller {
		entry.Caller = captureCaller(3 + l.callerSkipFrames)
	}

	formatted, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, _ = l.output.Write(formatted)
}

// captureCaller returns caller information for the given skip depth
func captureCaller(skip int) *CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return nil
	}

	// Shorten the file path to package/file.go
	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		if idx2 := strings.LastIndex(file[:idx], "/"); idx2 >= 0 {
			file = file[idx2+1:]
		}
	}

	info := &CallerInfo{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		info.Function = fn.Name()
	}
	return info
}
