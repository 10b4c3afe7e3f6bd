// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the structured logging module.
// Author: msto63
// Version: v0.1.0
// Created: 2025-07-12
// Modified: 2025-07-12

// Package log provides structured logging for the Rechenwerk platform.
//
// The package offers leveled, named loggers with structured fields and
// pluggable output formats (JSON for machine consumption, text for
// humans). Loggers are immutable: With* methods return clones, so a
// logger can safely be shared across goroutines.
//
// Basic usage:
//
//	logger := log.New()
//	logger.Info("server started", log.Fields{"port": 4242})
//
// Named loggers with a fixed level and format:
//
//	logger := log.NewWithConfig(log.Config{
//		Name:   "gauss",
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//	})
package log
