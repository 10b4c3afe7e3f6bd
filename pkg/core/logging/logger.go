// ============================================================================
// Rechenwerk - Verteilter Taschenrechner
// ============================================================================
//
// Package:     logging
// Description: Logging package that wraps the Foundation logger with a
//              simple key-value API
// Author:      msto63
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package logging

// Level represents log severity (for compatibility)
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}
