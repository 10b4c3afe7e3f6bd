// File: severity.go
// Title: Error Severity Definitions
// Description: Defines severity levels for errors to support prioritized
//              handling, logging, and monitoring.
// Author: msto63
// Version: v0.1.0
// Created: 2025-07-12
// Modified: 2025-07-12

package error

// Severity represents how serious an error is
type Severity int

const (
	// SeverityLow marks errors that are recoverable without user action
	SeverityLow Severity = iota

	// SeverityMedium marks errors that degrade functionality
	SeverityMedium

	// SeverityHigh marks errors that prevent an operation from completing
	SeverityHigh

	// SeverityCritical marks errors that endanger the whole process
	SeverityCritical
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// DefaultSeverity returns the severity used when none is set
func DefaultSeverity() Severity {
	return SeverityMedium
}
