// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the Rechenwerk platform.
// Author: msto63
// Version: v0.1.0
// Created: 2025-07-12
// Modified: 2025-07-12

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the Rechenwerk platform
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Service and network
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeNetworkError          Code = "NETWORK_ERROR"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"
	CodeConnectionFailed      Code = "CONNECTION_FAILED"

	// Client state machine
	CodeResolveFailed      Code = "RESOLVE_FAILED"
	CodeCapabilityMismatch Code = "CAPABILITY_MISMATCH"
	CodeRequestTimeout     Code = "REQUEST_TIMEOUT"
	CodeRequestFailed      Code = "REQUEST_FAILED"
	CodeEndpointLost       Code = "ENDPOINT_LOST"

	// Compute service
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Configuration
	CodeConfigParse   Code = "CONFIG_PARSE"
	CodeConfigInvalid Code = "CONFIG_INVALID"
)

// IsValid reports whether the code is one of the defined codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeServiceUnavailable, CodeNetworkError, CodeServiceInitialization,
		CodeConnectionFailed, CodeResolveFailed, CodeCapabilityMismatch,
		CodeRequestTimeout, CodeRequestFailed, CodeEndpointLost,
		CodeInvalidOperation, CodeDatabaseError, CodeConfigParse, CodeConfigInvalid:
		return true
	default:
		return false
	}
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsRetryable reports whether an error with this code is worth retrying
func (c Code) IsRetryable() bool {
	switch c {
	case CodeTimeout, CodeRequestTimeout, CodeRequestFailed,
		CodeNetworkError, CodeServiceUnavailable, CodeConnectionFailed:
		return true
	default:
		return false
	}
}
