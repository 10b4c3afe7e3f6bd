// File: doc.go
// Title: Error Package Documentation
// Description: Package documentation for the structured error module.
// Author: msto63
// Version: v0.1.0
// Created: 2025-07-12
// Modified: 2025-07-12

// Package error provides structured errors for the Rechenwerk platform.
//
// Errors carry a machine-readable code, a severity, the operation that
// produced them, and free-form details, while staying compatible with
// the standard library error interface and errors.Is/As/Unwrap.
//
// Typical usage:
//
//	return rwerror.Wrap(err, "failed to resolve server").
//		WithCode(rwerror.CodeResolveFailed).
//		WithOperation("resolver.Resolve")
package error
