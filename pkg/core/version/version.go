// ============================================================================
// Rechenwerk - Verteilter Taschenrechner
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      msto63
// Created:     2026-02-14
// License:     MIT
// ============================================================================

package version

// Version constants for all Rechenwerk components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Gauss      = "1.0.0"
	Rechenwerk = "1.0.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "gauss":
		return Gauss
	case "rechenwerk":
		return Rechenwerk
	default:
		return Platform
	}
}
