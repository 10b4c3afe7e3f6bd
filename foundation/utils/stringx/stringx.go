// File: stringx.go
// Title: String Utilities
// Description: Provides common string helpers used across the Rechenwerk
//              platform that are missing from the standard library.
// Author: msto63
// Version: v0.1.0
// Created: 2025-07-12
// Modified: 2025-07-12

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty reports whether s has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or contains only whitespace
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonEmpty returns the first non-empty string of the arguments
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// FirstNonBlank returns the first non-blank string of the arguments
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// Truncate shortens s to at most maxLen runes, appending "..." when cut
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// Fields splits s on whitespace, collapsing repeated separators
func Fields(s string) []string {
	return strings.Fields(s)
}

// ContainsIgnoreCase reports whether substr is in s, ignoring case
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
