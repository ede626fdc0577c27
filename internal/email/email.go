// Package email validates and normalizes email addresses at edit time.
// Validation here is deliberately minimal: it exists to gate saves and
// conversions in the UI, not to arbitrate RFC 5322 corner cases.
package email

import (
	"regexp"
	"strings"
)

var pattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Valid reports whether the address looks deliverable.
func Valid(addr string) bool {
	normalized := strings.TrimSpace(addr)
	if len(normalized) < 6 || len(normalized) > 254 {
		return false
	}
	return pattern.MatchString(normalized)
}

// Normalize lowercases and trims for canonical form.
func Normalize(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}

// ValidationMessage returns a user-facing message, or "" when the address is
// acceptable.
func ValidationMessage(addr string) string {
	if strings.TrimSpace(addr) == "" {
		return "Email is required."
	}
	if !Valid(addr) {
		return "Enter a valid email address."
	}
	return ""
}
