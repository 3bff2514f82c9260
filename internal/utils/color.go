package utils

import (
	"regexp"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultCollectionColor is used when a collection is created without one.
const DefaultCollectionColor = "#6366F1"

// ValidHexColor reports whether s is a six-digit hex color like "#6DB33F".
func ValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// NormalizeHexColor upper-cases a valid hex color and falls back to the
// default for empty input. Invalid non-empty input is returned unchanged so
// the caller can reject it.
func NormalizeHexColor(s string) string {
	if s == "" {
		return DefaultCollectionColor
	}
	if !ValidHexColor(s) {
		return s
	}
	return "#" + strings.ToUpper(s[1:])
}
