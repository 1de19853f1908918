// Package utils provides common utility functions.
package utils

import (
	"strings"
	"unicode"
)

// SanitizeName derives a filesystem-safe name from a title: spaces become
// hyphens, and everything except letters, digits and hyphens is dropped.
// The result may be empty for titles with no usable characters.
func SanitizeName(title string) string {
	var b strings.Builder

	for _, r := range strings.ReplaceAll(title, " ", "-") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Truncate shortens a string to max length, appending an ellipsis marker.
func Truncate(str string, maxLength int) string {
	if len(str) <= maxLength {
		return str
	}

	return str[:maxLength] + "..."
}
