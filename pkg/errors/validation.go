package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateNodeID validates a node identifier.
// Node IDs come from user-supplied graph files and end up verbatim in SVG
// element IDs and cache keys, so the rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "node ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidGraph, "node ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "node ID contains control characters: %q", id)
		}
	}

	return nil
}

// ValidateGroupName validates a group label.
// Group names share the node ID constraints and additionally may not contain
// commas, which the CLI uses as a list separator in --groups flags.
func ValidateGroupName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidGraph, "group name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidGraph, "group name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "group name contains control characters: %q", name)
		}
	}

	if strings.Contains(name, ",") {
		return New(ErrCodeInvalidGraph, "group name cannot contain commas: %q", name)
	}

	return nil
}

// hexColorRegex matches 3- or 6-digit hex color tokens.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// cssNameRegex matches CSS named colors (letters only, e.g. "steelblue").
var cssNameRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

// ValidateColor validates a color token used in group color maps.
// Accepts hex tokens (#rgb, #rrggbb) and CSS color names. The token is
// emitted verbatim into SVG attributes, so anything else is rejected.
func ValidateColor(token string) error {
	if token == "" {
		return New(ErrCodeInvalidConfig, "color token cannot be empty")
	}

	if hexColorRegex.MatchString(token) || cssNameRegex.MatchString(token) {
		return nil
	}

	return New(ErrCodeInvalidConfig, "invalid color token: %q", token)
}
