// Package swift composes, validates and parses SWIFT MT messages using
// simple marker and required-field rules. It does not implement the full
// FIN grammar.
package swift

import (
	"errors"
	"strings"

	"swift-workbench/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported message type")
	ErrMissingField    = errors.New("missing required field")
	ErrEmptyMessage    = errors.New("empty message")
)

var detectOrder = []models.MessageType{models.MT940, models.MT942, models.MT101, models.MT103}

// DetectType finds the message type from the application header or an
// inline ":nnn:" marker.
func DetectType(msg string) models.MessageType {
	for _, t := range detectOrder {
		code := string(t)[2:]
		if strings.Contains(msg, "{2:I"+code) ||
			strings.Contains(msg, "{2:O"+code) ||
			strings.Contains(msg, ":"+code+":") {
			return t
		}
	}
	return models.Unknown
}

// countFields counts colon-separated segments after the first, ignoring
// trailing empty segments.
func countFields(msg string) int {
	parts := strings.Split(msg, ":")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return 0
	}
	return len(parts) - 1
}
