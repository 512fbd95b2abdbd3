// ABOUTME: Input coercion helpers shared by the menu, CLI, and MCP tools.
// ABOUTME: Defines ErrValidation, the error class for rejected user input.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrValidation marks input that could not be coerced or is missing.
var ErrValidation = errors.New("invalid input")

// ParseInt coerces raw user input into an integer for the named field.
func ParseInt(field, raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrValidation, field, raw)
	}
	return v, nil
}

// requireText rejects empty (or whitespace-only) values.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}
