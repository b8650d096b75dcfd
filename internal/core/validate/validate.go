// Package validate provides shared validation functions.
package validate

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/synesthete/pkg/color"
)

// Color validates that s parses as a color.
func Color(s string) error {
	_, err := color.Parse(s)
	return err
}

// ColorField returns a criterio validator for colors.
func ColorField(field, s string) error {
	return criterio.Run(field, s, Color)
}

// Glob validates a doublestar pattern.
func Glob(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("pattern is required")
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob %q", pattern)
	}
	return nil
}

// GlobField returns a criterio validator for glob patterns.
func GlobField(field, pattern string) error {
	return criterio.Run(field, pattern, Glob)
}
