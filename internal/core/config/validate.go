package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/synesthete/internal/core/validate"
	"github.com/hay-kot/synesthete/pkg/color"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration
// including color syntax, glob patterns, and file accessibility. The
// configPath argument specifies the config file location to validate (empty
// string skips the config file check). This calls Validate() first for basic
// structural validation.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		c.validateLetters(),
		c.validatePins(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	seen := make(map[string]int, len(c.Pins))
	for i, pin := range c.Pins {
		if first, ok := seen[pin.Pattern]; ok {
			warnings = append(warnings, ValidationWarning{
				Category: "Pins",
				Item:     fmt.Sprintf("pins[%d]", i),
				Message:  fmt.Sprintf("pattern %q is shadowed by pins[%d]", pin.Pattern, first),
			})
			continue
		}
		seen[pin.Pattern] = i
	}

	for _, key := range sortedKeys(c.Letters) {
		parsed, err := color.Parse(c.Letters[key])
		if err == nil && parsed.A() == 0 {
			warnings = append(warnings, ValidationWarning{
				Category: "Letters",
				Item:     key,
				Message:  "color is fully transparent",
			})
		}
	}

	return warnings
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateLetters() error {
	var errs []error
	for _, key := range sortedKeys(c.Letters) {
		errs = append(errs, validate.ColorField("letters."+key, c.Letters[key]))
	}

	return criterio.ValidateStruct(errs...)
}

func (c *Config) validatePins() error {
	var errs []error
	for i, pin := range c.Pins {
		errs = append(errs,
			validate.GlobField(fmt.Sprintf("pins[%d].pattern", i), pin.Pattern),
			validate.ColorField(fmt.Sprintf("pins[%d].color", i), pin.Color),
		)
	}

	return criterio.ValidateStruct(errs...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
