// Package config handles configuration loading and validation for synesthete.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/synesthete/internal/core/synesthesia"
	"github.com/hay-kot/synesthete/pkg/color"
)

// Output formats.
const (
	FormatCSS  = "css"
	FormatHex  = "hex"
	FormatJSON = "json"
)

// Swatch modes.
const (
	SwatchAuto   = "auto"
	SwatchAlways = "always"
	SwatchNever  = "never"
)

// Config holds the application configuration.
type Config struct {
	Fallback synesthesia.Fallback `yaml:"fallback"`
	Letters  map[string]string    `yaml:"letters"` // single character -> color
	Pins     []Pin                `yaml:"pins"`
	Output   OutputConfig         `yaml:"output"`
}

// Pin fixes the color of strings matching a glob pattern.
type Pin struct {
	Pattern string `yaml:"pattern"` // doublestar glob
	Color   string `yaml:"color"`   // any format color.Parse accepts
}

// OutputConfig holds CLI output defaults.
type OutputConfig struct {
	Format string `yaml:"format"` // css, hex, json
	Swatch string `yaml:"swatch"` // auto, always, never
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Fallback: synesthesia.FallbackNone,
		Letters:  map[string]string{},
		Output: OutputConfig{
			Format: FormatCSS,
			Swatch: SwatchAuto,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Fallback == "" {
		c.Fallback = defaults.Fallback
	}
	if c.Letters == nil {
		c.Letters = defaults.Letters
	}
	if c.Output.Format == "" {
		c.Output.Format = defaults.Output.Format
	}
	if c.Output.Swatch == "" {
		c.Output.Swatch = defaults.Output.Swatch
	}
}

// Validate checks that the configuration is structurally valid. Colors and
// patterns are checked by ValidateDeep.
func (c *Config) Validate() error {
	if !c.Fallback.IsValid() {
		return fmt.Errorf("fallback %q must be one of none, hash", c.Fallback)
	}

	if !isValidFormat(c.Output.Format) {
		return fmt.Errorf("output.format %q must be one of css, hex, json", c.Output.Format)
	}

	if !isValidSwatch(c.Output.Swatch) {
		return fmt.Errorf("output.swatch %q must be one of auto, always, never", c.Output.Swatch)
	}

	folded := make(map[rune]string, len(c.Letters))
	for _, key := range sortedKeys(c.Letters) {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("letters key %q must be a single character", key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		if other, ok := folded[synesthesia.Fold(r)]; ok {
			return fmt.Errorf("letters keys %q and %q name the same letter", other, key)
		}
		folded[synesthesia.Fold(r)] = key
	}

	for i, pin := range c.Pins {
		if pin.Pattern == "" {
			return fmt.Errorf("pins[%d]: pattern is required", i)
		}
	}

	return nil
}

// Colorizer builds a colorizer from the letter overrides, pins and fallback.
func (c *Config) Colorizer(log zerolog.Logger) (*synesthesia.Colorizer, error) {
	overrides := make(map[rune]color.Color, len(c.Letters))
	for _, key := range sortedKeys(c.Letters) {
		r, _ := utf8.DecodeRuneInString(key)
		parsed, err := color.Parse(c.Letters[key])
		if err != nil {
			return nil, fmt.Errorf("letters.%s: %w", key, err)
		}
		overrides[r] = parsed
	}

	pins := make([]synesthesia.Pin, 0, len(c.Pins))
	for i, pin := range c.Pins {
		parsed, err := color.Parse(pin.Color)
		if err != nil {
			return nil, fmt.Errorf("pins[%d].color: %w", i, err)
		}
		pins = append(pins, synesthesia.Pin{Pattern: pin.Pattern, Color: parsed})
	}

	return synesthesia.New(synesthesia.Config{
		Overrides: overrides,
		Pins:      pins,
		Fallback:  c.Fallback,
	}, log), nil
}

func isValidFormat(format string) bool {
	switch format {
	case FormatCSS, FormatHex, FormatJSON:
		return true
	default:
		return false
	}
}

func isValidSwatch(mode string) bool {
	switch mode {
	case SwatchAuto, SwatchAlways, SwatchNever:
		return true
	default:
		return false
	}
}
