// Package synesthesia maps text to colors. Single letters come from a fixed
// table and longer strings are blended from their characters.
package synesthesia

import (
	"maps"
	"slices"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/hay-kot/synesthete/pkg/color"
)

// Fallback selects how characters missing from the table are colored.
type Fallback string

const (
	// FallbackNone colors unknown characters transparent black.
	FallbackNone Fallback = "none"
	// FallbackHash colors unknown characters with HashColor.
	FallbackHash Fallback = "hash"
)

// IsValid reports whether f is a supported fallback.
func (f Fallback) IsValid() bool {
	switch f {
	case FallbackNone, FallbackHash:
		return true
	default:
		return false
	}
}

// Pin fixes the color of every string matching a glob pattern.
type Pin struct {
	Pattern string
	Color   color.Color
}

// Config customizes a Colorizer. The zero value reproduces the built-in table.
type Config struct {
	// Overrides replace or extend table entries. Keys are folded with Fold.
	Overrides map[rune]color.Color
	// Pins are checked in order before a string is blended.
	Pins     []Pin
	Fallback Fallback
}

// Colorizer maps characters and strings to colors. It is read-only after
// construction and safe for concurrent use.
type Colorizer struct {
	table    map[rune]color.Color
	pins     []Pin
	fallback Fallback
	log      zerolog.Logger
}

var defaultColorizer = New(Config{}, zerolog.Nop())

// Default returns the colorizer backed by the built-in table alone.
func Default() *Colorizer {
	return defaultColorizer
}

// New builds a Colorizer from cfg.
func New(cfg Config, log zerolog.Logger) *Colorizer {
	table := maps.Clone(letters)
	// overrides folding to the same key apply in rune order, so 'a' beats 'A'
	for _, r := range slices.Sorted(maps.Keys(cfg.Overrides)) {
		table[Fold(r)] = cfg.Overrides[r]
	}

	fallback := cfg.Fallback
	if fallback == "" {
		fallback = FallbackNone
	}

	return &Colorizer{
		table:    table,
		pins:     append([]Pin(nil), cfg.Pins...),
		fallback: fallback,
		log:      log,
	}
}

// Table returns a copy of the effective character table.
func (c *Colorizer) Table() map[rune]color.Color {
	return maps.Clone(c.table)
}

// Char returns the color of a single character, case-insensitively.
func (c *Colorizer) Char(r rune) color.Color {
	if v, ok := c.table[Fold(r)]; ok {
		return v
	}

	if c.fallback == FallbackHash {
		c.log.Debug().Str("char", string(r)).Msg("hash fallback")
		return HashColor(string(r))
	}

	return color.New()
}

// Color returns the color of s. An empty string is transparent black and a
// single character is looked up directly. Longer strings start from the last
// character and are mixed 50/50 with each character from last to first, so
// the blend is weighted toward the start of the string rather than being a
// uniform average.
func (c *Colorizer) Color(s string) color.Color {
	if pinned, ok := c.pinned(s); ok {
		return pinned
	}

	runes := []rune(s)
	switch len(runes) {
	case 0:
		return color.New()
	case 1:
		return c.Char(runes[0])
	}

	result := c.Char(runes[len(runes)-1])
	for i := len(runes) - 1; i >= 0; i-- {
		result = result.Mix(c.Char(runes[i]))
	}

	return result
}

// Value colors strings with Color. Every other type is transparent black.
func (c *Colorizer) Value(v any) color.Color {
	s, ok := v.(string)
	if !ok {
		c.log.Debug().Type("type", v).Msg("not a string, using transparent")
		return color.New()
	}
	return c.Color(s)
}

func (c *Colorizer) pinned(s string) (color.Color, bool) {
	for _, p := range c.pins {
		ok, err := doublestar.Match(p.Pattern, s)
		if err != nil {
			c.log.Warn().Err(err).Str("pattern", p.Pattern).Msg("skipping invalid pin pattern")
			continue
		}
		if ok {
			c.log.Debug().Str("pattern", p.Pattern).Str("input", s).Msg("pin matched")
			return p.Color, true
		}
	}
	return color.Color{}, false
}

// Fold returns the lowercase form of r used as a table key. Runes whose full
// lowercase mapping is more than one rune, like 'İ', are returned unchanged
// and so miss the letter table.
func Fold(r rune) rune {
	if r == 'İ' {
		return r
	}
	return unicode.ToLower(r)
}

// Char colors r with the default colorizer.
func Char(r rune) color.Color { return defaultColorizer.Char(r) }

// Color colors s with the default colorizer.
func Color(s string) color.Color { return defaultColorizer.Color(s) }

// Value colors v with the default colorizer.
func Value(v any) color.Color { return defaultColorizer.Value(v) }
