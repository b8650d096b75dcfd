package synesthesia

import (
	"maps"
	"slices"

	"github.com/hay-kot/synesthete/pkg/color"
)

// letters is the built-in lowercase letter table.
var letters = map[rune]color.Color{
	'a': color.FromRGBA(1, 1, 0, 1),
	'b': color.FromRGBA(1, 1.0/2, 1.0/2, 1),
	'c': color.FromRGBA(1.0/2, 1.0/2, 1, 1),
	'd': color.FromRGBA(0, 0, 1, 1),
	'e': color.FromRGBA(1, 0, 0, 1),
	'f': color.FromRGBA(3.0/4, 3.0/4, 3.0/4, 1),
	'g': color.FromRGBA(0, 0, 0, 1),
	'h': color.FromRGBA(1.0/2, 1.0/4, 0, 1),
	'i': color.FromRGBA(1, 1, 1, 1),
	'j': color.FromRGBA(1, 3.0/4, 3.0/4, 1),
	'k': color.FromRGBA(0, 0, 0, 1),
	'l': color.FromRGBA(1.0/2, 1.0/2, 1.0/2, 1),
	'm': color.FromRGBA(3.0/4, 0, 0, 1),
	'n': color.FromRGBA(0, 3.0/4, 0, 1),
	'o': color.FromRGBA(1, 1, 1, 1),
	'p': color.FromRGBA(1, 1.0/2, 0, 1),
	'q': color.FromRGBA(3.0/4, 0, 3.0/4, 1),
	'r': color.FromRGBA(0, 1.0/2, 0, 1),
	's': color.FromRGBA(3.0/4, 3.0/4, 3.0/4, 1),
	't': color.FromRGBA(1, 3.0/4, 0, 1),
	'u': color.FromRGBA(1, 1, 1, 1),
	'v': color.FromRGBA(1, 1.0/2, 0, 1),
	'w': color.FromRGBA(1.0/2, 0, 0, 1),
	'x': color.FromRGBA(1.0/4, 1.0/4, 1.0/4, 1),
	'y': color.FromRGBA(1, 1, 0, 1),
	'z': color.FromRGBA(1.0/2, 1.0/2, 1.0/2, 1),
}

// Letters returns a copy of the built-in letter table.
func Letters() map[rune]color.Color {
	return maps.Clone(letters)
}

// LetterKeys returns the letters of the built-in table in order.
func LetterKeys() []rune {
	return slices.Sorted(maps.Keys(letters))
}
