package synesthesia

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/synesthete/pkg/color"
)

func TestColor_SingleCharacters(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  color.Color
	}{
		{"a is yellow", "a", color.FromRGBA(1, 1, 0, 1)},
		{"g is black", "g", color.FromRGBA(0, 0, 0, 1)},
		{"uppercase is folded", "A", color.FromRGBA(1, 1, 0, 1)},
		{"h is brown", "h", color.FromRGBA(0.5, 0.25, 0, 1)},
		{"empty is transparent", "", color.New()},
		{"digit is transparent", "1", color.New()},
		{"punctuation is transparent", "!", color.New()},
		{"non-latin is transparent", "é", color.New()},
		{"dotted capital I lowers to two runes", "İ", color.New()},
		{"kelvin sign folds to k", "\u212a", color.FromRGBA(0, 0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Color(tt.input))
		})
	}
}

func TestColor_Mixing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  color.Color
	}{
		{
			name:  "two letters",
			input: "ab",
			want:  color.FromRGBA(1, 0.75, 0.25, 1),
		},
		{
			name:  "three letters weight the first most",
			input: "abc",
			want:  color.FromRGBA(0.875, 0.75, 0.375, 1),
		},
		{
			name:  "repeated letter",
			input: "ee",
			want:  color.FromRGBA(1, 0, 0, 1),
		},
		{
			name:  "unknown characters pull alpha down",
			input: "a1",
			want:  color.FromRGBA(0.5, 0.5, 0, 0.5),
		},
		{
			name:  "case insensitive",
			input: "AbC",
			want:  color.FromRGBA(0.875, 0.75, 0.375, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Color(tt.input))
		})
	}
}

func TestColor_LongUnknownRunCSS(t *testing.T) {
	assert.Equal(t, "rgba(0, 0, 0, 3.0517578125e-05)", Color("111111111111111a").CSS())
}

func TestColor_NotUniformAverage(t *testing.T) {
	got := Color("abc")
	uniform := Char('a').Mix(Char('b'), Char('c'))

	assert.NotEqual(t, uniform, got)
}

func TestColor_OrderDependent(t *testing.T) {
	assert.NotEqual(t, Color("abc"), Color("cba"))
}

func TestColor_Deterministic(t *testing.T) {
	inputs := []string{"hello", "synesthesia", "The quick brown fox", "日本語 text"}

	for _, in := range inputs {
		first := Color(in)
		for range 5 {
			assert.Equal(t, first, Color(in))
		}
	}
}

func TestValue(t *testing.T) {
	assert.Equal(t, Color("ab"), Value("ab"))
	assert.Equal(t, color.New(), Value(42))
	assert.Equal(t, color.New(), Value(nil))
	assert.Equal(t, color.New(), Value([]string{"a"}))
}

func TestLetters(t *testing.T) {
	table := Letters()
	assert.Len(t, table, 26)

	keys := LetterKeys()
	require.Len(t, keys, 26)
	assert.Equal(t, 'a', keys[0])
	assert.Equal(t, 'z', keys[25])

	for _, r := range keys {
		assert.Equal(t, 1.0, table[r].A(), "letter %q should be opaque", r)
	}

	// mutating the copy leaves the table intact
	table['a'] = color.New()
	assert.Equal(t, color.FromRGBA(1, 1, 0, 1), Char('a'))
}

func TestColorizer_Overrides(t *testing.T) {
	c := New(Config{
		Overrides: map[rune]color.Color{
			'A': color.FromRGB(0, 0, 1),
			'7': color.FromRGB(0, 1, 0),
		},
	}, zerolog.Nop())

	assert.Equal(t, color.FromRGB(0, 0, 1), c.Char('a'))
	assert.Equal(t, color.FromRGB(0, 0, 1), c.Char('A'))
	assert.Equal(t, color.FromRGB(0, 1, 0), c.Color("7"))
	assert.Len(t, c.Table(), 27)

	// default colorizer is unaffected
	assert.Equal(t, color.FromRGBA(1, 1, 0, 1), Char('a'))
}

func TestColorizer_OverridesFoldingToSameKey(t *testing.T) {
	overrides := map[rune]color.Color{
		'A': color.FromRGB(1, 0, 0),
		'a': color.FromRGB(0, 0, 1),
	}

	for range 50 {
		c := New(Config{Overrides: overrides}, zerolog.Nop())
		assert.Equal(t, color.FromRGB(0, 0, 1), c.Char('a'))
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, 'a', Fold('A'))
	assert.Equal(t, 'a', Fold('a'))
	assert.Equal(t, 'é', Fold('É'))
	assert.Equal(t, 'İ', Fold('İ'))
	assert.Equal(t, '1', Fold('1'))
}

func TestColorizer_Pins(t *testing.T) {
	red := color.FromRGB(1, 0, 0)
	blue := color.FromRGB(0, 0, 1)

	c := New(Config{
		Pins: []Pin{
			{Pattern: "[", Color: blue},
			{Pattern: "err*", Color: red},
			{Pattern: "*", Color: blue},
		},
	}, zerolog.Nop())

	assert.Equal(t, red, c.Color("error"))
	assert.Equal(t, red, c.Color("err"))
	assert.Equal(t, blue, c.Color("ok"))
	// pins apply to whole strings, not to characters inside a blend
	assert.Equal(t, Color("a"), c.Char('a'))
}

func TestColorizer_HashFallback(t *testing.T) {
	c := New(Config{Fallback: FallbackHash}, zerolog.Nop())

	got := c.Char('1')
	assert.Equal(t, HashColor("1"), got)
	assert.Equal(t, 1.0, got.A())

	// letters still come from the table
	assert.Equal(t, Char('e'), c.Char('e'))
}

func TestColorizer_ZeroConfigMatchesDefault(t *testing.T) {
	c := New(Config{}, zerolog.Nop())

	for _, in := range []string{"", "a", "1", "hello world", "ZEBRA"} {
		assert.Equal(t, Color(in), c.Color(in), "input %q", in)
	}
}

func TestFallback_IsValid(t *testing.T) {
	assert.True(t, FallbackNone.IsValid())
	assert.True(t, FallbackHash.IsValid())
	assert.False(t, Fallback("").IsValid())
	assert.False(t, Fallback("random").IsValid())
}
