package synesthesia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fixedDigest(b ...byte) Digest {
	return func([]byte) []byte { return b }
}

func TestColorizeWith(t *testing.T) {
	tests := []struct {
		name    string
		digest  []byte
		r, g, b float64
	}{
		{
			name:   "dark triple is inverted",
			digest: []byte{0, 51, 127, 255},
			r:      1, g: 1 - 51.0/255, b: 1 - 127.0/255,
		},
		{
			name:   "one bright channel keeps the triple",
			digest: []byte{255, 0, 0},
			r:      1, g: 0, b: 0,
		},
		{
			name:   "128 is not dark",
			digest: []byte{128, 0, 0},
			r:      128.0 / 255, g: 0, b: 0,
		},
		{
			name:   "short digest reads as black then inverts",
			digest: []byte{},
			r:      1, g: 1, b: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ColorizeWith(fixedDigest(tt.digest...), "anything")
			assert.InDelta(t, tt.r, r, 1e-12)
			assert.InDelta(t, tt.g, g, 1e-12)
			assert.InDelta(t, tt.b, b, 1e-12)
		})
	}
}

func TestColorizeWith_DarkResultIsLight(t *testing.T) {
	for v := range 128 {
		r, g, b := ColorizeWith(fixedDigest(byte(v), byte(v/2), byte(127-v)), nil)
		assert.GreaterOrEqual(t, r, 0.5)
		assert.GreaterOrEqual(t, g, 0.5)
		assert.GreaterOrEqual(t, b, 0.5)
	}
}

func TestColorizeWith_CanonicalText(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{"a", `'a'`},
		{42, "42"},
		{3.5, "3.5"},
		{true, "True"},
		{nil, "None"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var got string
			digest := func(data []byte) []byte {
				got = string(data)
				return SHA256(data)
			}

			ColorizeWith(digest, tt.value)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorize_KnownDigests(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		r, g, b byte
	}{
		{"string", "a", 215, 73, 146},
		{"word", "word", 213, 55, 85},
		{"true", true, 60, 188, 135},
		{"none", nil, 220, 147, 123},
		{"float", 3.5, 138, 25, 155},
		{"small float", 1e-05, 90, 149, 48},
		{"escaped string", "tab\there", 233, 164, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := Colorize(tt.value)
			assert.InDelta(t, float64(tt.r)/255, r, 1e-12)
			assert.InDelta(t, float64(tt.g)/255, g, 1e-12)
			assert.InDelta(t, float64(tt.b)/255, b, 1e-12)
		})
	}
}

func TestColorize_DarkDigestInverted(t *testing.T) {
	// 42 hashes to 115, 71, 92
	r, g, b := Colorize(42)
	assert.InDelta(t, 1-115.0/255, r, 1e-12)
	assert.InDelta(t, 1-71.0/255, g, 1e-12)
	assert.InDelta(t, 1-92.0/255, b, 1e-12)
}

func TestColorize(t *testing.T) {
	inputs := []any{"a", "hello", 0, 1.25, []int{1, 2}, struct{ X int }{X: 1}, nil}

	for _, in := range inputs {
		r, g, b := Colorize(in)
		for _, ch := range []float64{r, g, b} {
			assert.GreaterOrEqual(t, ch, 0.0)
			assert.LessOrEqual(t, ch, 1.0)
		}
		// never dark
		assert.False(t, r < 0.5 && g < 0.5 && b < 0.5)

		r2, g2, b2 := Colorize(in)
		assert.Equal(t, []float64{r, g, b}, []float64{r2, g2, b2})
	}
}

func TestHashColor(t *testing.T) {
	r, g, b := Colorize("word")
	c := HashColor("word")

	assert.Equal(t, [4]float64{r, g, b, 1}, c.Values())
}
