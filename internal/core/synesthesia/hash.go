package synesthesia

import (
	"crypto/sha256"

	"github.com/hay-kot/synesthete/pkg/color"
)

// Digest hashes the canonical text of a value.
type Digest func(data []byte) []byte

// SHA256 is the default Digest.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Colorize derives an r, g, b triple from the SHA-256 digest of v's canonical
// text. See ColorizeWith.
func Colorize(v any) (r, g, b float64) {
	return ColorizeWith(SHA256, v)
}

// ColorizeWith takes the first three bytes of digest(repr(v)) as red, green
// and blue. When all three channels fall below 0.5 they are inverted so the
// result is never dark. Missing digest bytes read as zero.
func ColorizeWith(digest Digest, v any) (r, g, b float64) {
	sum := digest([]byte(canonical(v)))

	var raw [3]byte
	copy(raw[:], sum)

	r = float64(raw[0]) / 255
	g = float64(raw[1]) / 255
	b = float64(raw[2]) / 255

	if r < 0.5 && g < 0.5 && b < 0.5 {
		r, g, b = 1-r, 1-g, 1-b
	}

	return r, g, b
}

// HashColor is Colorize as an opaque Color.
func HashColor(v any) color.Color {
	return color.FromRGB(Colorize(v))
}
