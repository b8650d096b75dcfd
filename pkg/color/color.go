// Package color provides an immutable RGBA value type with channels held in
// the unit interval and the arithmetic needed to blend colors together.
package color

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidArgument is returned when a color cannot be built from the given input.
var ErrInvalidArgument = errors.New("invalid argument")

// Color is a red, green, blue, alpha quadruple. Every channel is clamped to
// [0, 1] whenever a Color is produced, so the zero value is transparent black.
type Color struct {
	r, g, b, a float64
}

// New returns transparent black.
func New() Color {
	return Color{}
}

// FromRGB returns an opaque color.
func FromRGB(r, g, b float64) Color {
	return FromRGBA(r, g, b, 1)
}

// FromRGBA returns a color with an explicit alpha channel.
func FromRGBA(r, g, b, a float64) Color {
	return Color{r: r, g: g, b: b, a: a}.clamp()
}

// CopyOf returns a copy of c.
func CopyOf(c Color) Color {
	return FromRGBA(c.r, c.g, c.b, c.a)
}

// FromValues builds a color from a positional list of channels. Zero values
// yield transparent black, three values an opaque color and four values an
// explicit RGBA color. Any other count is rejected.
func FromValues(vals ...float64) (Color, error) {
	switch len(vals) {
	case 0:
		return New(), nil
	case 3:
		return FromRGB(vals[0], vals[1], vals[2]), nil
	case 4:
		return FromRGBA(vals[0], vals[1], vals[2], vals[3]), nil
	default:
		return Color{}, fmt.Errorf("%w: wrong number of channels: %d", ErrInvalidArgument, len(vals))
	}
}

// FromStd converts a standard library color.
func FromStd(c stdcolor.Color) Color {
	if c == nil {
		return New()
	}

	_, _, _, a := c.RGBA()
	if a == 0 {
		return New()
	}

	cc, ok := colorful.MakeColor(c)
	if !ok {
		return New()
	}

	return FromRGBA(cc.R, cc.G, cc.B, float64(a)/0xffff)
}

// Parse reads a color written as #rgb, #rrggbb, #rrggbbaa, rgb(R, G, B) or
// rgba(R, G, B, A). The output of CSS round-trips through Parse.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, "rgba(", 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, "rgb(", 3)
	default:
		return Color{}, fmt.Errorf("%w: unrecognized color %q", ErrInvalidArgument, s)
	}
}

func parseHex(s string) (Color, error) {
	switch len(s) {
	case 4, 7:
		cc, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %w", ErrInvalidArgument, s, err)
		}
		return FromRGB(cc.R, cc.G, cc.B), nil
	case 9:
		cc, err := colorful.Hex(s[:7])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %w", ErrInvalidArgument, s, err)
		}
		alpha, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: bad alpha: %w", ErrInvalidArgument, s, err)
		}
		return FromRGBA(cc.R, cc.G, cc.B, float64(alpha)/255), nil
	default:
		return Color{}, fmt.Errorf("%w: %q: hex colors need 3, 6 or 8 digits", ErrInvalidArgument, s)
	}
}

func parseFunc(s, prefix string, want int) (Color, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, prefix), ")")
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("%w: %q: expected %d channels, got %d", ErrInvalidArgument, s, want, len(parts))
	}

	vals := make([]float64, want)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: channel %d: %w", ErrInvalidArgument, s, i, err)
		}
		// r, g and b are written on the 0-255 scale, alpha is not
		if i < 3 {
			v /= 255
		}
		vals[i] = v
	}

	return FromValues(vals...)
}

func (c Color) R() float64 { return c.r }
func (c Color) G() float64 { return c.g }
func (c Color) B() float64 { return c.b }
func (c Color) A() float64 { return c.a }

// Values returns the channels in r, g, b, a order.
func (c Color) Values() [4]float64 {
	return [4]float64{c.r, c.g, c.b, c.a}
}

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a float64) Color {
	return FromRGBA(c.r, c.g, c.b, a)
}

// Add sums two colors channel by channel, alpha included.
func (c Color) Add(o Color) Color {
	return FromRGBA(c.r+o.r, c.g+o.g, c.b+o.b, c.a+o.a)
}

// Sub subtracts o from c channel by channel, alpha included.
func (c Color) Sub(o Color) Color {
	return FromRGBA(c.r-o.r, c.g-o.g, c.b-o.b, c.a-o.a)
}

// Scale multiplies all four channels by amount.
func (c Color) Scale(amount float64) Color {
	return FromRGBA(c.r*amount, c.g*amount, c.b*amount, c.a*amount)
}

// Div is Scale by the reciprocal of amount. Dividing by zero saturates
// non-zero channels and leaves zero channels at zero.
func (c Color) Div(amount float64) Color {
	return c.Scale(1 / amount)
}

// Brighten multiplies r, g and b by amount and keeps alpha.
func (c Color) Brighten(amount float64) Color {
	return FromRGBA(c.r*amount, c.g*amount, c.b*amount, c.a)
}

// Mix averages c with others. Each color contributes 1/(1+len(others)) of
// the result, summed from transparent black.
func (c Color) Mix(others ...Color) Color {
	weight := 1 / float64(1+len(others))

	result := New().Add(c.Scale(weight))
	for _, o := range others {
		result = result.Add(o.Scale(weight))
	}

	return result
}

// CSS formats the color as "rgba(R, G, B, A)" with r, g and b on the 0-255
// scale and alpha as is. Alpha below 1e-4 uses exponent notation.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		to255(c.r), to255(c.g), to255(c.b),
		formatAlpha(c.a),
	)
}

func formatAlpha(a float64) string {
	if a != 0 && a < 1e-4 {
		return strconv.FormatFloat(a, 'e', -1, 64)
	}
	return strconv.FormatFloat(a, 'f', -1, 64)
}

// Hex formats r, g and b as #rrggbb. Alpha is dropped.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Colorful returns the color channels as a go-colorful value.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.r, G: c.g, B: c.b}
}

// Luminance returns the relative luminance of the color, ignoring alpha.
func (c Color) Luminance() float64 {
	r, g, b := c.Colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(math.Round(c.a * 0xffff))
	r = uint32(math.Round(c.r * c.a * 0xffff))
	g = uint32(math.Round(c.g * c.a * 0xffff))
	b = uint32(math.Round(c.b * c.a * 0xffff))
	return r, g, b, a
}

func (c Color) String() string {
	return "Color(" +
		formatChannel(c.r) + ", " +
		formatChannel(c.g) + ", " +
		formatChannel(c.b) + ", " +
		formatChannel(c.a) + ")"
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'g', 3, 64)
}

// to255 rounds half to even so 127.5 and 128.5 both land on 128.
func to255(v float64) int {
	return int(math.RoundToEven(255 * v))
}

func (c Color) clamp() Color {
	return Color{
		r: clampUnit(c.r),
		g: clampUnit(c.g),
		b: clampUnit(c.b),
		a: clampUnit(c.a),
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}
