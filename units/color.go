package units

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var _ color.Color = Color{}

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// White is opaque white.
var White = Color{R: 255, G: 255, B: 255, A: 255}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// WithAlpha returns a copy of c with alpha set from a 0..255 value.
func (c Color) WithAlpha(alpha float64) Color {
	c.A = clampByte(math.Floor(alpha))
	return c
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B,
		strconv.FormatFloat(float64(c.A)/255, 'f', -1, 64))
}

// FromColor converts any color.Color.
func FromColor(c color.Color) Color {
	if uc, ok := c.(Color); ok {
		return uc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(v uint32) Color {
	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ParseColor understands "rgba(r,g,b,a)", "rgb(r,g,b)", "#rgb", "#rrggbb" and
// a bare "r,g,b" or "r,g,b,a" list. Channels are 0..255, alpha is 0..1.
func ParseColor(s string) (Color, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(text, "#"):
		return parseHex(text)
	case strings.HasPrefix(text, "rgba(") && strings.HasSuffix(text, ")"):
		return parseChannels(s, text[len("rgba("):len(text)-1], 4)
	case strings.HasPrefix(text, "rgb(") && strings.HasSuffix(text, ")"):
		return parseChannels(s, text[len("rgb("):len(text)-1], 3)
	case strings.HasPrefix(text, "0x"):
		v, err := strconv.ParseUint(text[2:], 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
		}
		return FromARGB(uint32(v)), nil
	}
	return parseChannels(s, text, 0)
}

func parseHex(text string) (Color, error) {
	if len(text) == 4 {
		text = string([]byte{'#', text[1], text[1], text[2], text[2], text[3], text[3]})
	}
	c, err := colorful.Hex(text)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", text, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: 255}, nil
}

// parseChannels reads r,g,b[,a]. want is the exact channel count or 0 for
// either three or four.
func parseChannels(raw, list string, want int) (Color, error) {
	parts := strings.Split(list, ",")
	if want != 0 && len(parts) != want || want == 0 && (len(parts) < 3 || len(parts) > 4) {
		return Color{}, fmt.Errorf("parsing color %q: unexpected channel count %d", raw, len(parts))
	}
	values := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Color{}, fmt.Errorf("parsing color %q: %w", raw, err)
		}
		values[i] = v
	}
	c := Color{
		R: clampByte(values[0]),
		G: clampByte(values[1]),
		B: clampByte(values[2]),
		A: 255,
	}
	if len(values) == 4 {
		c.A = clampByte(math.Round(values[3] * 255))
	}
	return c, nil
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
