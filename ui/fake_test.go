package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/OpticalFlyer/tableau/model"
	"github.com/OpticalFlyer/tableau/units"
)

type drawCall struct {
	text    string
	x, y, z float64
	sx, sy  float64
	color   units.Color
}

// fakeFont measures every rune as charWidth pixels wide.
type fakeFont struct {
	charWidth float64
	height    float64
	draws     *[]drawCall
}

func (f fakeFont) TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * f.charWidth
}

func (f fakeFont) Height() float64 { return f.height }

func (f fakeFont) Draw(s string, x, y, z, sx, sy float64, c color.Color) {
	*f.draws = append(*f.draws, drawCall{text: s, x: x, y: y, z: z, sx: sx, sy: sy, color: units.FromColor(c)})
}

type lineCall struct {
	x0, y0, x1, y1, z float64
}

type fakeContext struct {
	width, height float64
	lineHeight    float64
	fonts         []units.Typeface
	draws         []drawCall
	lines         []lineCall
}

func newFakeContext() *fakeContext {
	return &fakeContext{width: 800, height: 600, lineHeight: 10}
}

func (c *fakeContext) Size() (float64, float64) { return c.width, c.height }

func (c *fakeContext) Font(t units.Typeface) model.Font {
	c.fonts = append(c.fonts, t)
	return fakeFont{charWidth: 10, height: c.lineHeight, draws: &c.draws}
}

func (c *fakeContext) DrawLine(x0, y0, x1, y1, z float64, _ color.Color) {
	c.lines = append(c.lines, lineCall{x0, y0, x1, y1, z})
}

// fakeScene records performed actions.
type fakeScene struct {
	performed []string
	known     map[string]bool
}

func (s *fakeScene) Perform(action string) error {
	if s.known != nil && !s.known[action] {
		return &model.DispatchError{Action: action}
	}
	s.performed = append(s.performed, action)
	return nil
}
