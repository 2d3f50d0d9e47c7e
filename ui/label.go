package ui

import (
	"strings"

	"github.com/OpticalFlyer/tableau/model"
	"github.com/OpticalFlyer/tableau/property"
	"github.com/OpticalFlyer/tableau/units"
)

const (
	typeAlign         = "align"
	typeVerticalAlign = "vertical_align"
)

// textProperties are shared by every model that draws text.
var textProperties = func() *property.Table {
	t := property.NewTable()
	t.Register("scale", "1,1", property.TypeScale)
	t.Register("color", "rgba(255,255,255,1.0)", property.TypeColor)
	t.Register("font", map[string]any{"size": units.DefaultFontSize}, property.TypeTypeface)
	return t
}()

var labelProperties = func() *property.Table {
	property.RegisterType(typeAlign, func(raw property.Value) (any, error) {
		return ParseAlign(raw.String())
	})
	property.RegisterType(typeVerticalAlign, func(raw property.Value) (any, error) {
		return ParseVerticalAlign(raw.String())
	})

	t := textProperties.Extend()
	t.Register("position", "0,0,0", property.TypePoint)
	t.Register("text", "", property.TypeText)
	t.Register("align", "left", typeAlign)
	t.Register("vertical_align", "top", typeVerticalAlign)
	return t
}()

var _ model.Attacher = (*Label)(nil)

// Label draws one or more lines of text aligned around its position.
type Label struct {
	model.Base
	font model.Font
}

// NewLabel builds a label from its declaration.
func NewLabel(decl property.Fields, scene model.Scene) (*Label, error) {
	l := &Label{}
	if err := l.Init("label", labelProperties, decl, scene); err != nil {
		return nil, err
	}
	return l, nil
}

// OnAttach loads the label font.
func (l *Label) OnAttach(ctx model.Context) error {
	tf, _ := model.Prop[units.Typeface](&l.Base, "font")
	l.font = ctx.Font(tf)
	return nil
}

// Position is the anchor the lines are aligned around.
func (l *Label) Position() units.Point {
	p, _ := model.Prop[units.Point](&l.Base, "position")
	return p
}

// Scale is the drawing scale, 1,1 when unset.
func (l *Label) Scale() units.Scale {
	if s, ok := model.Prop[units.Scale](&l.Base, "scale"); ok {
		return s
	}
	return units.ScaleOne()
}

// Align is the horizontal alignment around the position.
func (l *Label) Align() Align {
	a, _ := model.Prop[Align](&l.Base, "align")
	return a
}

// VerticalAlign is the vertical alignment around the position.
func (l *Label) VerticalAlign() VerticalAlign {
	a, _ := model.Prop[VerticalAlign](&l.Base, "vertical_align")
	return a
}

// Lines splits the text on line breaks. Trailing empty lines are dropped.
func (l *Label) Lines() []string {
	lines := strings.Split(l.Text("text"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (l *Label) lineHeight() float64 {
	if l.font == nil {
		return 0
	}
	return l.font.Height()
}

func (l *Label) longestLine() float64 {
	if l.font == nil {
		return 0
	}
	longest := 0.0
	for _, line := range l.Lines() {
		longest = max(longest, l.font.TextWidth(line))
	}
	return longest
}

// Dimensions is the widest line scaled horizontally, and twice the height of
// all lines scaled vertically.
func (l *Label) Dimensions() units.Dimensions {
	s := l.Scale()
	return units.Dimensions{
		Width:  l.longestLine() * s.X,
		Height: l.lineHeight() * float64(len(l.Lines())) * 2 * s.Y,
	}
}

// X is where every line starts horizontally.
func (l *Label) X() float64 {
	return HorizontalOffset(l.Align(), l.Position().X, l.Dimensions().Width)
}

// Y is the top of line i.
func (l *Label) Y(i int) float64 {
	return VerticalOffset(l.VerticalAlign(), l.Position().Y, l.lineHeight(), i, len(l.Lines()))
}

// Bounds is the label dimensions placed at its position.
func (l *Label) Bounds() units.Rectangle {
	p := l.Position()
	d := l.Dimensions()
	return units.Rectangle{X: p.X, Y: p.Y, Width: d.Width, Height: d.Height}
}

// Contains reports whether the point lies within Bounds.
func (l *Label) Contains(x, y float64) bool {
	return l.Bounds().Contains(x, y)
}

// Draw draws every line at its aligned offset.
func (l *Label) Draw() {
	if l.font == nil {
		return
	}
	p := l.Position()
	s := l.Scale()
	c := l.Color("color")
	x := l.X()
	for i, line := range l.Lines() {
		l.font.Draw(line, x, l.Y(i), p.Z, s.X, s.Y, c)
	}
}
