package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/OpticalFlyer/tableau/model"
)

var (
	_ model.Font = (*GoTextFont)(nil)
	_ model.Font = (*DebugFont)(nil)
)

// Typeface names and the Go font data behind them.
var faceData = map[string][]byte{
	"":        goregular.TTF,
	"regular": goregular.TTF,
	"bold":    gobold.TTF,
	"mono":    gomono.TTF,
}

func (c *Context) source(name string) (*text.GoTextFaceSource, error) {
	name = strings.ToLower(name)
	if src, ok := c.sources[name]; ok {
		return src, nil
	}
	data, ok := faceData[name]
	if !ok {
		return nil, fmt.Errorf("unknown typeface %q", name)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading typeface %q: %w", name, err)
	}
	c.sources[name] = src
	return src, nil
}

// GoTextFont draws with an ebiten text face.
type GoTextFont struct {
	ctx  *Context
	face *text.GoTextFace
}

func (f *GoTextFont) TextWidth(s string) float64 {
	return text.Advance(s, f.face)
}

func (f *GoTextFont) Height() float64 {
	m := f.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

func (f *GoTextFont) Draw(s string, x, y, z, scaleX, scaleY float64, c color.Color) {
	f.ctx.enqueue(z, func(screen *ebiten.Image) {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scaleX, scaleY)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(c)
		text.Draw(screen, s, f.face, op)
	})
}

// DebugFont prints with ebiten's built-in debug glyphs. It ignores scale
// and color.
type DebugFont struct {
	ctx *Context
}

const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

func (f *DebugFont) TextWidth(s string) float64 {
	return float64(runewidth.StringWidth(s) * debugGlyphWidth)
}

func (f *DebugFont) Height() float64 { return debugGlyphHeight }

func (f *DebugFont) Draw(s string, x, y, z, _, _ float64, _ color.Color) {
	f.ctx.enqueue(z, func(screen *ebiten.Image) {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
	})
}
