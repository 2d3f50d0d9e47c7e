// Package render implements the drawing context of models on top of ebiten.
// Draw calls are queued during a frame and flushed to the screen ordered by
// their z value.
package render

import (
	"cmp"
	"image/color"
	"log/slog"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/tableau/model"
	"github.com/OpticalFlyer/tableau/units"
)

var _ model.Context = (*Context)(nil)

type drawOp struct {
	z    float64
	draw func(screen *ebiten.Image)
}

// Context is the ebiten-backed model.Context.
type Context struct {
	width, height int
	queue         []drawOp
	sources       map[string]*text.GoTextFaceSource
	fonts         map[units.Typeface]model.Font
}

// NewContext creates a context for a window of the given size.
func NewContext(width, height int) *Context {
	return &Context{
		width:   width,
		height:  height,
		sources: make(map[string]*text.GoTextFaceSource),
		fonts:   make(map[units.Typeface]model.Font),
	}
}

// Size returns the window size in pixels.
func (c *Context) Size() (float64, float64) {
	return float64(c.width), float64(c.height)
}

// Resize records a new window size.
func (c *Context) Resize(width, height int) {
	c.width, c.height = width, height
}

// Font returns the font for t, loading its face source on first use. Faces
// that cannot be loaded fall back to the debug font.
func (c *Context) Font(t units.Typeface) model.Font {
	if f, ok := c.fonts[t]; ok {
		return f
	}
	var f model.Font
	src, err := c.source(t.Name)
	if err != nil {
		slog.Warn("font unavailable, using debug font", "name", t.Name, "err", err)
		f = &DebugFont{ctx: c}
	} else {
		size := t.Size
		if size <= 0 {
			size = units.DefaultFontSize
		}
		f = &GoTextFont{ctx: c, face: &text.GoTextFace{Source: src, Size: size}}
	}
	c.fonts[t] = f
	return f
}

// DrawLine queues a one pixel line.
func (c *Context) DrawLine(x0, y0, x1, y1, z float64, clr color.Color) {
	c.enqueue(z, func(screen *ebiten.Image) {
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, false)
	})
}

func (c *Context) enqueue(z float64, draw func(*ebiten.Image)) {
	c.queue = append(c.queue, drawOp{z: z, draw: draw})
}

// Flush draws the queued operations onto screen, lowest z first. Operations
// with equal z keep their queue order.
func (c *Context) Flush(screen *ebiten.Image) {
	slices.SortStableFunc(c.queue, func(a, b drawOp) int {
		return cmp.Compare(a.z, b.z)
	})
	for _, op := range c.queue {
		op.draw(screen)
	}
	c.queue = c.queue[:0]
}
