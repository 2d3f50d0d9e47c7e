package model

import (
	"image/color"

	"github.com/OpticalFlyer/tableau/units"
)

// Context is the live rendering environment a model is attached to.
type Context interface {
	// Size returns the window dimensions in pixels.
	Size() (width, height float64)
	// Font returns a face for the typeface, bound to this context.
	Font(t units.Typeface) Font
	// DrawLine draws a one pixel line at the given z-order.
	DrawLine(x0, y0, x1, y1, z float64, c color.Color)
}

// Font measures and draws single lines of text.
type Font interface {
	TextWidth(s string) float64
	Height() float64
	Draw(s string, x, y, z, scaleX, scaleY float64, c color.Color)
}

// Scene is the owner of a model. Perform runs the named scene action and
// returns a *DispatchError when no handler exists.
type Scene interface {
	Perform(action string) error
}
