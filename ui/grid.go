package ui

import (
	"github.com/OpticalFlyer/tableau/model"
	"github.com/OpticalFlyer/tableau/property"
	"github.com/OpticalFlyer/tableau/units"
)

var gridProperties = func() *property.Table {
	t := property.NewTable()
	t.Register("position", "0,0,100", property.TypePoint)
	t.Register("color", "rgba(255,255,255,0.1)", property.TypeColor)
	t.Register("spacing", 10, property.TypeNumeric)
	t.Register("dimensions", nil, property.TypeDimensions)
	t.Register("enabled", true, property.TypeBoolean)
	return t
}()

var (
	_ model.Attacher = (*GridDrawer)(nil)
	_ model.Shower   = (*GridDrawer)(nil)
)

// GridDrawer draws a grid of lines from its position out to its dimensions,
// spaced at a fixed interval. It is an editing aid and never saved with a
// view.
type GridDrawer struct {
	model.Base
}

// NewGridDrawer builds a grid drawer from its declaration.
func NewGridDrawer(decl property.Fields, scene model.Scene) (*GridDrawer, error) {
	g := &GridDrawer{}
	if err := g.Init("grid_drawer", gridProperties, decl, scene); err != nil {
		return nil, err
	}
	return g, nil
}

// OnAttach defaults the dimensions to the whole window.
func (g *GridDrawer) OnAttach(ctx model.Context) error {
	if _, ok := model.Prop[units.Dimensions](&g.Base, "dimensions"); ok {
		return nil
	}
	w, h := ctx.Size()
	return g.Set("dimensions", property.Wrap(units.Dimensions{Width: w, Height: h}))
}

// OnShow keeps the grid out of saved views.
func (g *GridDrawer) OnShow() {
	g.SetSaveable(false)
}

// Enabled reports whether the grid draws. It defaults to true.
func (g *GridDrawer) Enabled() bool {
	enabled, ok := model.Prop[bool](&g.Base, "enabled")
	return enabled || !ok
}

// Lines returns the grid segments relative to the position, horizontal
// lines first.
func (g *GridDrawer) Lines() [][4]float64 {
	d, _ := model.Prop[units.Dimensions](&g.Base, "dimensions")
	spacing := g.Float("spacing")
	if spacing <= 0 {
		return nil
	}
	var lines [][4]float64
	for i := 0; i < int(d.Height/spacing+1); i++ {
		y := float64(i) * spacing
		lines = append(lines, [4]float64{1, y, d.Width, y})
	}
	for i := 0; i < int(d.Width/spacing+1); i++ {
		x := float64(i) * spacing
		lines = append(lines, [4]float64{x, 1, x, d.Height})
	}
	return lines
}

func (g *GridDrawer) Draw() {
	ctx := g.Context()
	if ctx == nil || !g.Enabled() {
		return
	}
	p, _ := model.Prop[units.Point](&g.Base, "position")
	c := g.Color("color")
	for _, l := range g.Lines() {
		ctx.DrawLine(p.X+l[0], p.Y+l[1], p.X+l[2], p.Y+l[3], p.Z, c)
	}
}
