package ui

import (
	"log/slog"

	"github.com/OpticalFlyer/tableau/model"
	"github.com/OpticalFlyer/tableau/property"
	"github.com/OpticalFlyer/tableau/units"
)

func buildOptionsRule(v property.Value) (property.Value, error) {
	opts, err := BuildOptions(v)
	if err != nil {
		return property.None(), err
	}
	return property.Wrap(opts), nil
}

var menuProperties = func() *property.Table {
	t := textProperties.Extend()
	t.Register("position", nil, property.TypePoint)
	t.Register("z_order", 1, property.TypeNumeric)
	t.Register("padding", 40, property.TypeNumeric)
	t.Register("highlight_color", "rgba(255,255,0,1.0)", property.TypeColor)
	t.Register("options", nil, "").
		OnRead(property.Absent, buildOptionsRule).
		OnRead(property.Sequence, buildOptionsRule).
		OnRead(property.Record, buildOptionsRule).
		OnRead(property.Scalar, buildOptionsRule)
	return t
}()

var menuEvents = (&model.Bindings[*Menu]{}).
	On(model.ButtonUp, func(m *Menu) error {
		m.Previous()
		return nil
	}, model.KeyLeft, model.GamepadLeft, model.KeyUp, model.GamepadUp).
	On(model.ButtonUp, func(m *Menu) error {
		m.Next()
		return nil
	}, model.KeyRight, model.GamepadRight, model.KeyDown, model.GamepadDown).
	On(model.ButtonUp, (*Menu).Select, model.KeyEnter, model.KeyReturn, model.GamepadButton0)

var (
	_ model.Attacher  = (*Menu)(nil)
	_ model.Handler   = (*Menu)(nil)
	_ model.Pressable = (*Menu)(nil)
)

// Menu is a vertical list of options with a cursor. Selecting an option
// performs the option's action on the owning scene.
//
// The cursor always starts on the first option; the declared selection of
// the options value is kept on Options but not applied.
type Menu struct {
	model.Base
	options  *Options
	selected int
	font     model.Font
}

// NewMenu builds a menu and its options from a declaration.
func NewMenu(decl property.Fields, scene model.Scene) (*Menu, error) {
	m := &Menu{}
	if err := m.Init("menu", menuProperties, decl, scene); err != nil {
		return nil, err
	}
	if err := m.loadOptions(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Menu) loadOptions() error {
	v, err := m.Get("options")
	if err != nil {
		return err
	}
	opts, ok := property.As[*Options](v)
	if !ok {
		opts = EmptyOptions()
	}
	for _, opt := range opts.Items() {
		if opt.Model != nil {
			opt.Model.Core().SetScene(m.Scene())
		}
	}
	m.options = opts
	m.selected = 0
	return nil
}

// SetOptions replaces the options and moves the cursor back to the first.
func (m *Menu) SetOptions(decl property.Value) error {
	if err := m.Set("options", decl); err != nil {
		return err
	}
	if err := m.loadOptions(); err != nil {
		return err
	}
	if ctx := m.Context(); ctx != nil {
		return m.attachOptions(ctx)
	}
	return nil
}

// OnAttach loads the font, centers a menu without a position in the window
// and attaches the option models.
func (m *Menu) OnAttach(ctx model.Context) error {
	tf, _ := model.Prop[units.Typeface](&m.Base, "font")
	m.font = ctx.Font(tf)
	if _, ok := model.Prop[units.Point](&m.Base, "position"); !ok {
		w, h := ctx.Size()
		if err := m.Set("position", property.Wrap(units.At(w/2, h/2, 0))); err != nil {
			return err
		}
	}
	return m.attachOptions(ctx)
}

func (m *Menu) attachOptions(ctx model.Context) error {
	for _, opt := range m.options.Items() {
		if opt.Model == nil || opt.Model.Core().State() == model.Attached {
			continue
		}
		if err := model.Attach(opt.Model, ctx); err != nil {
			return err
		}
	}
	return nil
}

// HandleEvent runs the menu bindings: directions move the cursor on release
// and confirm buttons select.
func (m *Menu) HandleEvent(kind model.EventKind, sig model.Signal) (bool, error) {
	return menuEvents.Dispatch(m, kind, sig)
}

// Options returns the options value the menu navigates.
func (m *Menu) Options() *Options {
	return m.options
}

// Selected is the index of the option under the cursor.
func (m *Menu) Selected() int {
	return m.selected
}

// Previous moves the cursor up, wrapping to the last option.
func (m *Menu) Previous() {
	n := m.options.Len()
	if n == 0 {
		return
	}
	m.selected--
	if m.selected < 0 {
		m.selected = n - 1
	}
}

// Next moves the cursor down, wrapping to the first option.
func (m *Menu) Next() {
	n := m.options.Len()
	if n == 0 {
		return
	}
	m.selected++
	if m.selected >= n {
		m.selected = 0
	}
}

// Select performs the action of the option under the cursor. With no
// options it does nothing.
func (m *Menu) Select() error {
	opt := m.options.At(m.selected)
	if opt == nil {
		return nil
	}
	scene := m.Scene()
	if scene == nil {
		return &model.DispatchError{Action: opt.Action}
	}
	slog.Debug("menu selection", "option", opt.Name, "action", opt.Action)
	return scene.Perform(opt.Action)
}

// SetAlpha sets the alpha, 0 to 255, of both the normal and highlight colors.
func (m *Menu) SetAlpha(alpha float64) error {
	for _, name := range []string{"color", "highlight_color"} {
		c := m.Color(name).WithAlpha(alpha)
		if err := m.Set(name, property.Wrap(c)); err != nil {
			return err
		}
	}
	return nil
}

// Position is the top left of the first option.
func (m *Menu) Position() units.Point {
	p, _ := model.Prop[units.Point](&m.Base, "position")
	return p
}

func (m *Menu) scale() units.Scale {
	if s, ok := model.Prop[units.Scale](&m.Base, "scale"); ok {
		return s
	}
	return units.ScaleOne()
}

func (m *Menu) lineHeight() float64 {
	if m.font == nil {
		return 0
	}
	return m.font.Height()
}

// Width is the measured width of the widest option.
func (m *Menu) Width() float64 {
	if m.font == nil {
		return 0
	}
	widest := 0.0
	for _, opt := range m.options.Items() {
		widest = max(widest, m.font.TextWidth(opt.Name))
	}
	return widest
}

// Height stacks every option's line height plus the padding between them.
func (m *Menu) Height() float64 {
	n := float64(m.options.Len())
	if n == 0 {
		return 0
	}
	return n*m.lineHeight() + (n-1)*m.Float("padding")
}

// Bounds covers every option from the position down.
func (m *Menu) Bounds() units.Rectangle {
	p := m.Position()
	return units.Rectangle{X: p.X, Y: p.Y, Width: m.Width(), Height: m.Height()}
}

// Contains reports whether the point lies within Bounds.
func (m *Menu) Contains(x, y float64) bool {
	return m.Bounds().Contains(x, y)
}

// Press moves the cursor to the option drawn under the point and selects it.
func (m *Menu) Press(x, y float64) error {
	p := m.Position()
	padding := m.Float("padding")
	h := m.lineHeight()
	for i := range m.options.Items() {
		top := p.Y + padding*float64(i)
		if y >= top && y < top+h && x >= p.X && x <= p.X+m.Width() {
			m.selected = i
			return m.Select()
		}
	}
	return nil
}

// Draw stacks the options from the position, the cursor option in the
// highlight color.
func (m *Menu) Draw() {
	if m.font == nil {
		return
	}
	p := m.Position()
	s := m.scale()
	z := m.Float("z_order")
	padding := m.Float("padding")
	normal := m.Color("color")
	highlight := m.Color("highlight_color")
	for i, opt := range m.options.Items() {
		c := normal
		if i == m.selected {
			c = highlight
		}
		m.font.Draw(opt.Name, p.X, p.Y+padding*float64(i), z, s.X, s.Y, c)
	}
}
