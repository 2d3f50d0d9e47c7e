// Package model provides the base every drawable, interactive scene element
// is built on: declared properties, the construct-then-attach lifecycle and
// input event bindings.
package model

import (
	"image/color"

	"github.com/OpticalFlyer/tableau/property"
	"github.com/OpticalFlyer/tableau/units"
)

// Model is implemented by every scene element. Types get Core, Update and
// Draw by embedding Base and override Update and Draw as needed.
type Model interface {
	Core() *Base
	Update() error
	Draw()
}

// Attacher is implemented by models that derive state from the context once
// it is attached: centered positions, font handles and so on.
type Attacher interface {
	OnAttach(ctx Context) error
}

// Shower is implemented by models that want a hook just before they first
// become visible.
type Shower interface {
	OnShow()
}

// Handler is implemented by models with event bindings.
type Handler interface {
	HandleEvent(kind EventKind, sig Signal) (handled bool, err error)
}

// Pressable is implemented by models that react to pointer presses.
type Pressable interface {
	Contains(x, y float64) bool
	Press(x, y float64) error
}

// State is a step of the model lifecycle.
type State int

const (
	// Detached models hold valid property values but no context.
	Detached State = iota
	// Attached models have a context and their derived defaults.
	Attached
)

func (s State) String() string {
	if s == Attached {
		return "attached"
	}
	return "detached"
}

// Base holds the property values, lifecycle state and collaborators of a
// model. All property access goes through the type's property table.
type Base struct {
	kind     string
	table    *property.Table
	values   property.Fields
	scene    Scene
	ctx      Context
	state    State
	shown    bool
	saveable bool
}

// Init resolves every registered property from the declaration, falling back
// to the descriptor default, and runs it through the table's write rules.
// Undeclared keys are kept as given.
func (b *Base) Init(kind string, table *property.Table, decl property.Fields, scene Scene) error {
	b.kind = kind
	b.table = table
	b.scene = scene
	b.saveable = true
	b.values = make(property.Fields, len(decl))

	for _, d := range table.Descriptors() {
		raw, ok := decl[d.Name]
		if !ok {
			raw = d.Default()
		}
		v, err := table.Write(d.Name, raw)
		if err != nil {
			return err
		}
		b.values[d.Name] = v
	}
	for name, raw := range decl {
		if table.Lookup(name) == nil {
			b.values[name] = raw
		}
	}
	return nil
}

func (b *Base) Core() *Base { return b }

// Update does nothing by default.
func (b *Base) Update() error { return nil }

// Draw does nothing by default.
func (b *Base) Draw() {}

// Kind is the registry name the model was created under.
func (b *Base) Kind() string { return b.kind }

// Scene returns the owning scene, nil when built without one.
func (b *Base) Scene() Scene { return b.scene }

// Context returns the attached context, nil while detached.
func (b *Base) Context() Context { return b.ctx }

// State reports the lifecycle state.
func (b *Base) State() State { return b.state }

// Saveable reports whether the model belongs in a persisted view.
func (b *Base) Saveable() bool { return b.saveable }

// SetScene changes the owning scene. Models built by other models are
// handed their owner's scene this way.
func (b *Base) SetScene(s Scene) { b.scene = s }

// SetSaveable includes or excludes the model from persisted views.
func (b *Base) SetSaveable(v bool) { b.saveable = v }

// Get reads a property through its read rules.
func (b *Base) Get(name string) (property.Value, error) {
	return b.table.Read(name, b.values[name])
}

// Set writes a property through its write rules.
func (b *Base) Set(name string, raw property.Value) error {
	v, err := b.table.Write(name, raw)
	if err != nil {
		return err
	}
	b.values[name] = v
	return nil
}

// Declaration returns the stored property values as plain data, with the
// kind under "model", ready to be written back to a view. Stored forms are
// used so that read rules building runtime objects are not re-run.
func (b *Base) Declaration() map[string]any {
	out := make(map[string]any, len(b.values)+1)
	for name, v := range b.values {
		if v.IsAbsent() {
			continue
		}
		out[name] = v.Interface()
	}
	if b.kind != "" {
		out["model"] = b.kind
	}
	return out
}

// Float reads a numeric property, 0 when unset.
func (b *Base) Float(name string) float64 {
	v, err := b.Get(name)
	if err != nil {
		return 0
	}
	if f, ok := property.As[float64](v); ok {
		return f
	}
	f, _ := v.Float()
	return f
}

// Text reads a property as text.
func (b *Base) Text(name string) string {
	v, err := b.Get(name)
	if err != nil {
		return ""
	}
	if s, ok := property.As[string](v); ok {
		return s
	}
	return v.String()
}

// Color reads a color property, opaque white when unset.
func (b *Base) Color(name string) units.Color {
	if c, ok := Prop[color.Color](b, name); ok {
		return units.FromColor(c)
	}
	return units.White
}

// Prop reads a property whose stored form is a native T.
func Prop[T any](b *Base, name string) (T, bool) {
	v, err := b.Get(name)
	if err != nil {
		var zero T
		return zero, false
	}
	return property.As[T](v)
}

// Attach binds m to ctx and runs its OnAttach hook. It may only succeed once
// per model. A failing hook leaves the model detached.
func Attach(m Model, ctx Context) error {
	b := m.Core()
	if b.state == Attached {
		return ErrAlreadyAttached
	}
	b.ctx = ctx
	b.state = Attached
	if a, ok := m.(Attacher); ok {
		if err := a.OnAttach(ctx); err != nil {
			b.ctx = nil
			b.state = Detached
			return err
		}
	}
	return nil
}

// Show runs the OnShow hook of m the first time it is called.
func Show(m Model) {
	b := m.Core()
	if b.shown {
		return
	}
	b.shown = true
	if s, ok := m.(Shower); ok {
		s.OnShow()
	}
}
