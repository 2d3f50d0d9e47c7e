package model

import (
	"errors"
	"image/color"
	"reflect"
	"testing"

	"github.com/OpticalFlyer/tableau/property"
	"github.com/OpticalFlyer/tableau/units"
)

type stubContext struct{ w, h float64 }

func (c stubContext) Size() (float64, float64) { return c.w, c.h }

func (c stubContext) Font(units.Typeface) Font { return nil }

func (c stubContext) DrawLine(_, _, _, _, _ float64, _ color.Color) {}

var widgetProperties = func() *property.Table {
	t := property.NewTable()
	t.Register("position", nil, property.TypePoint)
	t.Register("color", "rgba(255,255,255,1.0)", property.TypeColor)
	t.Register("padding", 40, property.TypeNumeric)
	t.Register("tags", nil, "").
		OnRead(property.Sequence, func(v property.Value) (property.Value, error) {
			return property.Number(float64(len(v.Items()))), nil
		})
	return t
}()

type widget struct {
	Base
	attached int
	shown    int
	log      []string
}

var widgetEvents = (&Bindings[*widget]{}).
	On(ButtonUp, func(w *widget) error {
		w.log = append(w.log, "first")
		return nil
	}, KeyEnter, GamepadButton0).
	On(ButtonUp, func(w *widget) error {
		w.log = append(w.log, "second")
		return nil
	}, KeyEnter).
	On(ButtonDown, func(w *widget) error {
		return errors.New("broken")
	}, KeyEscape)

func newWidget(decl property.Fields) (*widget, error) {
	w := &widget{}
	if err := w.Init("widget", widgetProperties, decl, nil); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *widget) OnAttach(ctx Context) error {
	w.attached++
	if _, ok := Prop[units.Point](&w.Base, "position"); !ok {
		width, height := ctx.Size()
		return w.Set("position", property.Wrap(units.At(width/2, height/2, 0)))
	}
	return nil
}

func (w *widget) OnShow() { w.shown++; w.SetSaveable(false) }

func (w *widget) HandleEvent(kind EventKind, sig Signal) (bool, error) {
	return widgetEvents.Dispatch(w, kind, sig)
}

func TestInitUsesDefaultsAndDeclaration(t *testing.T) {
	w, err := newWidget(property.Fields{
		"padding": property.Text("12"),
		"extra":   property.Text("kept"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := w.Float("padding"); got != 12 {
		t.Errorf("padding = %v; want 12", got)
	}
	if got := w.Color("color"); got != units.White {
		t.Errorf("color = %v; want white", got)
	}
	if got := w.Text("extra"); got != "kept" {
		t.Errorf("extra = %q", got)
	}
	if v, _ := w.Get("position"); !v.IsAbsent() {
		t.Errorf("position = %v; want absent", v)
	}
	if w.State() != Detached || w.Kind() != "widget" {
		t.Errorf("state = %s kind = %q", w.State(), w.Kind())
	}
}

func TestInitFailsOnMalformedValue(t *testing.T) {
	_, err := newWidget(property.Fields{"color": property.Text("sparkly")})
	var ce *property.ConfigurationError
	if !errors.As(err, &ce) || ce.Property != "color" {
		t.Fatalf("error = %v; want ConfigurationError for color", err)
	}
}

func TestAccessFlowsThroughRules(t *testing.T) {
	w, err := newWidget(property.Fields{"tags": property.Texts("a", "b", "c")})
	if err != nil {
		t.Fatal(err)
	}
	if got := w.Float("tags"); got != 3 {
		t.Errorf("tags read = %v; want 3", got)
	}
	if err := w.Set("position", property.Text("5,6")); err != nil {
		t.Fatal(err)
	}
	if p, ok := Prop[units.Point](&w.Base, "position"); !ok || p != units.At(5, 6, 0) {
		t.Errorf("position = %v, %v", p, ok)
	}
	if err := w.Set("position", property.Text("five")); err == nil {
		t.Error("malformed Set succeeded")
	}
}

func TestAttachLifecycle(t *testing.T) {
	w, err := newWidget(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := Attach(w, stubContext{w: 800, h: 600}); err != nil {
		t.Fatal(err)
	}
	if w.State() != Attached || w.Context() == nil {
		t.Fatalf("state = %s", w.State())
	}
	if p, _ := Prop[units.Point](&w.Base, "position"); p != units.At(400, 300, 0) {
		t.Errorf("derived position = %v", p)
	}
	if err := Attach(w, stubContext{}); !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("second Attach = %v; want ErrAlreadyAttached", err)
	}
	if w.attached != 1 {
		t.Errorf("OnAttach ran %d times", w.attached)
	}
}

type failingAttach struct {
	Base
	calls int
	err   error
}

func (f *failingAttach) OnAttach(Context) error {
	f.calls++
	return f.err
}

func TestAttachFailureLeavesModelDetached(t *testing.T) {
	f := &failingAttach{err: errors.New("boom")}
	if err := f.Init("failing", property.NewTable(), nil, nil); err != nil {
		t.Fatal(err)
	}
	if err := Attach(f, stubContext{}); !errors.Is(err, f.err) {
		t.Fatalf("first Attach = %v; want boom", err)
	}
	if f.State() != Detached || f.Context() != nil {
		t.Errorf("after failed attach state = %s context = %v", f.State(), f.Context())
	}

	f.err = nil
	if err := Attach(f, stubContext{w: 1, h: 1}); err != nil {
		t.Fatalf("retry = %v", err)
	}
	if f.State() != Attached || f.calls != 2 {
		t.Errorf("state = %s calls = %d", f.State(), f.calls)
	}
}

func TestShowRunsOnce(t *testing.T) {
	w, _ := newWidget(nil)
	Show(w)
	Show(w)
	if w.shown != 1 || w.Saveable() {
		t.Errorf("shown = %d saveable = %v", w.shown, w.Saveable())
	}
}

func TestEventBindingsRunInRegistrationOrder(t *testing.T) {
	a, _ := newWidget(nil)
	b, _ := newWidget(nil)

	handled, err := a.HandleEvent(ButtonUp, KeyEnter)
	if !handled || err != nil {
		t.Fatalf("HandleEvent = %v, %v", handled, err)
	}
	if _, err := b.HandleEvent(ButtonUp, GamepadButton0); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.log, []string{"first", "second"}) {
		t.Errorf("a.log = %v", a.log)
	}
	if !reflect.DeepEqual(b.log, []string{"first"}) {
		t.Errorf("b.log = %v", b.log)
	}
	if handled, _ := a.HandleEvent(ButtonDown, KeyEnter); handled {
		t.Error("down event matched an up binding")
	}
	if _, err := a.HandleEvent(ButtonDown, KeyEscape); err == nil {
		t.Error("behavior error was swallowed")
	}
}

func TestDeclarationExportsStoredValues(t *testing.T) {
	w, _ := newWidget(property.Fields{"position": property.Text("1,2,3")})
	decl := w.Declaration()
	if decl["model"] != "widget" || decl["position"] != "1.0,2.0,3.0" || decl["padding"] != 40.0 {
		t.Errorf("Declaration() = %v", decl)
	}
	if _, ok := decl["tags"]; ok {
		t.Error("absent property exported")
	}
}

func TestCreate(t *testing.T) {
	Register("test-widget", func(decl property.Fields, scene Scene) (Model, error) {
		return newWidget(decl)
	})
	m, err := Create("test-widget", nil, nil)
	if err != nil || m == nil {
		t.Fatalf("Create = %v, %v", m, err)
	}
	if _, err := Create("nope", nil, nil); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown kind error = %v", err)
	}
	if _, err := Create("test-widget", property.Fields{"padding": property.Text("x")}, nil); err == nil {
		t.Error("factory error was dropped")
	}
}
