package property

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/OpticalFlyer/tableau/units"
)

func TestReadFallbackIsIdentity(t *testing.T) {
	table := NewTable()
	table.Register("text", "", "")
	table.Register("position", "0,0", TypePoint).
		OnRead(Sequence, func(v Value) (Value, error) { return Text("list"), nil })

	check := func(s string, f float64, b bool) bool {
		for _, v := range []Value{
			Text(s), Number(f), Bool(b), None(),
			List(Text(s), Number(f)),
			Rec(Fields{"k": Text(s)}),
			Wrap(units.At(f, f, f)),
		} {
			for _, name := range []string{"text", "unregistered"} {
				got, err := table.Read(name, v)
				if err != nil || !reflect.DeepEqual(got, v) {
					return false
				}
			}
			if v.Kind() == Sequence {
				continue
			}
			got, err := table.Read("position", v)
			if err != nil || !reflect.DeepEqual(got, v) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(check, nil); err != nil {
		t.Error(err)
	}
}

func TestFirstMatchingRuleWins(t *testing.T) {
	table := NewTable()
	var calls []string
	table.Register("options", nil, "").
		OnWrite(Sequence, func(v Value) (Value, error) {
			calls = append(calls, "first")
			return v, nil
		}).
		OnWrite(Sequence, func(v Value) (Value, error) {
			calls = append(calls, "second")
			return v, nil
		}).
		OnWrite(Record, func(v Value) (Value, error) {
			calls = append(calls, "record")
			return v, nil
		})

	if _, err := table.Write("options", Texts("a")); err != nil {
		t.Fatal(err)
	}
	if _, err := table.Write("options", Rec(nil)); err != nil {
		t.Fatal(err)
	}
	if _, err := table.Write("options", Text("plain")); err != nil {
		t.Fatal(err)
	}
	if want := []string{"first", "record"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls = %v; want %v", calls, want)
	}
}

func TestWriteConstructsDeclaredType(t *testing.T) {
	table := NewTable()
	table.Register("position", nil, TypePoint)
	table.Register("color", nil, TypeColor)
	table.Register("padding", nil, TypeNumeric)
	table.Register("font", nil, TypeTypeface)
	table.Register("enabled", nil, TypeBoolean)
	table.Register("scale", nil, TypeScale)
	table.Register("dimensions", nil, TypeDimensions)
	table.Register("text", nil, TypeText)

	tests := []struct {
		name string
		raw  Value
		want any
	}{
		{"position", Text("1,2,3"), units.At(1, 2, 3)},
		{"position", List(Number(4), Number(5)), units.At(4, 5, 0)},
		{"position", Rec(Fields{"x": Number(7), "z": Number(2)}), units.At(7, 0, 2)},
		{"color", Text("rgba(255,0,0,1.0)"), units.Color{R: 255, A: 255}},
		{"color", List(Number(1), Number(2), Number(3)), units.Color{R: 1, G: 2, B: 3, A: 255}},
		{"padding", Number(40), 40.0},
		{"padding", Text("12.5"), 12.5},
		{"font", Rec(Fields{"size": Number(32)}), units.Typeface{Size: 32}},
		{"font", Number(12), units.Typeface{Size: 12}},
		{"enabled", Text("false"), false},
		{"scale", Number(2), units.Scale{X: 2, Y: 2}},
		{"dimensions", Text("640,480"), units.Dimensions{Width: 640, Height: 480}},
		{"text", Texts("one", "two"), "one\ntwo"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.name, tt.raw.Kind()), func(t *testing.T) {
			got, err := table.Write(tt.name, tt.raw)
			if err != nil {
				t.Fatalf("Write: %v", err)
			}
			if got.Kind() != Native || !reflect.DeepEqual(got.Native(), tt.want) {
				t.Errorf("Write = %v (%s); want %v", got, got.Kind(), tt.want)
			}
		})
	}
}

func TestWriteSkipsNativeAndAbsent(t *testing.T) {
	table := NewTable()
	table.Register("color", nil, TypeColor)

	native := Wrap(units.White)
	if got, err := table.Write("color", native); err != nil || !reflect.DeepEqual(got, native) {
		t.Errorf("native write = %v, %v", got, err)
	}
	if got, err := table.Write("color", None()); err != nil || !got.IsAbsent() {
		t.Errorf("absent write = %v, %v", got, err)
	}
}

func TestMalformedValueIsConfigurationError(t *testing.T) {
	table := NewTable()
	table.Register("highlight_color", nil, TypeColor)

	_, err := table.Write("highlight_color", Text("not-a-color"))
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v; want ConfigurationError", err)
	}
	if ce.Property != "highlight_color" || ce.Raw.String() != "not-a-color" {
		t.Errorf("error names %q / %q", ce.Property, ce.Raw.String())
	}
}

func TestConverterErrorsAreConfigurationErrors(t *testing.T) {
	table := NewTable()
	boom := errors.New("boom")
	table.Register("options", nil, "").
		OnRead(Sequence, func(Value) (Value, error) { return None(), boom })

	_, err := table.Read("options", Texts("x"))
	var ce *ConfigurationError
	if !errors.As(err, &ce) || !errors.Is(err, boom) {
		t.Errorf("error = %v", err)
	}
}

func TestDefaultProducersAreLazy(t *testing.T) {
	table := NewTable()
	calls := 0
	d := table.Register("dimensions", func() Value {
		calls++
		return Text("1,1")
	}, TypeDimensions)
	if calls != 0 {
		t.Fatalf("producer ran at registration")
	}
	d.Default()
	d.Default()
	if calls != 2 {
		t.Errorf("calls = %d; want 2", calls)
	}
	if got := table.Register("plain", "left", TypeText).Default(); got.String() != "left" {
		t.Errorf("constant default = %v", got)
	}
}

func TestExtendCopiesDescriptors(t *testing.T) {
	parent := NewTable()
	parent.Register("position", "0,0", TypePoint)
	child := parent.Extend()
	child.Register("text", "", TypeText)

	if parent.Lookup("text") != nil {
		t.Error("child registration leaked into parent")
	}
	if child.Lookup("position") == nil || len(child.Descriptors()) != 2 {
		t.Errorf("child descriptors = %d", len(child.Descriptors()))
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	table := NewTable()
	table.Register("text", nil, "")
	table.Register("text", nil, "")
}
