package property

import (
	"reflect"
	"testing"

	"github.com/OpticalFlyer/tableau/units"
)

func TestFromShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Kind
	}{
		{"nil", nil, Absent},
		{"string", "Start", Scalar},
		{"int64", int64(3), Scalar},
		{"float", 1.5, Scalar},
		{"bool", true, Scalar},
		{"list", []any{"a", "b"}, Sequence},
		{"tables", []map[string]any{{"text": "a"}}, Sequence},
		{"record", map[string]any{"items": []any{"a"}}, Record},
		{"native", units.White, Native},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := From(tt.raw).Kind(); got != tt.want {
				t.Errorf("From(%v).Kind() = %s; want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFromNested(t *testing.T) {
	v := From(map[string]any{
		"items":    []any{"Start", map[string]any{"text": "Quit", "action": "exit"}},
		"selected": int64(1),
	})
	items := v.Field("items").Items()
	if len(items) != 2 {
		t.Fatalf("items = %d", len(items))
	}
	if items[1].Field("action").String() != "exit" {
		t.Errorf("nested action = %q", items[1].Field("action").String())
	}
	if f, ok := v.Field("selected").Float(); !ok || f != 1 {
		t.Errorf("selected = %v, %v", f, ok)
	}
}

func TestInterfaceInvertsFrom(t *testing.T) {
	raw := map[string]any{
		"model": "label",
		"items": []any{"a", 2.0, true},
	}
	if got := From(raw).Interface(); !reflect.DeepEqual(got, raw) {
		t.Errorf("Interface() = %#v; want %#v", got, raw)
	}
	if got := Wrap(units.At(1, 2, 3)).Interface(); got != "1.0,2.0,3.0" {
		t.Errorf("native Interface() = %v", got)
	}
}

func TestAs(t *testing.T) {
	p, ok := As[units.Point](Wrap(units.At(1, 0, 0)))
	if !ok || p.X != 1 {
		t.Errorf("As = %v, %v", p, ok)
	}
	if _, ok := As[units.Color](Text("red")); ok {
		t.Error("As matched a scalar")
	}
}
