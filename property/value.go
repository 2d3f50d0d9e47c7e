package property

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Kind is the runtime shape of a raw declaration value.
type Kind int

const (
	// Absent means no value was supplied.
	Absent Kind = iota
	// Scalar is a single number, string or boolean.
	Scalar
	// Sequence is a flat ordered list.
	Sequence
	// Record is a key to value mapping.
	Record
	// Native is a value already converted to a declared type
	// (a units.Color, units.Point, *ui.Options, ...).
	Native
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Scalar:
		return "scalar"
	case Sequence:
		return "sequence"
	case Record:
		return "record"
	case Native:
		return "native"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Fields is a declaration: attribute name to raw value.
type Fields map[string]Value

// Value is a closed variant over the shapes a declaration value can take.
// The zero Value is Absent.
type Value struct {
	kind   Kind
	scalar any
	items  []Value
	fields Fields
	native any
}

// None returns an Absent value.
func None() Value {
	return Value{}
}

// Text returns a Scalar string value.
func Text(s string) Value {
	return Value{kind: Scalar, scalar: s}
}

// Number returns a Scalar numeric value.
func Number(f float64) Value {
	return Value{kind: Scalar, scalar: f}
}

// Bool returns a Scalar boolean value.
func Bool(b bool) Value {
	return Value{kind: Scalar, scalar: b}
}

// List returns a Sequence of the given values.
func List(items ...Value) Value {
	return Value{kind: Sequence, items: items}
}

// Texts is shorthand for a Sequence of strings.
func Texts(items ...string) Value {
	values := make([]Value, len(items))
	for i, s := range items {
		values[i] = Text(s)
	}
	return List(values...)
}

// Rec returns a Record value.
func Rec(fields Fields) Value {
	if fields == nil {
		fields = Fields{}
	}
	return Value{kind: Record, fields: fields}
}

// Wrap returns a Native value holding an already typed Go value.
func Wrap(v any) Value {
	if v == nil {
		return None()
	}
	return Value{kind: Native, native: v}
}

// From converts decoded data (as produced by a TOML or JSON decoder) into a
// Value: nil is Absent, slices are Sequences, string keyed maps are Records,
// strings, numbers, booleans and times are Scalars, a Value is returned
// unchanged and anything else becomes Native.
func From(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return None()
	case Value:
		return v
	case string:
		return Text(v)
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	case uint32:
		return Number(float64(v))
	case time.Time:
		return Value{kind: Scalar, scalar: v}
	case []string:
		return Texts(v...)
	case []any:
		items := make([]Value, len(v))
		for i, item := range v {
			items[i] = From(item)
		}
		return List(items...)
	case []map[string]any:
		items := make([]Value, len(v))
		for i, item := range v {
			items[i] = From(item)
		}
		return List(items...)
	case map[string]any:
		fields := make(Fields, len(v))
		for k, item := range v {
			fields[k] = From(item)
		}
		return Rec(fields)
	case Fields:
		return Rec(v)
	}
	return Wrap(raw)
}

// Kind reports the shape of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether no value was supplied.
func (v Value) IsAbsent() bool {
	return v.kind == Absent
}

// Items returns the elements of a Sequence, nil otherwise.
func (v Value) Items() []Value {
	return v.items
}

// Fields returns the entries of a Record, nil otherwise.
func (v Value) Fields() Fields {
	return v.fields
}

// Field looks up a key of a Record.
func (v Value) Field(key string) Value {
	if v.kind != Record {
		return None()
	}
	return v.fields[key]
}

// Native returns the Go value held by a Native value.
func (v Value) Native() any {
	return v.native
}

// Scalar returns the Go value held by a Scalar value.
func (v Value) Scalar() any {
	return v.scalar
}

// Float reads a numeric Scalar, accepting numeric strings.
func (v Value) Float() (float64, bool) {
	switch s := v.scalar.(type) {
	case float64:
		return s, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	case bool:
		if s {
			return 1, true
		}
		return 0, true
	}
	if f, ok := v.native.(float64); ok {
		return f, true
	}
	return 0, false
}

// String renders v for messages and text properties. Scalars render without
// quotes, Sequences and Records in a short bracketed form.
func (v Value) String() string {
	switch v.kind {
	case Absent:
		return ""
	case Scalar:
		switch s := v.scalar.(type) {
		case string:
			return s
		case float64:
			return strconv.FormatFloat(s, 'f', -1, 64)
		}
		return fmt.Sprint(v.scalar)
	case Sequence:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case Record:
		keys := make([]string, 0, len(v.fields))
		for k := range v.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.fields[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprint(v.native)
}

// Interface converts v back into plain decoded data, the inverse of From for
// Scalars, Sequences and Records. Native values render through fmt.Stringer
// when they implement it.
func (v Value) Interface() any {
	switch v.kind {
	case Scalar:
		return v.scalar
	case Sequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case Record:
		out := make(map[string]any, len(v.fields))
		for k, item := range v.fields {
			if item.IsAbsent() {
				continue
			}
			out[k] = item.Interface()
		}
		return out
	case Native:
		if s, ok := v.native.(fmt.Stringer); ok {
			return s.String()
		}
		return v.native
	}
	return nil
}

// As returns the Native payload of v as a T.
func As[T any](v Value) (T, bool) {
	t, ok := v.native.(T)
	return t, ok
}
