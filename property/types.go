package property

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/OpticalFlyer/tableau/units"
)

// Declared type tags understood by every table.
const (
	TypeNumeric    = "numeric"
	TypeText       = "text"
	TypeBoolean    = "boolean"
	TypePoint      = "point"
	TypeScale      = "scale"
	TypeColor      = "color"
	TypeDimensions = "dimensions"
	TypeTypeface   = "typeface"
)

// Constructor builds a declared type from a Scalar, Sequence or Record.
type Constructor func(raw Value) (any, error)

var (
	typesMu sync.RWMutex
	types   = map[string]Constructor{
		TypeNumeric:    newNumeric,
		TypeText:       newText,
		TypeBoolean:    newBoolean,
		TypePoint:      newPoint,
		TypeScale:      newScale,
		TypeColor:      newColor,
		TypeDimensions: newDimensions,
		TypeTypeface:   newTypeface,
	}
)

// RegisterType makes a declared type tag available to Register.
func RegisterType(tag string, ctor Constructor) {
	typesMu.Lock()
	defer typesMu.Unlock()
	types[tag] = ctor
}

func lookupType(tag string) Constructor {
	typesMu.RLock()
	defer typesMu.RUnlock()
	return types[tag]
}

func newNumeric(raw Value) (any, error) {
	if raw.Kind() != Scalar {
		return nil, fmt.Errorf("want a number")
	}
	f, ok := raw.Float()
	if !ok {
		return nil, fmt.Errorf("not a number")
	}
	return f, nil
}

func newText(raw Value) (any, error) {
	if raw.Kind() == Sequence {
		parts := make([]string, len(raw.Items()))
		for i, item := range raw.Items() {
			parts[i] = item.String()
		}
		return strings.Join(parts, "\n"), nil
	}
	return raw.String(), nil
}

func newBoolean(raw Value) (any, error) {
	switch v := raw.Scalar().(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	case float64:
		return v != 0, nil
	}
	return nil, fmt.Errorf("want a boolean")
}

// floats reads a Sequence of numbers.
func floats(raw Value, min, max int) ([]float64, error) {
	items := raw.Items()
	if len(items) < min || len(items) > max {
		return nil, fmt.Errorf("want %d to %d numbers, got %d", min, max, len(items))
	}
	out := make([]float64, len(items))
	for i, item := range items {
		f, ok := item.Float()
		if !ok {
			return nil, fmt.Errorf("element %d is not a number", i)
		}
		out[i] = f
	}
	return out, nil
}

// recordFloat reads an optional numeric key of a Record.
func recordFloat(raw Value, key string, def float64) (float64, error) {
	v := raw.Field(key)
	if v.IsAbsent() {
		return def, nil
	}
	f, ok := v.Float()
	if !ok {
		return 0, fmt.Errorf("%s is not a number", key)
	}
	return f, nil
}

func newPoint(raw Value) (any, error) {
	switch raw.Kind() {
	case Sequence:
		values, err := floats(raw, 1, 3)
		if err != nil {
			return nil, err
		}
		values = append(values, 0, 0)
		return units.At(values[0], values[1], values[2]), nil
	case Record:
		var p units.Point
		var err error
		for key, dst := range map[string]*float64{"x": &p.X, "y": &p.Y, "z": &p.Z} {
			if *dst, err = recordFloat(raw, key, 0); err != nil {
				return nil, err
			}
		}
		return p, nil
	}
	return units.ParsePoint(raw.String())
}

func newScale(raw Value) (any, error) {
	switch raw.Kind() {
	case Sequence:
		values, err := floats(raw, 1, 2)
		if err != nil {
			return nil, err
		}
		if len(values) == 1 {
			return units.Scale{X: values[0], Y: values[0]}, nil
		}
		return units.Scale{X: values[0], Y: values[1]}, nil
	case Record:
		x, err := recordFloat(raw, "x", 1)
		if err != nil {
			return nil, err
		}
		y, err := recordFloat(raw, "y", 1)
		if err != nil {
			return nil, err
		}
		return units.Scale{X: x, Y: y}, nil
	}
	return units.ParseScale(raw.String())
}

func newColor(raw Value) (any, error) {
	switch raw.Kind() {
	case Sequence:
		values, err := floats(raw, 3, 4)
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		return units.ParseColor(strings.Join(parts, ","))
	case Scalar:
		if f, ok := raw.Scalar().(float64); ok {
			return units.FromARGB(uint32(f)), nil
		}
	}
	return units.ParseColor(raw.String())
}

func newDimensions(raw Value) (any, error) {
	switch raw.Kind() {
	case Sequence:
		values, err := floats(raw, 2, 2)
		if err != nil {
			return nil, err
		}
		return units.Dimensions{Width: values[0], Height: values[1]}, nil
	case Record:
		w, err := recordFloat(raw, "width", 0)
		if err != nil {
			return nil, err
		}
		h, err := recordFloat(raw, "height", 0)
		if err != nil {
			return nil, err
		}
		return units.Dimensions{Width: w, Height: h}, nil
	}
	return units.ParseDimensions(raw.String())
}

// newTypeface accepts a size ("20", 20) or a record {name, size}.
func newTypeface(raw Value) (any, error) {
	if raw.Kind() == Record {
		size, err := recordFloat(raw, "size", units.DefaultFontSize)
		if err != nil {
			return nil, err
		}
		return units.Typeface{Name: raw.Field("name").String(), Size: size}, nil
	}
	if raw.Kind() != Scalar {
		return nil, fmt.Errorf("want a size or {name, size}")
	}
	size, ok := raw.Float()
	if !ok {
		return nil, fmt.Errorf("font size is not a number")
	}
	return units.Typeface{Size: size}, nil
}
