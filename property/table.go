package property

import "fmt"

// Converter turns one value into another. Write converters receive the raw
// declaration value, read converters the stored one.
type Converter func(v Value) (Value, error)

type rule struct {
	kind    Kind
	convert Converter
}

// Descriptor holds the default, declared type and coercion rules of one
// named attribute. It is shared by every instance of a model type.
type Descriptor struct {
	Name string
	// Type is the declared type tag, empty when the property is untyped.
	Type string

	def    func() Value
	reads  []rule
	writes []rule
}

// Default produces the declared default. Producers run on every call.
func (d *Descriptor) Default() Value {
	if d.def == nil {
		return None()
	}
	return d.def()
}

// OnRead appends a read rule for stored values of the given kind.
func (d *Descriptor) OnRead(kind Kind, fn Converter) *Descriptor {
	d.reads = append(d.reads, rule{kind: kind, convert: fn})
	return d
}

// OnWrite appends a write rule for raw values of the given kind.
func (d *Descriptor) OnWrite(kind Kind, fn Converter) *Descriptor {
	d.writes = append(d.writes, rule{kind: kind, convert: fn})
	return d
}

func match(rules []rule, kind Kind) Converter {
	for _, r := range rules {
		if r.kind == kind {
			return r.convert
		}
	}
	return nil
}

// Table is the dispatch table of a model type: its descriptors in
// registration order.
type Table struct {
	descriptors map[string]*Descriptor
	order       []*Descriptor
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{descriptors: make(map[string]*Descriptor)}
}

// Register creates the descriptor for name. def may be a Value, a
// func() Value producer, or plain data accepted by From. typ is a declared
// type tag (see RegisterType) or empty.
func (t *Table) Register(name string, def any, typ string) *Descriptor {
	if _, exists := t.descriptors[name]; exists {
		panic(fmt.Sprintf("property: %q registered twice", name))
	}
	if typ != "" && lookupType(typ) == nil {
		panic(fmt.Sprintf("property: %q has unknown type %q", name, typ))
	}
	d := &Descriptor{Name: name, Type: typ}
	switch v := def.(type) {
	case func() Value:
		d.def = v
	case nil:
	default:
		value := From(v)
		d.def = func() Value { return value }
	}
	t.descriptors[name] = d
	t.order = append(t.order, d)
	return d
}

// Extend copies every descriptor of parent into a new table so a model type
// can add to an inherited property set.
func (t *Table) Extend() *Table {
	child := NewTable()
	for _, d := range t.order {
		copied := *d
		copied.reads = append([]rule(nil), d.reads...)
		copied.writes = append([]rule(nil), d.writes...)
		child.descriptors[d.Name] = &copied
		child.order = append(child.order, &copied)
	}
	return child
}

// Lookup returns the descriptor for name, nil if none is registered.
func (t *Table) Lookup(name string) *Descriptor {
	return t.descriptors[name]
}

// Descriptors returns the descriptors in registration order.
func (t *Table) Descriptors() []*Descriptor {
	return t.order
}

// Read converts a stored value with the first read rule matching its kind.
// Without a matching rule, or for an unregistered name, the stored value is
// returned unchanged.
func (t *Table) Read(name string, stored Value) (Value, error) {
	d := t.descriptors[name]
	if d == nil {
		return stored, nil
	}
	convert := match(d.reads, stored.Kind())
	if convert == nil {
		return stored, nil
	}
	v, err := convert(stored)
	if err != nil {
		return None(), configurationError(name, stored, err)
	}
	return v, nil
}

// Write converts a raw value into its stored form. The first write rule
// matching the raw kind wins. Otherwise a typed property constructs its
// declared type from Scalar, Sequence and Record input; Native input is
// taken as already coerced. Anything else passes through unchanged.
func (t *Table) Write(name string, raw Value) (Value, error) {
	d := t.descriptors[name]
	if d == nil {
		return raw, nil
	}
	if convert := match(d.writes, raw.Kind()); convert != nil {
		v, err := convert(raw)
		if err != nil {
			return None(), configurationError(name, raw, err)
		}
		return v, nil
	}
	if d.Type == "" {
		return raw, nil
	}
	switch raw.Kind() {
	case Scalar, Sequence, Record:
		native, err := lookupType(d.Type)(raw)
		if err != nil {
			return None(), configurationError(name, raw, err)
		}
		return Wrap(native), nil
	}
	return raw, nil
}
