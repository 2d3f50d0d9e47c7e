package ui

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/OpticalFlyer/tableau/model"
	"github.com/OpticalFlyer/tableau/property"
)

// DefaultOptionKind is the model kind built for items that do not name one.
const DefaultOptionKind = "label"

// ErrInvalidAction is returned for an explicit action that is not a bare
// identifier.
var ErrInvalidAction = errors.New("option action is not an identifier")

// ErrEmptyAction is returned when an option without an explicit action has
// a label from which no action name can be derived.
var ErrEmptyAction = errors.New("option label derives an empty action")

// Option is one selectable entry of a menu.
type Option struct {
	// Name is the human readable label.
	Name string
	// Action is the scene action performed when the option is selected.
	Action string
	// Model is the drawable built for the option.
	Model model.Model
}

// NoOption stands in for the current option of an empty Options value.
var NoOption = &Option{}

// Options is an ordered collection of options plus the declared selection.
type Options struct {
	items       []*Option
	selected    int
	hasSelected bool
}

// EmptyOptions returns an Options value with no options and no selection.
func EmptyOptions() *Options {
	return &Options{}
}

// Len returns the number of options.
func (o *Options) Len() int {
	return len(o.items)
}

// At returns the option at i, nil when i is out of range.
func (o *Options) At(i int) *Option {
	if i < 0 || i >= len(o.items) {
		return nil
	}
	return o.items[i]
}

// Items returns the options in order.
func (o *Options) Items() []*Option {
	return o.items
}

// Selected returns the declared selection. It is stored as declared and may
// be out of range.
func (o *Options) Selected() (int, bool) {
	return o.selected, o.hasSelected
}

// Current returns the option at the declared selection, or NoOption.
func (o *Options) Current() *Option {
	if !o.hasSelected {
		return NoOption
	}
	if opt := o.At(o.selected); opt != nil {
		return opt
	}
	return NoOption
}

var (
	whitespaceRuns    = regexp.MustCompile(`\s+`)
	leadingNonLetters = regexp.MustCompile(`^[^a-zA-Z]*`)
	nonActionChars    = regexp.MustCompile(`[^a-zA-Z0-9_ ]`)
	actionName        = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
)

// DeriveAction turns a label into an action name: lower-cased, whitespace
// runs replaced by underscores, leading non-letters and any character
// outside [A-Za-z0-9_ ] removed.
func DeriveAction(label string) string {
	s := strings.ToLower(label)
	s = whitespaceRuns.ReplaceAllString(s, "_")
	s = leadingNonLetters.ReplaceAllString(s, "")
	return nonActionChars.ReplaceAllString(s, "")
}

// BuildOptions converts an options declaration: Absent gives no options, a
// Sequence is a list of labels, a Record carries "items" and "selected".
// A lone Scalar is read as a single label.
func BuildOptions(decl property.Value) (*Options, error) {
	switch decl.Kind() {
	case property.Absent:
		return EmptyOptions(), nil
	case property.Scalar:
		return buildItems(property.List(decl))
	case property.Sequence:
		return buildItems(decl)
	case property.Record:
		opts, err := buildItems(decl.Field("items"))
		if err != nil {
			return nil, err
		}
		if sel := decl.Field("selected"); !sel.IsAbsent() {
			f, ok := sel.Float()
			if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
				return nil, &property.ConfigurationError{Property: "selected", Raw: sel, Err: errors.New("not an index")}
			}
			opts.selected, opts.hasSelected = int(f), true
		}
		return opts, nil
	}
	return nil, fmt.Errorf("cannot build options from a %s value", decl.Kind())
}

func buildItems(items property.Value) (*Options, error) {
	opts := EmptyOptions()
	if items.IsAbsent() {
		return opts, nil
	}
	if items.Kind() != property.Sequence {
		return nil, &property.ConfigurationError{Property: "items", Raw: items, Err: errors.New("want a list")}
	}
	for _, item := range items.Items() {
		opt, err := buildOption(item)
		if err != nil {
			return nil, err
		}
		opts.items = append(opts.items, opt)
	}
	return opts, nil
}

// buildOption accepts a label, a {model, text, action} record or a single
// {"Label" = "action"} pair.
func buildOption(item property.Value) (*Option, error) {
	fields := property.Fields{}
	switch item.Kind() {
	case property.Scalar:
		fields["text"] = item
	case property.Record:
		src := item.Fields()
		_, hasText := src["text"]
		_, hasModel := src["model"]
		if !hasText && !hasModel && len(src) == 1 {
			for name, action := range src {
				fields["text"] = property.Text(name)
				fields["action"] = action
			}
			break
		}
		for k, v := range src {
			fields[k] = v
		}
	default:
		return nil, &property.ConfigurationError{Property: "items", Raw: item, Err: errors.New("want a label or a record")}
	}

	name := fields["text"].String()
	action := fields["action"].String()
	if action == "" {
		action = DeriveAction(name)
		if action == "" {
			return nil, &property.ConfigurationError{Property: "action", Raw: fields["text"], Err: ErrEmptyAction}
		}
	} else if !actionName.MatchString(action) {
		return nil, &property.ConfigurationError{Property: "action", Raw: fields["action"], Err: ErrInvalidAction}
	}
	fields["action"] = property.Text(action)

	kind := fields["model"].String()
	if kind == "" {
		kind = DefaultOptionKind
	}
	delete(fields, "model")
	m, err := model.Create(kind, fields, nil)
	if err != nil {
		return nil, err
	}
	return &Option{Name: name, Action: action, Model: m}, nil
}
