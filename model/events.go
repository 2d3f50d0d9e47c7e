package model

import "fmt"

// EventKind is the phase of an input signal.
type EventKind int

const (
	ButtonDown EventKind = iota
	ButtonUp
	// ButtonHeld fires every update while the signal stays pressed.
	ButtonHeld
)

func (k EventKind) String() string {
	switch k {
	case ButtonDown:
		return "down"
	case ButtonUp:
		return "up"
	case ButtonHeld:
		return "held"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Signal identifies one physical input: a key, a gamepad button or a mouse
// button.
type Signal int

const (
	KeyLeft Signal = iota + 1
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyReturn
	KeyEscape
	KeySpace
	GamepadLeft
	GamepadRight
	GamepadUp
	GamepadDown
	GamepadButton0
	GamepadButton1
	MouseLeft
)

var signalNames = map[Signal]string{
	KeyLeft:        "KeyLeft",
	KeyRight:       "KeyRight",
	KeyUp:          "KeyUp",
	KeyDown:        "KeyDown",
	KeyEnter:       "KeyEnter",
	KeyReturn:      "KeyReturn",
	KeyEscape:      "KeyEscape",
	KeySpace:       "KeySpace",
	GamepadLeft:    "GamepadLeft",
	GamepadRight:   "GamepadRight",
	GamepadUp:      "GamepadUp",
	GamepadDown:    "GamepadDown",
	GamepadButton0: "GamepadButton0",
	GamepadButton1: "GamepadButton1",
	MouseLeft:      "MouseLeft",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Signal(%d)", int(s))
}

type binding[T any] struct {
	kind    EventKind
	signals []Signal
	fn      func(T) error
}

// Bindings is the event table of one model type. It is declared once per
// type and resolved against the instance passed to Dispatch.
type Bindings[T any] struct {
	entries []binding[T]
}

// On binds fn to kind for each of the signals.
func (b *Bindings[T]) On(kind EventKind, fn func(T) error, signals ...Signal) *Bindings[T] {
	b.entries = append(b.entries, binding[T]{kind: kind, signals: signals, fn: fn})
	return b
}

// Dispatch runs every behavior bound to (kind, sig) against target in
// registration order. The first error stops dispatch and is returned.
func (b *Bindings[T]) Dispatch(target T, kind EventKind, sig Signal) (bool, error) {
	handled := false
	for _, e := range b.entries {
		if e.kind != kind || !contains(e.signals, sig) {
			continue
		}
		handled = true
		if err := e.fn(target); err != nil {
			return true, err
		}
	}
	return handled, nil
}

func contains(signals []Signal, sig Signal) bool {
	for _, s := range signals {
		if s == sig {
			return true
		}
	}
	return false
}
