package model

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyAttached is returned when a context is attached twice.
	ErrAlreadyAttached = errors.New("model: context already attached")
	// ErrUnknownKind is returned by Create for an unregistered model kind.
	ErrUnknownKind = errors.New("model: unknown kind")
)

// DispatchError reports a scene action with no handler.
type DispatchError struct {
	Action string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("no scene action %q", e.Action)
}
