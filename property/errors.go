package property

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a raw declaration value that could not be
// coerced into its property's declared type.
type ConfigurationError struct {
	Property string
	Raw      Value
	Err      error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("property %q: cannot use %s value %q: %v", e.Property, e.Raw.Kind(), e.Raw.String(), e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configurationError(name string, raw Value, err error) error {
	var ce *ConfigurationError
	if errors.As(err, &ce) {
		return err
	}
	return &ConfigurationError{Property: name, Raw: raw, Err: err}
}
