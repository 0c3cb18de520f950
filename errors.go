package formkit

import (
	"errors"
	"fmt"
)

// ConfigError describes an invalid field configuration detected while
// dispatching an event. It is raised as a panic: a bad configuration is a
// programming error the caller's framework should surface during
// development, not a runtime condition to recover from.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("formkit: invalid configuration for field %q: %s", e.Field, e.Reason)
}

// IsConfigError reports whether err (or a value recovered from the engine's
// configuration panic) is a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}
