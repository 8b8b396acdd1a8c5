package lint

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRule is returned when a rule ID is not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrTooManyArgs is wrapped by a ConfigurationError when a rule receives
	// more arguments than it has options.
	ErrTooManyArgs = errors.New("too many arguments")

	// ErrUnknownOption is wrapped by a ConfigurationError when a named option
	// is not part of the rule's schema.
	ErrUnknownOption = errors.New("unknown option")

	// ErrNotConfigurable is wrapped by a ConfigurationError when arguments are
	// given to a rule that takes none.
	ErrNotConfigurable = errors.New("rule takes no arguments")
)

// ConfigurationError reports a rule argument that could not be converted to
// the type its option requires. It is never swallowed: the rule keeps its
// previous configuration and the error goes back to the caller.
type ConfigurationError struct {
	Rule   string // Rule ID
	Option string // Option name; empty when the error is not tied to one option
	Value  string // Offending raw value
	Err    error  // Underlying cause
}

func (e *ConfigurationError) Error() string {
	if e.Option == "" {
		if e.Value == "" {
			return fmt.Sprintf("rule %s: %v", e.Rule, e.Err)
		}
		return fmt.Sprintf("rule %s: %v (got %q)", e.Rule, e.Err, e.Value)
	}
	return fmt.Sprintf("rule %s: invalid value %q for option %s: %v", e.Rule, e.Value, e.Option, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
