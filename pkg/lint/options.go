package lint

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/rflint/pkg/core"
)

// OptionType is the type an option's raw string argument is converted to.
type OptionType int

// Option types.
const (
	OptionInt OptionType = iota
	OptionString
	OptionBool
)

// String returns the string representation of the option type.
func (t OptionType) String() string {
	switch t {
	case OptionInt:
		return "int"
	case OptionString:
		return "string"
	case OptionBool:
		return "bool"
	default:
		return "unknown"
	}
}

// OptionSpec declares one option of a rule's configuration surface.
type OptionSpec struct {
	Name        string
	Type        OptionType
	Default     any
	Min         int // Lower bound for OptionInt values
	Description string
}

// Info returns the documentation form of the spec.
func (s OptionSpec) Info() core.OptionInfo {
	return core.OptionInfo{
		Name:        s.Name,
		Type:        s.Type.String(),
		Default:     fmt.Sprint(s.Default),
		Description: s.Description,
	}
}

// parse converts a raw argument to the spec's type.
func (s OptionSpec) parse(ruleID, raw string) (any, error) {
	switch s.Type {
	case OptionInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, &ConfigurationError{Rule: ruleID, Option: s.Name, Value: raw, Err: err}
		}
		if n < s.Min {
			return nil, &ConfigurationError{
				Rule:   ruleID,
				Option: s.Name,
				Value:  raw,
				Err:    fmt.Errorf("must be at least %d", s.Min),
			}
		}
		return n, nil
	case OptionBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, &ConfigurationError{Rule: ruleID, Option: s.Name, Value: raw, Err: err}
		}
		return b, nil
	default:
		return raw, nil
	}
}

// ParseOptions converts positional string arguments into typed option values.
// Options without an argument keep their default. The first argument that
// cannot be converted stops parsing with a *ConfigurationError.
func ParseOptions(ruleID string, specs []OptionSpec, args []string) (map[string]any, error) {
	if len(args) > len(specs) {
		if len(specs) == 0 {
			return nil, &ConfigurationError{Rule: ruleID, Value: strings.Join(args, ":"), Err: ErrNotConfigurable}
		}
		return nil, &ConfigurationError{
			Rule:  ruleID,
			Value: strings.Join(args[len(specs):], ":"),
			Err:   fmt.Errorf("%w: expected at most %d", ErrTooManyArgs, len(specs)),
		}
	}

	opts := make(map[string]any, len(specs))
	for i, spec := range specs {
		if i >= len(args) {
			opts[spec.Name] = spec.Default
			continue
		}
		v, err := spec.parse(ruleID, args[i])
		if err != nil {
			return nil, err
		}
		opts[spec.Name] = v
	}
	return opts, nil
}

// ArgsFromOptions converts named option values (as read from a config file)
// into positional arguments in schema order. Options before the last one
// given are filled with their defaults.
func ArgsFromOptions(ruleID string, specs []OptionSpec, values core.RuleOptions) ([]string, error) {
	index := make(map[string]int, len(specs))
	for i, spec := range specs {
		index[spec.Name] = i
	}

	last := -1
	for name := range values {
		i, ok := index[name]
		if !ok {
			return nil, &ConfigurationError{Rule: ruleID, Option: name, Value: fmt.Sprint(values[name]), Err: ErrUnknownOption}
		}
		if i > last {
			last = i
		}
	}

	args := make([]string, 0, last+1)
	for i := 0; i <= last; i++ {
		v, ok := values[specs[i].Name]
		if !ok {
			v = specs[i].Default
		}
		args = append(args, formatOptionValue(v))
	}
	return args, nil
}

// formatOptionValue renders a decoded config value as a raw argument.
// Whole floats come from JSON/YAML decoders and are printed without a fraction.
func formatOptionValue(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		if n == math.Trunc(n) && !math.IsInf(n, 0) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// GetOption extracts a typed option with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetIntOption extracts an int option, handling float64 from JSON.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case int64:
		return int(n)
	default:
		return defaultVal
	}
}
