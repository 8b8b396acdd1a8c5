package lint

import (
	"github.com/leapstack-labs/rflint/pkg/core"
)

// Rule is the interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "LineTooLong"
	ID() string

	// Kind returns the document substructure the rule primarily scans
	Kind() core.RuleKind

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the severity stamped on every finding of this rule
	DefaultSeverity() core.Severity

	// Options returns the ordered option schema; nil when the rule has none
	Options() []OptionSpec

	// Apply inspects the document and reports findings through r.
	// Apply must not modify the document and must be idempotent.
	Apply(doc core.Document, r Reporter)
}

// Configurable is implemented by rules that accept options.
// Configure receives raw string arguments in the order of the rule's option
// schema. It is called at most once, before the first Apply.
type Configurable interface {
	Configure(args ...string) error
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	info := core.RuleInfo{
		ID:              r.ID(),
		Kind:            r.Kind(),
		Description:     r.Description(),
		DefaultSeverity: r.DefaultSeverity(),
	}
	for _, spec := range r.Options() {
		info.Options = append(info.Options, spec.Info())
	}
	return info
}
