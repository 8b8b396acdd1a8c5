package general

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/lint"
)

func init() {
	lint.Register(func() lint.Rule { return NewLineTooLong() })
}

// DefaultMaxChars is the default maximum line length.
const DefaultMaxChars = 100

var lineTooLongOptions = []lint.OptionSpec{
	{
		Name:        "maxchars",
		Type:        lint.OptionInt,
		Default:     DefaultMaxChars,
		Min:         1,
		Description: "Maximum number of characters per line",
	},
}

// LineTooLong flags physical lines longer than the configured maximum.
// Length is the raw character count; trailing whitespace is not trimmed.
type LineTooLong struct {
	maxChars int
}

// NewLineTooLong creates the rule with the default limit.
func NewLineTooLong() *LineTooLong {
	return &LineTooLong{maxChars: DefaultMaxChars}
}

// ID returns the unique identifier for this rule.
func (r *LineTooLong) ID() string { return "LineTooLong" }

// Kind returns the rule kind.
func (r *LineTooLong) Kind() core.RuleKind { return core.KindGeneral }

// Description returns a human-readable description of what this rule checks.
func (r *LineTooLong) Description() string {
	return fmt.Sprintf("Check that a line is not too long (configurable; default=%d)", DefaultMaxChars)
}

// DefaultSeverity returns the severity of this rule's findings.
func (r *LineTooLong) DefaultSeverity() core.Severity { return core.SeverityWarning }

// Options returns the option schema.
func (r *LineTooLong) Options() []lint.OptionSpec { return lineTooLongOptions }

// MaxChars returns the configured limit.
func (r *LineTooLong) MaxChars() int { return r.maxChars }

// Configure sets maxchars from its string argument.
func (r *LineTooLong) Configure(args ...string) error {
	opts, err := lint.ParseOptions(r.ID(), r.Options(), args)
	if err != nil {
		return err
	}
	r.maxChars = lint.GetIntOption(opts, "maxchars", DefaultMaxChars)
	return nil
}

// Apply reports each line whose length exceeds maxchars, once per line,
// at column maxchars.
func (r *LineTooLong) Apply(doc core.Document, rep lint.Reporter) {
	for i, line := range strings.Split(doc.RawText(), "\n") {
		if utf8.RuneCountInString(line) > r.maxChars {
			message := fmt.Sprintf("Line is too long (exceeds %d characters)", r.maxChars)
			rep.Report(doc, message, i+1, r.maxChars)
		}
	}
}
