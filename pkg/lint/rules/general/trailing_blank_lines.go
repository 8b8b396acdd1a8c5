package general

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/lint"
)

func init() {
	lint.Register(func() lint.Rule { return NewTrailingBlankLines() })
}

// DefaultMaxTrailingBlankLines is the default number of tolerated trailing blank lines.
const DefaultMaxTrailingBlankLines = 2

var trailingBlankLinesOptions = []lint.OptionSpec{
	{
		Name:        "max_allowed",
		Type:        lint.OptionInt,
		Default:     DefaultMaxTrailingBlankLines,
		Min:         0,
		Description: "Maximum number of blank lines at the end of the file",
	},
}

// TrailingBlankLines flags files that end with too many blank lines.
type TrailingBlankLines struct {
	maxAllowed int
}

// NewTrailingBlankLines creates the rule with the default allowance.
func NewTrailingBlankLines() *TrailingBlankLines {
	return &TrailingBlankLines{maxAllowed: DefaultMaxTrailingBlankLines}
}

// ID returns the unique identifier for this rule.
func (r *TrailingBlankLines) ID() string { return "TrailingBlankLines" }

// Kind returns the rule kind.
func (r *TrailingBlankLines) Kind() core.RuleKind { return core.KindGeneral }

// Description returns a human-readable description of what this rule checks.
func (r *TrailingBlankLines) Description() string {
	return "Check for multiple blank lines at the end of a file (configurable; default=2)"
}

// DefaultSeverity returns the severity of this rule's findings.
func (r *TrailingBlankLines) DefaultSeverity() core.Severity { return core.SeverityWarning }

// Options returns the option schema.
func (r *TrailingBlankLines) Options() []lint.OptionSpec { return trailingBlankLinesOptions }

// MaxAllowed returns the configured allowance.
func (r *TrailingBlankLines) MaxAllowed() int { return r.maxAllowed }

// Configure sets max_allowed from its string argument.
func (r *TrailingBlankLines) Configure(args ...string) error {
	opts, err := lint.ParseOptions(r.ID(), r.Options(), args)
	if err != nil {
		return err
	}
	r.maxAllowed = lint.GetIntOption(opts, "max_allowed", DefaultMaxTrailingBlankLines)
	return nil
}

// Apply counts the newlines in the trailing whitespace run of the file and
// reports once when the count exceeds max_allowed. The reported line is the
// first blank line past the allowance.
func (r *TrailingBlankLines) Apply(doc core.Document, rep lint.Reporter) {
	text := doc.RawText()
	trailing := text[len(strings.TrimRightFunc(text, unicode.IsSpace)):]

	count := strings.Count(trailing, "\n")
	if count <= r.maxAllowed {
		return
	}

	// count <= numLines-1, so the line is always within 1..numLines.
	line := lineCount(text) - count + r.maxAllowed
	rep.Report(doc, "Too many trailing blank lines", line, 0)
}
