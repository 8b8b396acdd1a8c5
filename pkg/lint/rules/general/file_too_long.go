package general

import (
	"fmt"

	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/lint"
)

func init() {
	lint.Register(func() lint.Rule { return NewFileTooLong() })
}

// DefaultMaxLines is the default maximum number of lines in a file.
const DefaultMaxLines = 300

var fileTooLongOptions = []lint.OptionSpec{
	{
		Name:        "max_allowed",
		Type:        lint.OptionInt,
		Default:     DefaultMaxLines,
		Min:         0,
		Description: "Maximum number of lines in the file",
	},
}

// FileTooLong flags files with more lines than the configured maximum.
type FileTooLong struct {
	maxAllowed int
}

// NewFileTooLong creates the rule with the default limit.
func NewFileTooLong() *FileTooLong {
	return &FileTooLong{maxAllowed: DefaultMaxLines}
}

// ID returns the unique identifier for this rule.
func (r *FileTooLong) ID() string { return "FileTooLong" }

// Kind returns the rule kind.
func (r *FileTooLong) Kind() core.RuleKind { return core.KindGeneral }

// Description returns a human-readable description of what this rule checks.
func (r *FileTooLong) Description() string {
	return fmt.Sprintf("Verify the file has fewer lines than a given threshold (configurable; default=%d)", DefaultMaxLines)
}

// DefaultSeverity returns the severity of this rule's findings.
func (r *FileTooLong) DefaultSeverity() core.Severity { return core.SeverityWarning }

// Options returns the option schema.
func (r *FileTooLong) Options() []lint.OptionSpec { return fileTooLongOptions }

// MaxAllowed returns the configured limit.
func (r *FileTooLong) MaxAllowed() int { return r.maxAllowed }

// Configure sets max_allowed from its string argument.
func (r *FileTooLong) Configure(args ...string) error {
	opts, err := lint.ParseOptions(r.ID(), r.Options(), args)
	if err != nil {
		return err
	}
	r.maxAllowed = lint.GetIntOption(opts, "max_allowed", DefaultMaxLines)
	return nil
}

// Apply reports once, at the first line past the limit, when the file is too long.
func (r *FileTooLong) Apply(doc core.Document, rep lint.Reporter) {
	numLines := lineCount(doc.RawText())
	if numLines <= r.maxAllowed {
		return
	}
	rep.Report(doc, fmt.Sprintf("File has too many lines (%d)", numLines), r.maxAllowed+1, 0)
}
