package lint_test

import (
	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/lint"
	"github.com/leapstack-labs/rflint/pkg/robot"
)

// lineRule reports line 1 of every document. It accepts one int option "line"
// that moves the reported line.
type lineRule struct {
	id       string
	kind     core.RuleKind
	severity core.Severity
	line     int
}

var lineRuleOptions = []lint.OptionSpec{
	{Name: "line", Type: lint.OptionInt, Default: 1, Min: 1, Description: "Reported line"},
}

func newLineRule(id string) lint.Factory {
	return func() lint.Rule {
		return &lineRule{id: id, severity: core.SeverityWarning, line: 1}
	}
}

func (r *lineRule) ID() string                     { return r.id }
func (r *lineRule) Kind() core.RuleKind            { return r.kind }
func (r *lineRule) Description() string            { return "reports " + r.id }
func (r *lineRule) DefaultSeverity() core.Severity { return r.severity }
func (r *lineRule) Options() []lint.OptionSpec     { return lineRuleOptions }

func (r *lineRule) Configure(args ...string) error {
	opts, err := lint.ParseOptions(r.id, r.Options(), args)
	if err != nil {
		return err
	}
	r.line = lint.GetIntOption(opts, "line", 1)
	return nil
}

func (r *lineRule) Apply(doc core.Document, rep lint.Reporter) {
	rep.Report(doc, "found "+r.id, r.line, 0)
}

// staticRule takes no options and reports nothing.
type staticRule struct {
	id   string
	kind core.RuleKind
}

func (r *staticRule) ID() string                         { return r.id }
func (r *staticRule) Kind() core.RuleKind                { return r.kind }
func (r *staticRule) Description() string                { return "static" }
func (r *staticRule) DefaultSeverity() core.Severity     { return core.SeverityError }
func (r *staticRule) Options() []lint.OptionSpec         { return nil }
func (r *staticRule) Apply(core.Document, lint.Reporter) {}

func newDoc(path, text string) core.Document {
	return robot.NewFile(path, text, nil, nil, nil)
}
