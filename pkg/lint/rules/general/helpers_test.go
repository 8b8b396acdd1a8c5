package general_test

import (
	"github.com/leapstack-labs/rflint/pkg/lint"
	"github.com/leapstack-labs/rflint/pkg/robot"
)

// apply runs rule over text and returns its sorted diagnostics.
func apply(rule lint.Rule, text string) []lint.Diagnostic {
	c := lint.NewCollector()
	rule.Apply(robot.NewFile("test.robot", text, nil, nil, nil), c.For(rule.ID(), rule.DefaultSeverity()))
	return c.Diagnostics()
}

// lines extracts the reported line numbers.
func lines(diags []lint.Diagnostic) []int {
	out := make([]int, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.Line)
	}
	return out
}
