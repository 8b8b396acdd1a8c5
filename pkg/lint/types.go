package lint

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/rflint/pkg/core"
)

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string
	Severity core.Severity
	Message  string
	Path     string
	Line     int
	Column   int // 0 when the finding has no column
}

// String returns a formatted string representation of the diagnostic.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s (%s)",
		d.Path, d.Line, d.Column, d.Severity.Label(), d.Message, d.RuleID)
}

// FileResult holds the diagnostics produced for a single document.
type FileResult struct {
	Path        string
	Diagnostics []Diagnostic
}

// SortDiagnostics orders diagnostics by path, line, column and rule ID.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Column != b.Column {
			return a.Column < b.Column
		}
		return a.RuleID < b.RuleID
	})
}
