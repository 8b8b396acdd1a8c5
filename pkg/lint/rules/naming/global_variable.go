package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/lint"
)

func init() {
	lint.Register(func() lint.Rule { return NewGlobalVariableNamingCheck() })
}

const continuationMarker = "..."

// promotionCalls are the keywords that raise a variable to global, suite or
// test scope, in lower case.
var promotionCalls = map[string]bool{
	"set global variable": true,
	"set suite variable":  true,
	"set test variable":   true,
}

// GlobalVariableNamingCheck verifies that global variables are written in
// capital letters. A variable is global when it is declared in the Variables
// section or promoted with Set Global/Suite/Test Variable.
type GlobalVariableNamingCheck struct{}

// NewGlobalVariableNamingCheck creates the rule.
func NewGlobalVariableNamingCheck() *GlobalVariableNamingCheck {
	return &GlobalVariableNamingCheck{}
}

// ID returns the unique identifier for this rule.
func (r *GlobalVariableNamingCheck) ID() string { return "GlobalVariableNamingCheck" }

// Kind returns the rule kind.
func (r *GlobalVariableNamingCheck) Kind() core.RuleKind { return core.KindGeneral }

// Description returns a human-readable description of what this rule checks.
func (r *GlobalVariableNamingCheck) Description() string {
	return "Verify that all global, suite and test level variables are in capital letters"
}

// DefaultSeverity returns the severity of this rule's findings.
func (r *GlobalVariableNamingCheck) DefaultSeverity() core.Severity { return core.SeverityWarning }

// Options returns nil; the rule has no options.
func (r *GlobalVariableNamingCheck) Options() []lint.OptionSpec { return nil }

// Apply checks the Variables section, then every test case and keyword body.
func (r *GlobalVariableNamingCheck) Apply(doc core.Document, rep lint.Reporter) {
	for _, row := range doc.VariableRows() {
		if len(row.Cells) == 0 {
			continue
		}
		name := row.Cells[0]
		if skipDeclaredCell(name) || isUpper(name) {
			continue
		}
		rep.Report(doc, violationMessage(name), row.LineNumber, 0)
	}

	for _, body := range doc.TestCaseBodies() {
		r.checkPromotions(doc, body, rep)
	}
	for _, body := range doc.KeywordBodies() {
		r.checkPromotions(doc, body, rep)
	}
}

// checkPromotions scans the cells of one body in order. The scanner is local
// to the body so state never leaks between test cases or keywords.
func (r *GlobalVariableNamingCheck) checkPromotions(doc core.Document, body core.Body, rep lint.Reporter) {
	var s promotionScanner
	for _, row := range body.Rows {
		for _, cell := range row.Cells {
			name, ok := s.next(cell)
			if ok && !isUpper(name) {
				rep.Report(doc, violationMessage(name), row.LineNumber, 0)
			}
		}
	}
}

// scanState is the state of a promotionScanner.
type scanState int

const (
	stateIdle scanState = iota
	stateExpectingName
)

// promotionScanner finds the variable name operand of promotion calls.
// Empty cells and continuation markers are skipped, so the name may sit on a
// later row than the call.
type promotionScanner struct {
	state scanState
}

// next feeds one cell to the scanner. It returns the cell and true when the
// cell is the name operand of the preceding promotion call.
func (s *promotionScanner) next(cell string) (string, bool) {
	if cell == "" || cell == continuationMarker {
		return "", false
	}
	if promotionCalls[strings.ToLower(cell)] {
		s.state = stateExpectingName
		return "", false
	}
	if s.state == stateExpectingName {
		s.state = stateIdle
		return cell, true
	}
	return "", false
}

// skipDeclaredCell reports whether a Variables section first cell is not a
// declaration: empty, a continuation marker or a comment.
// Only the raw empty string counts as empty; a whitespace-only name is reported.
func skipDeclaredCell(cell string) bool {
	trimmed := strings.TrimSpace(cell)
	return cell == "" || trimmed == continuationMarker || strings.HasPrefix(trimmed, "#")
}

// isUpper reports whether s has at least one cased letter and no lower case
// or title case letters.
func isUpper(s string) bool {
	cased := false
	for _, c := range s {
		switch {
		case unicode.IsLower(c), unicode.IsTitle(c):
			return false
		case unicode.IsUpper(c):
			cased = true
		}
	}
	return cased
}

func violationMessage(name string) string {
	return fmt.Sprintf("Violation of lower case character(s) in global variable %s", name)
}
