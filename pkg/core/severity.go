package core

import "strings"

// =============================================================================
// Severity
// =============================================================================

// Severity indicates the importance of a lint diagnostic.
// Severity is owned by the rule that reports, not by individual diagnostics.
type Severity int

// Severity levels for diagnostics.
const (
	// SeverityError indicates a violation that should fail the run.
	SeverityError Severity = iota
	// SeverityWarning indicates a convention violation that should be reviewed.
	SeverityWarning
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Label returns the upper-case form used in lint output, e.g. "ERROR".
func (s Severity) Label() string {
	return strings.ToUpper(s.String())
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityWarning and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "e":
		return SeverityError, true
	case "warning", "warn", "w":
		return SeverityWarning, true
	default:
		return SeverityWarning, false
	}
}

// =============================================================================
// RuleKind
// =============================================================================

// RuleKind names the document substructure a rule primarily scans.
// The kind is organizational; every rule is applied to the whole document.
type RuleKind int

// Rule kinds.
const (
	// KindGeneral rules look at the file as a whole.
	KindGeneral RuleKind = iota
	// KindTestCase rules look at test case bodies.
	KindTestCase
	// KindKeyword rules look at keyword bodies.
	KindKeyword
)

// String returns the string representation of the kind.
func (k RuleKind) String() string {
	switch k {
	case KindGeneral:
		return "general"
	case KindTestCase:
		return "testcase"
	case KindKeyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// =============================================================================
// RuleInfo
// =============================================================================

// RuleInfo provides metadata about a lint rule for documentation/tooling.
// This is a DTO (Data Transfer Object) - it carries data without behavior.
type RuleInfo struct {
	ID              string       `json:"id"`
	Kind            RuleKind     `json:"kind"`
	Description     string       `json:"description"`
	DefaultSeverity Severity     `json:"default_severity"`
	Options         []OptionInfo `json:"options,omitempty"`
}

// OptionInfo describes one configuration option of a rule.
type OptionInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Default     string `json:"default"`
	Description string `json:"description,omitempty"`
}
