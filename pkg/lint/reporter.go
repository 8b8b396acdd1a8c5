package lint

import (
	"sync"

	"github.com/leapstack-labs/rflint/pkg/core"
)

// Reporter receives findings from a rule. Rules call Report zero or more
// times per Apply; column is 0 when not applicable.
type Reporter interface {
	Report(doc core.Document, message string, line, column int)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(doc core.Document, message string, line, column int)

// Report calls f.
func (f ReporterFunc) Report(doc core.Document, message string, line, column int) {
	f(doc, message, line, column)
}

// Collector records diagnostics. It is safe for concurrent use.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// For returns a Reporter that stamps every finding with the rule's ID and severity.
func (c *Collector) For(ruleID string, severity core.Severity) Reporter {
	return ReporterFunc(func(doc core.Document, message string, line, column int) {
		d := Diagnostic{
			RuleID:   ruleID,
			Severity: severity,
			Message:  message,
			Line:     line,
			Column:   column,
		}
		if doc != nil {
			d.Path = doc.Path()
		}
		c.add(d)
	})
}

func (c *Collector) add(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns a sorted copy of the recorded diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.diagnostics) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	SortDiagnostics(out)
	return out
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diagnostics)
}

// Reset discards all recorded diagnostics.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = nil
}
