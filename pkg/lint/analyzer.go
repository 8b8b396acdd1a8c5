package lint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"

	"github.com/leapstack-labs/rflint/pkg/core"
	"golang.org/x/sync/errgroup"
)

// activeRule is a configured rule and the severity it reports with.
type activeRule struct {
	rule     Rule
	severity core.Severity
}

// Analyzer runs configured lint rules against documents.
// Rules are instantiated and configured once, when the analyzer is built, so
// an Analyzer may analyze many documents concurrently.
type Analyzer struct {
	config *Config
	logger *slog.Logger
	rules  []activeRule
}

// NewAnalyzer creates an analyzer over the globally registered rules.
func NewAnalyzer(config *Config, logger *slog.Logger) (*Analyzer, error) {
	return NewAnalyzerWithRegistry(config, logger, DefaultRegistry())
}

// NewAnalyzerWithRegistry creates an analyzer over the rules of reg.
// It fails when the config references an unknown rule or when a rule rejects
// its arguments; configuration errors are returned unchanged.
func NewAnalyzerWithRegistry(config *Config, logger *slog.Logger, reg *Registry) (*Analyzer, error) {
	if config == nil {
		config = NewConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if reg == nil {
		reg = DefaultRegistry()
	}

	if err := validateRuleIDs(config, reg); err != nil {
		return nil, err
	}
	for id := range config.DisabledRules {
		if !reg.Has(id) {
			logger.Warn("ignoring unknown rule in disabled list", "rule", id)
		}
	}

	a := &Analyzer{config: config, logger: logger}
	for _, id := range reg.IDs() {
		if config.IsDisabled(id) {
			logger.Debug("rule disabled", "rule", id)
			continue
		}

		rule, ok := reg.New(id)
		if !ok {
			continue
		}
		if err := configureRule(rule, config.GetRuleArgs(id)); err != nil {
			return nil, err
		}

		severity := config.GetSeverity(id, rule.DefaultSeverity())
		a.rules = append(a.rules, activeRule{rule: rule, severity: severity})
		logger.Debug("rule enabled", "rule", id, "kind", rule.Kind().String(), "severity", severity.String())
	}

	return a, nil
}

// validateRuleIDs checks that argument and severity entries name real rules.
func validateRuleIDs(config *Config, reg *Registry) error {
	var ids []string
	for id := range config.RuleArgs {
		ids = append(ids, id)
	}
	for id := range config.SeverityOverrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if !reg.Has(id) {
			return fmt.Errorf("%w: %s", ErrUnknownRule, id)
		}
	}
	return nil
}

// configureRule passes args to the rule. Rules without options accept no args.
func configureRule(rule Rule, args []string) error {
	if len(args) == 0 {
		return nil
	}
	c, ok := rule.(Configurable)
	if !ok {
		return &ConfigurationError{Rule: rule.ID(), Err: ErrNotConfigurable}
	}
	return c.Configure(args...)
}

// Rules returns the enabled, configured rules in ID order.
func (a *Analyzer) Rules() []Rule {
	rules := make([]Rule, len(a.rules))
	for i, r := range a.rules {
		rules[i] = r.rule
	}
	return rules
}

// Analyze runs every enabled rule once against the document and returns the
// sorted diagnostics.
func (a *Analyzer) Analyze(doc core.Document) []Diagnostic {
	if doc == nil {
		return nil
	}

	collector := NewCollector()
	for _, r := range a.rules {
		r.rule.Apply(doc, collector.For(r.rule.ID(), r.severity))
	}

	diags := collector.Diagnostics()
	a.logger.Debug("analyzed document", "path", doc.Path(), "rules", len(a.rules), "diagnostics", len(diags))
	return diags
}

// AnalyzeAll analyzes documents in parallel and returns one result per
// document in input order. It stops early when ctx is canceled.
func (a *Analyzer) AnalyzeAll(ctx context.Context, docs []core.Document) ([]FileResult, error) {
	results := make([]FileResult, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if doc == nil {
				return nil
			}
			results[i] = FileResult{
				Path:        doc.Path(),
				Diagnostics: a.Analyze(doc),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("analysis interrupted: %w", err)
		}
		return nil, err
	}
	return results, nil
}
