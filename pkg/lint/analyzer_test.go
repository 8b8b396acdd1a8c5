package lint_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/leapstack-labs/rflint/internal/testutil"
	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *lint.Registry {
	reg := lint.NewRegistry()
	reg.Register(newLineRule("A"))
	reg.Register(newLineRule("B"))
	reg.Register(func() lint.Rule { return &staticRule{id: "S"} })
	return reg
}

func newTestAnalyzer(t *testing.T, cfg *lint.Config) *lint.Analyzer {
	t.Helper()
	a, err := lint.NewAnalyzerWithRegistry(cfg, testutil.NewTestLogger(t), testRegistry())
	require.NoError(t, err)
	return a
}

func TestAnalyzer_AllRulesEnabledByDefault(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	ids := make([]string, 0, len(a.Rules()))
	for _, r := range a.Rules() {
		ids = append(ids, r.ID())
	}
	assert.Equal(t, []string{"A", "B", "S"}, ids)

	diags := a.Analyze(newDoc("x.robot", "text"))
	require.Len(t, diags, 2)
	assert.Equal(t, "A", diags[0].RuleID)
	assert.Equal(t, "B", diags[1].RuleID)
	assert.Equal(t, "x.robot", diags[0].Path)
}

func TestAnalyzer_DisabledRule(t *testing.T) {
	a := newTestAnalyzer(t, lint.NewConfig().Disable("A"))

	diags := a.Analyze(newDoc("x.robot", ""))
	require.Len(t, diags, 1)
	assert.Equal(t, "B", diags[0].RuleID)
}

func TestAnalyzer_UnknownDisabledRuleIsIgnored(t *testing.T) {
	logger, rec := testutil.NewRecordingLogger()
	a, err := lint.NewAnalyzerWithRegistry(lint.NewConfig().Disable("Nope").Disable("B"), logger, testRegistry())
	require.NoError(t, err)
	assert.Len(t, a.Rules(), 2)

	assert.Equal(t, []string{"ignoring unknown rule in disabled list"}, rec.Messages(slog.LevelWarn))

	var enabled, disabled []string
	for _, r := range rec.Records() {
		switch r.Message {
		case "rule enabled":
			enabled = append(enabled, r.Attrs["rule"])
		case "rule disabled":
			disabled = append(disabled, r.Attrs["rule"])
		}
	}
	assert.Equal(t, []string{"A", "S"}, enabled)
	assert.Equal(t, []string{"B"}, disabled)
}

func TestAnalyzer_SeverityOverride(t *testing.T) {
	a := newTestAnalyzer(t, lint.NewConfig().SetSeverity("A", core.SeverityError))

	diags := a.Analyze(newDoc("x.robot", ""))
	require.Len(t, diags, 2)
	assert.Equal(t, core.SeverityError, diags[0].Severity)
	assert.Equal(t, core.SeverityWarning, diags[1].Severity)
}

func TestAnalyzer_RuleArgs(t *testing.T) {
	a := newTestAnalyzer(t, lint.NewConfig().SetRuleArgs("B", "7"))

	diags := a.Analyze(newDoc("x.robot", ""))
	require.Len(t, diags, 2)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 7, diags[1].Line)
}

func TestAnalyzer_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *lint.Config
		wantIs  error
		wantCfg bool
	}{
		{name: "unknown rule args", cfg: lint.NewConfig().SetRuleArgs("Nope", "1"), wantIs: lint.ErrUnknownRule},
		{name: "unknown severity override", cfg: lint.NewConfig().SetSeverity("Nope", core.SeverityError), wantIs: lint.ErrUnknownRule},
		{name: "bad argument", cfg: lint.NewConfig().SetRuleArgs("A", "abc"), wantCfg: true},
		{name: "below minimum", cfg: lint.NewConfig().SetRuleArgs("A", "0"), wantCfg: true},
		{name: "too many arguments", cfg: lint.NewConfig().SetRuleArgs("A", "1", "2"), wantIs: lint.ErrTooManyArgs},
		{name: "args for rule without options", cfg: lint.NewConfig().SetRuleArgs("S", "1"), wantIs: lint.ErrNotConfigurable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := lint.NewAnalyzerWithRegistry(tt.cfg, testutil.NewTestLogger(t), testRegistry())
			require.Error(t, err)
			assert.Nil(t, a)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantCfg {
				var cfgErr *lint.ConfigurationError
				assert.ErrorAs(t, err, &cfgErr)
			}
		})
	}
}

func TestAnalyzer_DisabledRuleArgsAreStillValidated(t *testing.T) {
	cfg := lint.NewConfig().Disable("A").SetRuleArgs("Nope", "1")
	_, err := lint.NewAnalyzerWithRegistry(cfg, nil, testRegistry())
	assert.ErrorIs(t, err, lint.ErrUnknownRule)
}

func TestAnalyzer_NilDocument(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	assert.Nil(t, a.Analyze(nil))
}

func TestAnalyzer_AnalyzeAllMatchesAnalyze(t *testing.T) {
	a := newTestAnalyzer(t, lint.NewConfig().SetRuleArgs("B", "2"))

	docs := make([]core.Document, 0, 20)
	for i := 0; i < 20; i++ {
		docs = append(docs, newDoc(fmt.Sprintf("suite_%02d.robot", i), ""))
	}

	results, err := a.AnalyzeAll(context.Background(), docs)
	require.NoError(t, err)
	require.Len(t, results, len(docs))

	for i, doc := range docs {
		assert.Equal(t, doc.Path(), results[i].Path, "results keep input order")
		assert.Equal(t, a.Analyze(doc), results[i].Diagnostics)
	}
}

func TestAnalyzer_AnalyzeAllCanceled(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.AnalyzeAll(ctx, []core.Document{newDoc("a", ""), newDoc("b", "")})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "analysis interrupted")
}

func TestAnalyzer_AnalyzeAllEmpty(t *testing.T) {
	a := newTestAnalyzer(t, nil)
	results, err := a.AnalyzeAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
