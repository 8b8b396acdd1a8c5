package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/rflint/internal/cli/config"
	"github.com/leapstack-labs/rflint/internal/testutil"
	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLintCommand(t *testing.T) {
	cmd := NewLintCommand()

	assert.Equal(t, "lint [path...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := map[string]string{
		"ignore":    "i",
		"error":     "e",
		"warning":   "w",
		"configure": "c",
		"severity":  "",
	}
	for name, short := range flags {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, "flag %q should exist", name)
		assert.Equal(t, short, f.Shorthand, "flag %q shorthand", name)
	}
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("empty options", func(t *testing.T) {
		cfg, err := buildLintConfig(nil, &LintOptions{})
		require.NoError(t, err)
		assert.False(t, cfg.IsDisabled("LineTooLong"))
		assert.Empty(t, cfg.RuleArgs)
	})

	t.Run("cli flags", func(t *testing.T) {
		opts := &LintOptions{
			Ignore:    []string{"FileTooLong", " LineTooLong "},
			Error:     []string{"TrailingBlankLines"},
			Warning:   []string{"GlobalVariableNamingCheck"},
			Configure: []string{"LineTooLong:120"},
		}
		cfg, err := buildLintConfig(nil, opts)
		require.NoError(t, err)

		assert.True(t, cfg.IsDisabled("FileTooLong"))
		assert.True(t, cfg.IsDisabled("LineTooLong"))
		assert.Equal(t, core.SeverityError, cfg.GetSeverity("TrailingBlankLines", core.SeverityWarning))
		assert.Equal(t, core.SeverityWarning, cfg.GetSeverity("GlobalVariableNamingCheck", core.SeverityError))
		assert.Equal(t, []string{"120"}, cfg.GetRuleArgs("LineTooLong"))
	})

	t.Run("project config", func(t *testing.T) {
		projectCfg := &config.Config{Lint: &config.LintConfig{
			Disabled: []string{"FileTooLong"},
			Severity: map[string]string{"LineTooLong": "error"},
			Rules: map[string]config.RuleOptions{
				"TrailingBlankLines": {"max_allowed": 0},
			},
		}}
		cfg, err := buildLintConfig(projectCfg, &LintOptions{})
		require.NoError(t, err)

		assert.True(t, cfg.IsDisabled("FileTooLong"))
		assert.Equal(t, core.SeverityError, cfg.GetSeverity("LineTooLong", core.SeverityWarning))
		assert.Equal(t, []string{"0"}, cfg.GetRuleArgs("TrailingBlankLines"))
	})

	t.Run("cli overrides project config", func(t *testing.T) {
		projectCfg := &config.Config{Lint: &config.LintConfig{
			Severity: map[string]string{"LineTooLong": "error"},
			Rules:    map[string]config.RuleOptions{"LineTooLong": {"maxchars": 80}},
		}}
		opts := &LintOptions{
			Warning:   []string{"LineTooLong"},
			Configure: []string{"LineTooLong:150"},
		}
		cfg, err := buildLintConfig(projectCfg, opts)
		require.NoError(t, err)

		assert.Equal(t, core.SeverityWarning, cfg.GetSeverity("LineTooLong", core.SeverityError))
		assert.Equal(t, []string{"150"}, cfg.GetRuleArgs("LineTooLong"))
	})

	t.Run("invalid severity in project config", func(t *testing.T) {
		projectCfg := &config.Config{Lint: &config.LintConfig{
			Severity: map[string]string{"LineTooLong": "fatal"},
		}}
		_, err := buildLintConfig(projectCfg, &LintOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fatal")
	})

	t.Run("unknown rule in project options", func(t *testing.T) {
		projectCfg := &config.Config{Lint: &config.LintConfig{
			Rules: map[string]config.RuleOptions{"NoSuchRule": {"x": 1}},
		}}
		_, err := buildLintConfig(projectCfg, &LintOptions{})
		assert.ErrorIs(t, err, lint.ErrUnknownRule)
	})

	t.Run("unknown option in project options", func(t *testing.T) {
		projectCfg := &config.Config{Lint: &config.LintConfig{
			Rules: map[string]config.RuleOptions{"LineTooLong": {"width": 1}},
		}}
		_, err := buildLintConfig(projectCfg, &LintOptions{})
		assert.ErrorIs(t, err, lint.ErrUnknownOption)
	})

	t.Run("malformed configure flag", func(t *testing.T) {
		_, err := buildLintConfig(nil, &LintOptions{Configure: []string{"LineTooLong"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RULE:arg")
	})
}

func TestParseConfigureArg(t *testing.T) {
	tests := []struct {
		value    string
		wantID   string
		wantArgs []string
		wantErr  bool
	}{
		{value: "LineTooLong:120", wantID: "LineTooLong", wantArgs: []string{"120"}},
		{value: "Rule:a:b", wantID: "Rule", wantArgs: []string{"a", "b"}},
		{value: "Rule:", wantID: "Rule", wantArgs: []string{""}},
		{value: "Rule", wantErr: true},
		{value: ":120", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			id, args, err := parseConfigureArg(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterBySeverity(t *testing.T) {
	results := []lint.FileResult{
		{Path: "a.robot", Diagnostics: []lint.Diagnostic{
			{RuleID: "R1", Severity: core.SeverityError, Line: 1},
			{RuleID: "R2", Severity: core.SeverityWarning, Line: 2},
		}},
		{Path: "b.robot", Diagnostics: []lint.Diagnostic{
			{RuleID: "R2", Severity: core.SeverityWarning, Line: 1},
		}},
		{Path: "c.robot"},
	}

	t.Run("warning shows everything", func(t *testing.T) {
		filtered := filterBySeverity(results, core.SeverityWarning)
		require.Len(t, filtered, 2)
		assert.Len(t, filtered[0].Diagnostics, 2)
	})

	t.Run("error hides warnings", func(t *testing.T) {
		filtered := filterBySeverity(results, core.SeverityError)
		require.Len(t, filtered, 1)
		assert.Equal(t, "a.robot", filtered[0].Path)
		assert.Len(t, filtered[0].Diagnostics, 1)
	})

	assert.Equal(t, 1, countErrors(results))
}

func TestRenderLintResults(t *testing.T) {
	buf := new(bytes.Buffer)
	results := []lint.FileResult{{
		Path: "/nowhere/suite.robot",
		Diagnostics: []lint.Diagnostic{
			{RuleID: "LineTooLong", Severity: core.SeverityWarning, Message: "Line is too long (exceeds 100 characters)", Line: 4, Column: 100},
			{RuleID: "FileTooLong", Severity: core.SeverityError, Message: "File has too many lines (301)", Line: 301},
		},
	}}

	summary := renderLintResults(buf, results, true)

	output := buf.String()
	assert.Contains(t, output, "+ /nowhere/suite.robot")
	assert.Contains(t, output, "WARNING: 4, 100: Line is too long (exceeds 100 characters) (LineTooLong)")
	assert.Contains(t, output, "ERROR: 301, 0: File has too many lines (301) (FileTooLong)")
	assert.Contains(t, output, "1 error(s), 1 warning(s) in 1 file(s)")
	assert.Equal(t, lintSummary{files: 1, errors: 1, warnings: 1}, summary)
}

func TestRenderLintResults_NoIssues(t *testing.T) {
	buf := new(bytes.Buffer)
	renderLintResults(buf, nil, true)
	assert.Equal(t, "No issues found\n", buf.String())
}

// runLintCommand executes the lint command with a config and test logger in context.
func runLintCommand(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	ctx := config.WithConfig(context.Background(), cfg)
	ctx = config.WithLogger(ctx, testutil.NewTestLogger(t))

	cmd := NewLintCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return buf.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLintCommand_Run(t *testing.T) {
	dir := t.TempDir()
	long := strings.Repeat("x", 30)
	writeFile(t, filepath.Join(dir, "suite.robot"), "*** Variables ***\n${lower}    1\n"+long+"\n")
	writeFile(t, filepath.Join(dir, "readme.md"), "# not linted\n")

	t.Run("warnings do not fail", func(t *testing.T) {
		output, err := runLintCommand(t, config.Default(), "--configure", "LineTooLong:20", dir)
		require.NoError(t, err)

		assert.Contains(t, output, "suite.robot")
		assert.Contains(t, output, "WARNING: 2, 0: Violation of lower case character(s) in global variable ${lower} (GlobalVariableNamingCheck)")
		assert.Contains(t, output, "WARNING: 3, 20: Line is too long (exceeds 20 characters) (LineTooLong)")
		assert.NotContains(t, output, "readme.md")
	})

	t.Run("error severity fails", func(t *testing.T) {
		output, err := runLintCommand(t, config.Default(), "-e", "GlobalVariableNamingCheck", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 error(s)")
		assert.Contains(t, output, "ERROR: 2, 0")
	})

	t.Run("severity threshold hides warnings", func(t *testing.T) {
		output, err := runLintCommand(t, config.Default(), "--severity", "error", dir)
		require.NoError(t, err)
		assert.Contains(t, output, "No issues found")
	})

	t.Run("ignored rule", func(t *testing.T) {
		output, err := runLintCommand(t, config.Default(), "-i", "GlobalVariableNamingCheck", dir)
		require.NoError(t, err)
		assert.NotContains(t, output, "GlobalVariableNamingCheck")
	})

	t.Run("custom extensions", func(t *testing.T) {
		cfg := config.Default()
		cfg.Extensions = []string{"md"}
		output, err := runLintCommand(t, cfg, dir)
		require.NoError(t, err)
		assert.Contains(t, output, "No issues found")
		assert.NotContains(t, output, "suite.robot")
	})
}

func TestLintCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "suite.robot"), "*** Test Cases ***\n")

	t.Run("invalid rule argument", func(t *testing.T) {
		_, err := runLintCommand(t, config.Default(), "-c", "LineTooLong:abc", dir)
		var cfgErr *lint.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "LineTooLong", cfgErr.Rule)
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := runLintCommand(t, config.Default(), "-e", "NoSuchRule", dir)
		assert.ErrorIs(t, err, lint.ErrUnknownRule)
	})

	t.Run("invalid severity threshold", func(t *testing.T) {
		_, err := runLintCommand(t, config.Default(), "--severity", "info", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid severity")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := runLintCommand(t, config.Default(), filepath.Join(dir, "missing.robot"))
		assert.Error(t, err)
	})
}
