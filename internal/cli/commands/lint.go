package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/uuid"
	"github.com/leapstack-labs/rflint/internal/cli/config"
	"github.com/leapstack-labs/rflint/internal/loader"
	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/lint"
	_ "github.com/leapstack-labs/rflint/pkg/lint/rules" // register all rules
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths     []string // Files or directories to lint
	Ignore    []string // Rule IDs to disable
	Error     []string // Rule IDs reported as errors
	Warning   []string // Rule IDs reported as warnings
	Configure []string // Rule arguments in RULE:arg[:arg...] form
	Severity  string   // Minimum severity shown: error, warning
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Run lint rules on robot files",
		Long: `Analyze Robot Framework files for style and convention issues.

Directories are walked recursively for files with a configured extension
(.robot and .resource by default). Rules can be disabled, re-classified and
configured in rflint.yaml or with flags. The command fails when any
error-severity finding is reported.`,
		Example: `  # Lint the current directory
  rflint lint

  # Lint specific files
  rflint lint tests/login.robot resources/common.resource

  # Ignore a rule and treat another as an error
  rflint lint --ignore FileTooLong --error TrailingBlankLines

  # Allow longer lines
  rflint lint --configure LineTooLong:120

  # Only show errors
  rflint lint --severity error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Ignore, "ignore", "i", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVarP(&opts.Error, "error", "e", nil, "Rule IDs to report as errors")
	cmd.Flags().StringSliceVarP(&opts.Warning, "warning", "w", nil, "Rule IDs to report as warnings")
	cmd.Flags().StringArrayVarP(&opts.Configure, "configure", "c", nil, "Configure a rule: RULE:arg[:arg...]")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity shown: error, warning")

	_ = cmd.RegisterFlagCompletionFunc("severity", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "warning"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := config.GetLogger(ctx).With("run_id", uuid.NewString())

	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("invalid severity %q: expected error or warning", opts.Severity)
	}

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return err
	}

	analyzer, err := lint.NewAnalyzer(lintCfg, logger)
	if err != nil {
		return err
	}

	paths, err := absolutePaths(opts.Paths)
	if err != nil {
		return err
	}

	ld := loader.New(osfs.New("/"),
		loader.WithExtensions(cfg.Extensions...),
		loader.WithLogger(logger),
	)
	docs, err := ld.Load(paths...)
	if err != nil {
		return err
	}
	logger.Debug("loaded documents", "count", len(docs))

	results, err := analyzer.AnalyzeAll(ctx, docs)
	if err != nil {
		return err
	}

	summary := renderLintResults(cmd.OutOrStdout(), filterBySeverity(results, threshold), cfg.NoColor)
	logger.Debug("lint finished", "files", len(docs), "errors", summary.errors, "warnings", summary.warnings)

	if n := countErrors(results); n > 0 {
		return fmt.Errorf("lint found %d error(s)", n)
	}
	return nil
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		projectLint := cfg.Lint
		for _, id := range projectLint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range projectLint.Severity {
			s, ok := core.ParseSeverity(sev)
			if !ok {
				return nil, fmt.Errorf("invalid severity %q for rule %s", sev, id)
			}
			lintCfg.SetSeverity(id, s)
		}
		for id, ruleOpts := range projectLint.Rules {
			rule, ok := lint.New(id)
			if !ok {
				return nil, fmt.Errorf("%w: %s", lint.ErrUnknownRule, id)
			}
			args, err := lint.ArgsFromOptions(id, rule.Options(), ruleOpts)
			if err != nil {
				return nil, err
			}
			lintCfg.SetRuleArgs(id, args...)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Ignore {
		lintCfg.Disable(strings.TrimSpace(id))
	}
	for _, id := range opts.Error {
		lintCfg.SetSeverity(strings.TrimSpace(id), core.SeverityError)
	}
	for _, id := range opts.Warning {
		lintCfg.SetSeverity(strings.TrimSpace(id), core.SeverityWarning)
	}
	for _, value := range opts.Configure {
		id, args, err := parseConfigureArg(value)
		if err != nil {
			return nil, err
		}
		lintCfg.SetRuleArgs(id, args...)
	}

	return lintCfg, nil
}

// parseConfigureArg splits "LineTooLong:120" into the rule ID and its arguments.
func parseConfigureArg(value string) (string, []string, error) {
	parts := strings.Split(value, ":")
	id := strings.TrimSpace(parts[0])
	if len(parts) < 2 || id == "" {
		return "", nil, fmt.Errorf("invalid --configure value %q: expected RULE:arg[:arg...]", value)
	}
	return id, parts[1:], nil
}

func absolutePaths(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		abs = append(abs, a)
	}
	return abs, nil
}

// filterBySeverity drops diagnostics less severe than threshold.
// Files left without diagnostics are dropped too.
func filterBySeverity(results []lint.FileResult, threshold core.Severity) []lint.FileResult {
	var filtered []lint.FileResult
	for _, r := range results {
		var diags []lint.Diagnostic
		for _, d := range r.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		if len(diags) > 0 {
			filtered = append(filtered, lint.FileResult{Path: r.Path, Diagnostics: diags})
		}
	}
	return filtered
}

func countErrors(results []lint.FileResult) int {
	n := 0
	for _, r := range results {
		for _, d := range r.Diagnostics {
			if d.Severity == core.SeverityError {
				n++
			}
		}
	}
	return n
}

type lintSummary struct {
	files    int
	errors   int
	warnings int
}

// lintStyles holds the styles used by lint output.
type lintStyles struct {
	path    lipgloss.Style
	error   lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

func newLintStyles(w io.Writer, noColor bool) lintStyles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return lintStyles{
		path:    r.NewStyle().Bold(true),
		error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s lintStyles) severity(sev core.Severity) lipgloss.Style {
	if sev == core.SeverityError {
		return s.error
	}
	return s.warning
}

// renderLintResults prints each file with findings followed by a summary line.
func renderLintResults(w io.Writer, results []lint.FileResult, noColor bool) lintSummary {
	styles := newLintStyles(w, noColor)
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	var summary lintSummary
	for _, r := range results {
		summary.files++
		_, _ = fmt.Fprintln(w, styles.path.Render("+ "+displayPath(r.Path)))
		for _, d := range r.Diagnostics {
			if d.Severity == core.SeverityError {
				summary.errors++
			} else {
				summary.warnings++
			}
			_, _ = fmt.Fprintf(w, "%s: %d, %d: %s %s\n",
				styles.severity(d.Severity).Render(d.Severity.Label()),
				d.Line, d.Column, d.Message,
				styles.muted.Render("("+d.RuleID+")"),
			)
		}
	}

	if summary.files == 0 {
		_, _ = fmt.Fprintln(w, "No issues found")
		return summary
	}
	_, _ = fmt.Fprintf(w, "\n%d error(s), %d warning(s) in %d file(s)\n",
		summary.errors, summary.warnings, summary.files)
	return summary
}

// displayPath shows path relative to the working directory when it is inside it.
func displayPath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
