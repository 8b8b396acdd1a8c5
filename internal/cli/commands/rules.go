package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/lint"
	_ "github.com/leapstack-labs/rflint/pkg/lint/rules" // register all rules
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Kind string // Filter by kind: general, testcase, keyword
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all registered lint rules with their kind, default severity and options.

Pass a rule ID to show the rule's option schema. Options are given positionally
with --configure RULE:arg[:arg...] or by name under lint.rules in rflint.yaml.`,
		Example: `  # List all rules
  rflint rules

  # Show details for a specific rule
  rflint rules LineTooLong

  # List keyword rules only
  rflint rules --kind keyword`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd.OutOrStdout(), args[0])
			}
			return listRules(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "Filter by kind: general, testcase, keyword")

	return cmd
}

func listRules(w io.Writer, opts *RulesOptions) error {
	rules := lint.AllRules()

	if opts.Kind != "" {
		var filtered []core.RuleInfo
		for _, r := range rules {
			if r.Kind.String() == strings.ToLower(opts.Kind) {
				filtered = append(filtered, r)
			}
		}
		rules = filtered
	}

	// Sort by kind, then ID
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Kind != rules[j].Kind {
			return rules[i].Kind < rules[j].Kind
		}
		return rules[i].ID < rules[j].ID
	})

	if len(rules) == 0 {
		_, _ = fmt.Fprintln(w, "No rules found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Kind", "Severity", "Options", "Description"})
	for _, r := range rules {
		t.AppendRow(table.Row{r.ID, kindTitle(r.Kind), r.DefaultSeverity.String(), optionSummary(r.Options), r.Description})
	}
	t.Render()

	_, _ = fmt.Fprintf(w, "\n%d rule(s). Use 'rflint rules <rule-id>' for details\n", len(rules))
	return nil
}

func showRule(w io.Writer, ruleID string) error {
	rule, ok := lint.GetRuleInfoByID(ruleID)
	if !ok {
		return fmt.Errorf("%w: %s", lint.ErrUnknownRule, ruleID)
	}

	_, _ = fmt.Fprintf(w, "%s\n\n", rule.ID)
	_, _ = fmt.Fprintf(w, "  %s\n\n", rule.Description)
	_, _ = fmt.Fprintf(w, "  Kind:     %s\n", kindTitle(rule.Kind))
	_, _ = fmt.Fprintf(w, "  Severity: %s\n", rule.DefaultSeverity.String())

	if len(rule.Options) == 0 {
		_, _ = fmt.Fprintln(w, "\n  This rule takes no options.")
		return nil
	}

	_, _ = fmt.Fprintln(w)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Option", "Type", "Default", "Description"})
	for i, o := range rule.Options {
		t.AppendRow(table.Row{i + 1, o.Name, o.Type, o.Default, o.Description})
	}
	t.Render()

	_, _ = fmt.Fprintf(w, "\n  Usage: rflint lint --configure %s:%s\n", rule.ID, optionPlaceholders(rule.Options))
	return nil
}

var kindCaser = cases.Title(language.English)

func kindTitle(k core.RuleKind) string {
	if k == core.KindTestCase {
		return "Test Case"
	}
	return kindCaser.String(k.String())
}

// optionSummary renders options as "name=default" pairs.
func optionSummary(opts []core.OptionInfo) string {
	if len(opts) == 0 {
		return "-"
	}
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = o.Name + "=" + o.Default
	}
	return strings.Join(parts, ", ")
}

func optionPlaceholders(opts []core.OptionInfo) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		parts[i] = "<" + o.Name + ">"
	}
	return strings.Join(parts, ":")
}
