package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/rflint/pkg/core"
	"github.com/leapstack-labs/rflint/pkg/lint"
	_ "github.com/leapstack-labs/rflint/pkg/lint/rules"
)

// kindDescriptions provides human-readable descriptions for rule kinds.
var kindDescriptions = map[core.RuleKind]string{
	core.KindGeneral:  "Rules that look at a file as a whole: its raw text, its variables and every body.",
	core.KindTestCase: "Rules that look at individual test cases and tasks.",
	core.KindKeyword:  "Rules that look at individual user keywords.",
}

var kindOrder = []core.RuleKind{core.KindGeneral, core.KindTestCase, core.KindKeyword}

// generateLintDocs generates the rule reference.
func generateLintDocs(outDir string) error {
	log.Printf("Generating lint docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.AllRules()

	w := NewMarkdownWriter()
	w.Frontmatter("Lint Rules", "Lint rules for Robot Framework files")
	w.GeneratedMarker()

	w.Header(1, "Lint Rules")
	w.Paragraph(fmt.Sprintf("rflint includes %d lint rules.", len(rules)))

	w.Header(2, "Severity Levels")
	w.Table([]string{"Severity", "Description"}, [][]string{
		{InlineCode("error"), "Violation that fails the run"},
		{InlineCode("warning"), "Convention violation that should be reviewed"},
	})

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be configured in `rflint.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled: [FileTooLong]     # disable rules
  severity:
    LineTooLong: error        # override severity
  rules:
    LineTooLong:
      maxchars: 120           # rule-specific option`)
	w.Paragraph("or on the command line with `--ignore`, `--error`, `--warning` and `--configure RULE:arg[:arg...]`.")

	grouped := make(map[core.RuleKind][]core.RuleInfo)
	for _, r := range rules {
		grouped[r.Kind] = append(grouped[r.Kind], r)
	}

	for _, kind := range kindOrder {
		kindRules := grouped[kind]
		if len(kindRules) == 0 {
			continue
		}

		w.Line(fmt.Sprintf("## %s {#%s}", kindTitle(kind), kind.String()))
		w.Newline()
		w.Paragraph(kindDescriptions[kind])

		for _, rule := range kindRules {
			writeRuleDoc(w, rule)
		}
	}

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

func kindTitle(k core.RuleKind) string {
	switch k {
	case core.KindTestCase:
		return "Test Case Rules"
	case core.KindKeyword:
		return "Keyword Rules"
	default:
		return "General Rules"
	}
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, rule core.RuleInfo) {
	w.Line(fmt.Sprintf("### %s {#%s}", rule.ID, rule.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(rule.DefaultSeverity.String())))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if len(rule.Options) > 0 {
		w.Header(4, "Configuration")
		var rows [][]string
		placeholders := make([]string, 0, len(rule.Options))
		for i, o := range rule.Options {
			rows = append(rows, []string{fmt.Sprint(i + 1), InlineCode(o.Name), o.Type, InlineCode(o.Default), cleanDescription(o.Description)})
			placeholders = append(placeholders, "<"+o.Name+">")
		}
		w.Table([]string{"Position", "Option", "Type", "Default", "Description"}, rows)
		w.CodeBlock("bash", fmt.Sprintf("rflint lint --configure %s:%s", rule.ID, strings.Join(placeholders, ":")))
	}

	w.Line("---")
	w.Newline()
}
