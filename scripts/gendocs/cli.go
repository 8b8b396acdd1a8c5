package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/rflint/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// generateCLIDocs generates CLI documentation from Cobra commands.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rootCmd := cli.NewRootCmd()

	if err := generateCLIIndex(rootCmd, outDir); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	log.Printf("  Generated index.md")

	for _, cmd := range documentedCommands(rootCmd) {
		if err := generateCommandPage(cmd, outDir); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
		log.Printf("  Generated %s.md", cmd.Name())
	}

	return nil
}

func documentedCommands(rootCmd *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// generateCLIIndex generates the CLI overview page.
func generateCLIIndex(rootCmd *cobra.Command, outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("CLI Reference", "Command-line interface reference for rflint")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph("rflint checks Robot Framework test and resource files against a set of configurable lint rules.")

	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/rflint/cmd/rflint@latest")

	w.Header(2, "Basic Usage")
	w.CodeBlock("bash", "rflint <command> [options]")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range documentedCommands(rootCmd) {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	w.Paragraph("These flags are available for all commands:")
	writeFlagsTable(w, rootCmd.PersistentFlags())

	w.Header(2, "Environment Variables")
	w.Paragraph("Every configuration key can be set with an `RFLINT_` variable. Nested keys use a double underscore:")
	w.Table([]string{"Variable", "Description"}, [][]string{
		{InlineCode("RFLINT_VERBOSE"), "Enable debug logging"},
		{InlineCode("RFLINT_NO_COLOR"), "Disable colored output"},
		{InlineCode("RFLINT_EXTENSIONS"), "Comma separated file extensions to lint"},
		{InlineCode("RFLINT_LINT__DISABLED"), "Comma separated rule IDs to disable"},
	})
	w.Paragraph("Command-line flags take precedence over environment variables, which take precedence over `rflint.yaml`.")

	w.Header(2, "Exit Codes")
	w.Table([]string{"Code", "Meaning"}, [][]string{
		{InlineCode("0"), "No error-severity findings"},
		{InlineCode("1"), "Error-severity findings, or invalid configuration (check stderr)"},
	})

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// generateCommandPage generates documentation for a single command.
func generateCommandPage(cmd *cobra.Command, outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	useLine := cmd.UseLine()
	if !strings.HasPrefix(useLine, "rflint") {
		useLine = "rflint " + useLine
	}
	w.CodeBlock("bash", useLine)

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}

	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		writeFlagsTable(w, cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}

	return os.WriteFile(filepath.Join(outDir, cmd.Name()+".md"), w.Bytes(), 0600)
}

// writeFlagsTable writes a table of flags.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}

		short := ""
		if f.Shorthand != "" {
			short = "-" + f.Shorthand
		}

		defVal := f.DefValue
		switch {
		case defVal == "", defVal == "[]":
			defVal = ""
		case f.Value.Type() == "string":
			defVal = InlineCode(defVal)
		}

		rows = append(rows, []string{InlineCode("--" + f.Name), short, defVal, cleanDescription(f.Usage)})
	})

	w.Table([]string{"Option", "Short", "Default", "Description"}, rows)
}

// cleanExample removes common leading whitespace from example text.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}

	if minIndent <= 0 {
		return strings.TrimSpace(example)
	}

	result := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) >= minIndent {
			result = append(result, line[minIndent:])
		} else {
			result = append(result, strings.TrimLeft(line, " \t"))
		}
	}

	return strings.TrimSpace(strings.Join(result, "\n"))
}
