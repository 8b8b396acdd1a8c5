package robot

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/rflint/pkg/core"
)

// Section identifies a table of a robot file.
type Section int

// Sections of a robot file.
const (
	SectionNone Section = iota
	SectionSettings
	SectionVariables
	SectionTestCases
	SectionKeywords
	SectionComments
	SectionUnknown
)

// String returns the string representation of the section.
func (s Section) String() string {
	switch s {
	case SectionNone:
		return "none"
	case SectionSettings:
		return "settings"
	case SectionVariables:
		return "variables"
	case SectionTestCases:
		return "testcases"
	case SectionKeywords:
		return "keywords"
	case SectionComments:
		return "comments"
	default:
		return "unknown"
	}
}

// separatorPattern splits space separated rows: a tab, or two or more spaces.
var separatorPattern = regexp.MustCompile(` ?\t ?| {2,}`)

// sectionNames maps normalized, singular header names to sections.
var sectionNames = map[string]Section{
	"setting":      SectionSettings,
	"metadata":     SectionSettings,
	"variable":     SectionVariables,
	"test case":    SectionTestCases,
	"task":         SectionTestCases,
	"keyword":      SectionKeywords,
	"user keyword": SectionKeywords,
	"comment":      SectionComments,
}

// Parse reads plain-text robot source. Line numbers of the returned rows are
// the 1-based indexes of strings.Split(text, "\n").
func Parse(path, text string) *File {
	f := &File{path: path, raw: text}

	section := SectionNone
	var current *core.Body

	flush := func() {
		if current == nil {
			return
		}
		switch section {
		case SectionTestCases:
			f.testcases = append(f.testcases, *current)
		case SectionKeywords:
			f.keywords = append(f.keywords, *current)
		}
		current = nil
	}

	for i, line := range strings.Split(text, "\n") {
		cells := SplitCells(line)
		if isBlankRow(cells) {
			continue
		}

		if strings.HasPrefix(cells[0], "*") {
			flush()
			section = ParseSectionHeader(cells[0])
			continue
		}

		row := core.Row{LineNumber: i + 1, Cells: cells}
		switch section {
		case SectionVariables:
			f.variables = append(f.variables, row)
		case SectionTestCases, SectionKeywords:
			switch {
			case strings.HasPrefix(cells[0], "#"):
				// Comment rows never open a body.
			case cells[0] != "":
				flush()
				current = &core.Body{Name: cells[0], LineNumber: i + 1}
			}
			if current == nil {
				continue
			}
			current.Rows = append(current.Rows, row)
		}
	}
	flush()

	return f
}

// ParseSectionHeader maps a header cell such as "*** Test Cases ***" to its section.
func ParseSectionHeader(cell string) Section {
	name := strings.ToLower(strings.TrimSpace(strings.Trim(cell, "* ")))
	name = strings.Join(strings.Fields(name), " ")
	name = strings.TrimSuffix(name, "s")
	if s, ok := sectionNames[name]; ok {
		return s
	}
	return SectionUnknown
}

// SplitCells tokenizes one line. Pipe separated lines start with "| ";
// everything else is split on tabs or runs of two or more spaces. A leading
// separator produces a leading empty cell.
func SplitCells(line string) []string {
	line = strings.TrimRight(line, " \t\r")
	if line == "" {
		return nil
	}

	if line == "|" || strings.HasPrefix(line, "| ") || strings.HasPrefix(line, "|\t") {
		return splitPipeCells(line)
	}
	return separatorPattern.Split(line, -1)
}

func splitPipeCells(line string) []string {
	s := strings.TrimPrefix(line, "|")
	s = strings.TrimSuffix(strings.TrimRight(s, " \t"), "|")

	parts := strings.Split(s, " | ")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
