// Package general provides whole-file lint rules.
//
// Rules in this package:
//   - LineTooLong: physical lines longer than maxchars (default 100)
//   - TrailingBlankLines: more than max_allowed blank lines at end of file (default 2)
//   - FileTooLong: files with more than max_allowed lines (default 300)
//
// All of them measure RawText split on "\n", so an empty file has one empty line.
package general

import "strings"

// lineCount returns the number of physical lines, matching len(strings.Split(text, "\n")).
func lineCount(text string) int {
	return strings.Count(text, "\n") + 1
}
