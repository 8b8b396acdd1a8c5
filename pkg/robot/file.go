package robot

import "github.com/leapstack-labs/rflint/pkg/core"

// File is a parsed robot file. It is immutable once built.
type File struct {
	path      string
	raw       string
	variables []core.Row
	testcases []core.Body
	keywords  []core.Body
}

var _ core.Document = (*File)(nil)

// NewFile builds a File from already tokenized sections.
func NewFile(path, raw string, variables []core.Row, testcases, keywords []core.Body) *File {
	return &File{
		path:      path,
		raw:       raw,
		variables: variables,
		testcases: testcases,
		keywords:  keywords,
	}
}

// Path identifies the source file.
func (f *File) Path() string { return f.path }

// RawText returns the unmodified file content.
func (f *File) RawText() string { return f.raw }

// VariableRows returns the rows of the Variables section.
func (f *File) VariableRows() []core.Row { return f.variables }

// TestCaseBodies returns the test cases (or tasks).
func (f *File) TestCaseBodies() []core.Body { return f.testcases }

// KeywordBodies returns the keywords.
func (f *File) KeywordBodies() []core.Body { return f.keywords }
