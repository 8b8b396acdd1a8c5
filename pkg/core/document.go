package core

// =============================================================================
// Document Model
// =============================================================================

// Row is one line's worth of tokenized cells.
type Row struct {
	// LineNumber is the 1-based line of the row in the source file.
	LineNumber int
	// Cells holds the ordered tokens of the row. Cells may be empty strings
	// or the continuation marker "...".
	Cells []string
}

// Body is a test case or keyword: a name and the rows that belong to it.
type Body struct {
	Name       string
	LineNumber int
	Rows       []Row
}

// Document is the read-only view of a parsed file that rules inspect.
//
// RawText is the verbatim file content. Splitting it on "\n" yields lines
// whose 1-based index matches the LineNumber of every Row exposed by the
// other accessors.
type Document interface {
	// Path identifies the source file.
	Path() string

	// RawText returns the unmodified file content.
	RawText() string

	// VariableRows returns the rows of the Variables section in order.
	VariableRows() []Row

	// TestCaseBodies returns the test cases in order.
	TestCaseBodies() []Body

	// KeywordBodies returns the keywords in order.
	KeywordBodies() []Body
}
