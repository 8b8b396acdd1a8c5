// Package robot provides an in-memory Robot Framework document and a minimal
// reader for the plain-text (space and pipe separated) file format.
//
// The reader only splits the file into sections, rows and cells; it does not
// interpret settings, keywords or variables:
//
//	f := robot.Parse("suite.robot", text)
//	for _, tc := range f.TestCaseBodies() {
//		fmt.Println(tc.Name, len(tc.Rows))
//	}
//
// File implements core.Document and is what rules receive from the loader.
package robot
