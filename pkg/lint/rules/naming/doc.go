// Package naming provides naming convention rules.
//
// Rules in this package:
//   - GlobalVariableNamingCheck: global, suite and test scoped variables must be upper case
package naming
