// Package rules provides the built-in rflint rule implementations.
//
// Rules are organized by category:
//   - general: whole-file rules (LineTooLong, TrailingBlankLines, FileTooLong)
//   - naming: naming convention rules (GlobalVariableNamingCheck)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/rflint/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/leapstack-labs/rflint/pkg/lint/rules/general"
package rules
