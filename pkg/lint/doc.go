// Package lint provides the rule engine for Robot Framework style checks.
//
// # Architecture
//
// The lint package is the middle layer of rflint:
//
//  1. pkg/core: the read-only document model and shared enums
//  2. pkg/lint (this package): rule contract, option schema, reporting, registry, analyzer
//  3. pkg/lint/rules/...: concrete rules, registered via init()
//
// # Rule Registration
//
// Rules are registered as factories when their packages are imported, so every
// analyzer works on its own, freshly configured instances:
//
//	import _ "github.com/leapstack-labs/rflint/pkg/lint/rules"
//
// # Rule Kinds
//
//   - general: rules that look at the file as a whole (line length, trailing lines)
//   - testcase: rules that primarily scan test case bodies
//   - keyword: rules that primarily scan keyword bodies
//
// The kind is organizational only. Every rule is applied to the whole document
// through the same Apply method.
//
// # Configuration
//
// A rule declares its options as an ordered schema of OptionSpec values.
// Configurable rules receive raw string arguments in schema order:
//
//	rule, _ := lint.New("LineTooLong")
//	if c, ok := rule.(lint.Configurable); ok {
//		if err := c.Configure("120"); err != nil {
//			// *lint.ConfigurationError
//		}
//	}
//
// Use Config to disable rules, override severities and pass rule arguments
// when building an Analyzer:
//
//	config := lint.NewConfig()
//	config.Disable("FileTooLong")
//	config.SetSeverity("LineTooLong", core.SeverityError)
//	config.SetRuleArgs("LineTooLong", "120")
//	analyzer, err := lint.NewAnalyzer(config, logger)
//
// # Creating Custom Rules
//
// Implement Rule (and optionally Configurable) and register a factory:
//
//	func init() {
//		lint.Register(func() lint.Rule { return NewMyRule() })
//	}
package lint
