// Package core defines the shared language of the rflint system.
//
// This package contains:
//   - The read-only document model consumed by rules (Document, Body, Row)
//   - Severity and rule kind classifications
//   - Rule metadata DTOs (RuleInfo, OptionInfo)
//   - Configuration types shared by the CLI and the lint engine (LintConfig)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
