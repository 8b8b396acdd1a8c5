package rules

// Blank imports run each category's init(), which registers its rules
// with the global lint registry.
import (
	_ "github.com/leapstack-labs/rflint/pkg/lint/rules/general"
	_ "github.com/leapstack-labs/rflint/pkg/lint/rules/naming"
)
