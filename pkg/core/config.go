package core

// LintConfig holds lint rule configuration.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to severity override (error, warning)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options keyed by rule ID
	Rules map[string]RuleOptions `koanf:"rules"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any
