package lint

import "github.com/leapstack-labs/rflint/pkg/core"

// Config controls which rules are enabled, their severity and their arguments.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]core.Severity

	// RuleArgs holds positional configuration arguments per rule
	RuleArgs map[string][]string
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		SeverityOverrides: make(map[string]core.Severity),
		RuleArgs:          make(map[string][]string),
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity core.Severity) core.Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// GetRuleArgs returns the configuration arguments for a rule.
func (c *Config) GetRuleArgs(ruleID string) []string {
	if c == nil {
		return nil
	}
	return c.RuleArgs[ruleID]
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// Enable re-enables a previously disabled rule.
func (c *Config) Enable(ruleID string) *Config {
	delete(c.DisabledRules, ruleID)
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity core.Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetRuleArgs sets the configuration arguments for a rule.
func (c *Config) SetRuleArgs(ruleID string, args ...string) *Config {
	c.RuleArgs[ruleID] = args
	return c
}
