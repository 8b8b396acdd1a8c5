// Package config provides configuration management for the rflint CLI.
//
// Configuration is read from rflint.yaml (or --config), RFLINT_ environment
// variables and command-line flags. The shared lint types (LintConfig,
// RuleOptions) are defined in pkg/core and re-exported here via type aliases.
package config

import "github.com/leapstack-labs/rflint/pkg/core"

// LintConfig is an alias for the shared lint configuration.
// This allows CLI code to use config.LintConfig without importing pkg/core.
type LintConfig = core.LintConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// Config holds all CLI configuration options.
type Config struct {
	Verbose    bool        `koanf:"verbose"`
	NoColor    bool        `koanf:"no_color"`
	Extensions []string    `koanf:"extensions"`
	Lint       *LintConfig `koanf:"lint"`

	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultConfigName = "rflint"
	EnvPrefix         = "RFLINT_"
)

// DefaultExtensions are the file extensions linted when walking directories.
var DefaultExtensions = []string{".robot", ".resource"}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Extensions: append([]string(nil), DefaultExtensions...),
		Lint:       &LintConfig{},
	}
}
