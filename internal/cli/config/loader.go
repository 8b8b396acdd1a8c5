package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// listKeys are the config keys whose environment values are comma separated.
var listKeys = map[string]bool{
	"extensions":    true,
	"lint.disabled": true,
}

// splitList splits a comma separated value, dropping blank entries.
func splitList(v string) []string {
	items := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// configNames are the config file names searched for, in order.
var configNames = []string{DefaultConfigName + ".yaml", DefaultConfigName + ".yml"}

// configIn returns the config file in dir, or "" if there is none.
func configIn(dir string) string {
	for _, name := range configNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// FindConfigUpward searches upward from startDir for a config file.
// Returns empty string if not found within maxUpwardSearchLevels.
func FindConfigUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if found := configIn(dir); found != "" {
			return found
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"verbose":    false,
		"no_color":   false,
		"extensions": DefaultExtensions,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	if cfgFile == "" {
		if cwd, err := os.Getwd(); err == nil {
			cfgFile = FindConfigUpward(cwd)
		}
	} else if _, err := os.Stat(cfgFile); err != nil {
		return nil, fmt.Errorf("config file %s: %w", cfgFile, err)
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. Load environment variables (RFLINT_ prefix)
	// Transform: RFLINT_NO_COLOR -> no_color, RFLINT_LINT__DISABLED -> lint.disabled
	// List keys take comma separated values: RFLINT_EXTENSIONS=.robot,.txt
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(s, v string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		key = strings.ReplaceAll(key, "__", ".")
		if listKeys[key] {
			return key, splitList(v)
		}
		return key, v
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	// Defaults are already in k. Decoding over a populated slice keeps its tail.
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.Lint == nil {
		cfg.Lint = &LintConfig{}
	}
	cfg.ConfigFile = cfgFile

	return cfg, nil
}
