package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Patterns holds the structural rules used to classify object keys.
// Every field is a Go regular expression.
type Patterns struct {
	// Extension matches the file extension at the end of the key.
	Extension string `yaml:"extension"`
	// Tenant matches the tenant token. When the expression has a capture
	// group, the first group is the tenant.
	Tenant string `yaml:"tenant"`
	// ExcludedDirectory matches keys that are never processed.
	ExcludedDirectory string `yaml:"excludedDirectory"`
	// Streamable matches keys in a streaming settlement format.
	Streamable string `yaml:"streamable"`
}

// Default structural rules.
const (
	DefaultExtensionPattern         = `\.[[:alnum:]]{3}[[:digit:]]?$`
	DefaultTenantPattern            = `(?i)(?:^|/)(tn-[^/]+)`
	DefaultExcludedDirectoryPattern = `(?i)(?:^|/)(?:archive|backup)/`
	DefaultStreamablePattern        = `(?i)baseii|t112|t120|t470|t464`
)

// DefaultPatterns returns the built-in structural rules.
func DefaultPatterns() Patterns {
	return Patterns{
		Extension:         DefaultExtensionPattern,
		Tenant:            DefaultTenantPattern,
		ExcludedDirectory: DefaultExcludedDirectoryPattern,
		Streamable:        DefaultStreamablePattern,
	}
}

// LoadPatterns returns the default rules, overridden field by field by the
// YAML file at path. An empty path returns the defaults.
func LoadPatterns(path string) (Patterns, error) {
	p := DefaultPatterns()
	if path == "" {
		return p, nil
	}

	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return Patterns{}, fmt.Errorf("failed to read patterns file: %w", err)
	}

	var override Patterns
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Patterns{}, fmt.Errorf("failed to unmarshal patterns yaml: %w", err)
	}

	if override.Extension != "" {
		p.Extension = override.Extension
	}
	if override.Tenant != "" {
		p.Tenant = override.Tenant
	}
	if override.ExcludedDirectory != "" {
		p.ExcludedDirectory = override.ExcludedDirectory
	}
	if override.Streamable != "" {
		p.Streamable = override.Streamable
	}

	return p, nil
}
