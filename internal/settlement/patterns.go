package settlement

import (
	"fmt"
	"regexp"

	"github.com/imamik/sfproc/internal/config"
)

// PatternSet holds the compiled structural rules. It is read-only after
// construction and safe for concurrent use.
type PatternSet struct {
	extension  *regexp.Regexp
	tenant     *regexp.Regexp
	excluded   *regexp.Regexp
	streamable *regexp.Regexp
}

// NewPatternSet compiles the structural rules.
func NewPatternSet(p config.Patterns) (*PatternSet, error) {
	extension, err := regexp.Compile(p.Extension)
	if err != nil {
		return nil, fmt.Errorf("invalid extension pattern: %w", err)
	}
	tenant, err := regexp.Compile(p.Tenant)
	if err != nil {
		return nil, fmt.Errorf("invalid tenant pattern: %w", err)
	}
	excluded, err := regexp.Compile(p.ExcludedDirectory)
	if err != nil {
		return nil, fmt.Errorf("invalid excluded directory pattern: %w", err)
	}
	streamable, err := regexp.Compile(p.Streamable)
	if err != nil {
		return nil, fmt.Errorf("invalid streamable pattern: %w", err)
	}

	return &PatternSet{
		extension:  extension,
		tenant:     tenant,
		excluded:   excluded,
		streamable: streamable,
	}, nil
}

// HasRecognizedExtension reports whether the key ends in a recognized extension.
func (p *PatternSet) HasRecognizedExtension(key string) bool {
	return p.extension.MatchString(key)
}

// HasTenantPrefix reports whether the key carries a tenant token.
func (p *PatternSet) HasTenantPrefix(key string) bool {
	return p.tenant.MatchString(key)
}

// IsExcludedDirectory reports whether the key lives under an excluded directory.
func (p *PatternSet) IsExcludedDirectory(key string) bool {
	return p.excluded.MatchString(key)
}

// IsStreamable reports whether the key names a streaming settlement format.
func (p *PatternSet) IsStreamable(key string) bool {
	return p.streamable.MatchString(key)
}

// MatchesUserPattern compiles pattern and matches it against key.
// A pattern that does not compile never matches; the returned error wraps
// ErrInvalidUserPattern.
func (p *PatternSet) MatchesUserPattern(key, pattern string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("%w %q: %w", ErrInvalidUserPattern, pattern, err)
	}
	return re.MatchString(key), nil
}

// Eligible reports whether key should be processed. The structural gates are
// evaluated first, in order, and short-circuit; the user pattern is only
// consulted for keys that passed them. An empty pattern disables the
// user filter.
func (p *PatternSet) Eligible(key, pattern string) (bool, error) {
	if !p.HasRecognizedExtension(key) {
		return false, nil
	}
	if !p.HasTenantPrefix(key) {
		return false, nil
	}
	if p.IsExcludedDirectory(key) {
		return false, nil
	}
	if pattern == "" {
		return true, nil
	}
	return p.MatchesUserPattern(key, pattern)
}

// Extension returns the last match of the extension rule, or "".
func (p *PatternSet) Extension(key string) string {
	matches := p.extension.FindAllString(key, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}

// Tenant returns the first tenant token in key, or "". When the tenant rule
// has a capture group the group is returned instead of the whole match.
func (p *PatternSet) Tenant(key string) string {
	m := p.tenant.FindStringSubmatch(key)
	switch {
	case m == nil:
		return ""
	case len(m) > 1:
		return m[1]
	default:
		return m[0]
	}
}
