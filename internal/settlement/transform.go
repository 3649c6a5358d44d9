package settlement

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh correlation ID.
type IDGenerator func() string

// Transformer derives settlement files from eligible keys.
type Transformer struct {
	patterns *PatternSet
	suffix   string
	endpoint string
	newID    IDGenerator
}

// TransformerOption is a functional option for Transformer configuration.
type TransformerOption func(*Transformer)

// WithIDGenerator replaces the random correlation ID source.
func WithIDGenerator(gen IDGenerator) TransformerOption {
	return func(t *Transformer) {
		t.newID = gen
	}
}

// NewTransformer creates a Transformer. suffix is inserted before the
// extension of every backup key; endpoint is copied into every file.
func NewTransformer(patterns *PatternSet, suffix, endpoint string, opts ...TransformerOption) *Transformer {
	t := &Transformer{
		patterns: patterns,
		suffix:   suffix,
		endpoint: endpoint,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform builds the settlement file for key. The key is expected to have
// passed PatternSet.Eligible; a key without extension or tenant is rejected.
func (t *Transformer) Transform(bucket, key string) (File, error) {
	ext := t.patterns.Extension(key)
	if ext == "" {
		return File{}, fmt.Errorf("%w: %s", ErrMissingExtension, key)
	}

	tenant := t.patterns.Tenant(key)
	if tenant == "" {
		return File{}, fmt.Errorf("%w: %s", ErrMissingTenant, key)
	}

	return File{
		bucket:              bucket,
		sourceKey:           key,
		backupKey:           BackupKey(key, ext, t.suffix),
		tenant:              tenant,
		streamable:          t.patterns.IsStreamable(key),
		endpoint:            t.endpoint,
		parentCorrelationID: t.newID(),
	}, nil
}

// BackupKey removes the first occurrence of ext from key and appends
// suffix+ext. With an empty suffix the result equals key whenever ext is
// the key's only occurrence of that substring.
func BackupKey(key, ext, suffix string) string {
	return strings.Replace(key, ext, "", 1) + suffix + ext
}
