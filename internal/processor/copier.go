package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/sfproc/internal/platform/s3"
	"github.com/imamik/sfproc/internal/settlement"
)

// Store is the object store the processor works against.
type Store interface {
	ListKeys(ctx context.Context, bucket, prefix string, pageSize int32) ([]string, error)
	CopyObject(ctx context.Context, in s3.CopyInput) error
}

// Copier copies settlement files to their backup keys.
type Copier struct {
	store   Store
	metrics *Metrics
}

// NewCopier creates a Copier. metrics may be nil.
func NewCopier(store Store, metrics *Metrics) *Copier {
	return &Copier{
		store:   store,
		metrics: metrics,
	}
}

// Copy copies f to its backup key with its tags as replaced metadata.
// Streamable files are encrypted with kmsKey; without a key the store is not
// called and the error wraps settlement.ErrMissingEncryptionKey. Store
// failures wrap settlement.ErrCopyFailed and are not retried.
func (c *Copier) Copy(ctx context.Context, f settlement.File, kmsKey string) error {
	in := s3.CopyInput{
		Bucket:         f.Bucket(),
		SourceKey:      f.SourceKey(),
		DestinationKey: f.BackupKey(),
		Metadata:       f.Tags().Metadata(),
	}

	if f.Streamable() {
		if kmsKey == "" {
			return fmt.Errorf("%w: %s", settlement.ErrMissingEncryptionKey, f.SourceKey())
		}
		in.KMSKeyID = kmsKey
	}

	start := time.Now()
	err := c.store.CopyObject(ctx, in)
	c.metrics.recordStoreCall(opCopy, err, time.Since(start))
	if err != nil {
		return fmt.Errorf("%w: %w", settlement.ErrCopyFailed, err)
	}
	return nil
}
