package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/sfproc/internal/config"
	"github.com/imamik/sfproc/internal/settlement"
)

func settlementFile(t *testing.T, key string) settlement.File {
	t.Helper()
	patterns, err := settlement.NewPatternSet(config.DefaultPatterns())
	require.NoError(t, err)

	tr := settlement.NewTransformer(patterns, "-bak", "cib-001",
		settlement.WithIDGenerator(func() string { return "corr-1" }))
	f, err := tr.Transform("settlements", key)
	require.NoError(t, err)
	return f
}

func TestCopier_AttachesTagsAndReplacesMetadata(t *testing.T) {
	store := &fakeStore{}
	c := NewCopier(store, nil)

	err := c.Copy(context.Background(), settlementFile(t, "prod/TN-ABC/report.csv"), "")
	require.NoError(t, err)

	require.Len(t, store.copies, 1)
	in := store.copies[0]
	assert.Equal(t, "settlements", in.Bucket)
	assert.Equal(t, "prod/TN-ABC/report.csv", in.SourceKey)
	assert.Equal(t, "prod/TN-ABC/report-bak.csv", in.DestinationKey)
	assert.Empty(t, in.KMSKeyID)
	assert.Equal(t, map[string]string{
		"SourceKey":           "prod/TN-ABC/report.csv",
		"BackupKey":           "prod/TN-ABC/report-bak.csv",
		"OrgId":               "TN-ABC",
		"Endpoint":            "cib-001",
		"Streamable":          "false",
		"ParentCorrelationId": "corr-1",
	}, in.Metadata)
}

func TestCopier_StreamableRequiresKMSKey(t *testing.T) {
	store := &fakeStore{}
	c := NewCopier(store, nil)

	err := c.Copy(context.Background(), settlementFile(t, "prod/TN-ABC/report.t112"), "")
	require.ErrorIs(t, err, settlement.ErrMissingEncryptionKey)
	assert.NotErrorIs(t, err, settlement.ErrCopyFailed)
	assert.Empty(t, store.copies, "store must not be called without a KMS key")
}

func TestCopier_StreamableEncrypted(t *testing.T) {
	store := &fakeStore{}
	c := NewCopier(store, nil)

	err := c.Copy(context.Background(), settlementFile(t, "prod/TN-ABC/report.t112"), "alias/settlements")
	require.NoError(t, err)

	require.Len(t, store.copies, 1)
	assert.Equal(t, "alias/settlements", store.copies[0].KMSKeyID)
	assert.Equal(t, "prod/TN-ABC/report-bak.t112", store.copies[0].DestinationKey)
}

func TestCopier_NonStreamableIgnoresKMSKey(t *testing.T) {
	store := &fakeStore{}
	c := NewCopier(store, nil)

	err := c.Copy(context.Background(), settlementFile(t, "prod/TN-ABC/report.csv"), "alias/settlements")
	require.NoError(t, err)

	require.Len(t, store.copies, 1)
	assert.Empty(t, store.copies[0].KMSKeyID)
}

func TestCopier_StoreErrorIsCopyFailed(t *testing.T) {
	storeErr := errors.New("connection reset")
	store := &fakeStore{copyErr: map[string]error{"prod/TN-ABC/report.csv": storeErr}}
	c := NewCopier(store, NewMetrics())

	err := c.Copy(context.Background(), settlementFile(t, "prod/TN-ABC/report.csv"), "")
	require.ErrorIs(t, err, settlement.ErrCopyFailed)
	require.ErrorIs(t, err, storeErr)
	assert.Len(t, store.copies, 1, "failed copies are not retried")
}
