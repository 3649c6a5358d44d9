package settlement

import "strconv"

// Metadata names attached to every backup copy.
const (
	MetaSourceKey           = "SourceKey"
	MetaBackupKey           = "BackupKey"
	MetaOrgID               = "OrgId"
	MetaEndpoint            = "Endpoint"
	MetaStreamable          = "Streamable"
	MetaParentCorrelationID = "ParentCorrelationId"
)

// File is one eligible settlement file of a run. It is immutable.
type File struct {
	bucket              string
	sourceKey           string
	backupKey           string
	tenant              string
	streamable          bool
	endpoint            string
	parentCorrelationID string
}

// Bucket returns the bucket holding both the source and the backup copy.
func (f File) Bucket() string { return f.bucket }

// SourceKey returns the key as listed.
func (f File) SourceKey() string { return f.sourceKey }

// BackupKey returns the derived destination key.
func (f File) BackupKey() string { return f.backupKey }

// Tenant returns the tenant token extracted from the key.
func (f File) Tenant() string { return f.tenant }

// Streamable reports whether the file requires encryption on copy.
func (f File) Streamable() bool { return f.streamable }

// Endpoint returns the originating endpoint supplied for the run.
func (f File) Endpoint() string { return f.endpoint }

// ParentCorrelationID returns the per-run correlation ID of the file.
func (f File) ParentCorrelationID() string { return f.parentCorrelationID }

// SameKey reports whether the backup key equals the source key, which turns
// the copy into an in-place metadata rewrite.
func (f File) SameKey() bool { return f.sourceKey == f.backupKey }

// Tags returns the descriptive tags attached to the backup copy.
func (f File) Tags() Tags {
	return Tags{
		SourceKey:           f.sourceKey,
		BackupKey:           f.backupKey,
		OrgID:               f.tenant,
		Endpoint:            f.endpoint,
		Streamable:          f.streamable,
		ParentCorrelationID: f.parentCorrelationID,
	}
}

// MarshalLog implements logr.Marshaler.
func (f File) MarshalLog() any {
	return struct {
		Bucket              string `json:"bucket"`
		SourceKey           string `json:"sourceKey"`
		BackupKey           string `json:"backupKey"`
		Tenant              string `json:"tenant"`
		Streamable          bool   `json:"streamable"`
		Endpoint            string `json:"endpoint"`
		ParentCorrelationID string `json:"parentCorrelationId"`
	}{
		Bucket:              f.bucket,
		SourceKey:           f.sourceKey,
		BackupKey:           f.backupKey,
		Tenant:              f.tenant,
		Streamable:          f.streamable,
		Endpoint:            f.endpoint,
		ParentCorrelationID: f.parentCorrelationID,
	}
}

// Tags is the fixed set of descriptive tags of a backup copy.
type Tags struct {
	SourceKey           string
	BackupKey           string
	OrgID               string
	Endpoint            string
	Streamable          bool
	ParentCorrelationID string
}

// Metadata renders the tags as S3 user metadata.
func (t Tags) Metadata() map[string]string {
	return map[string]string{
		MetaSourceKey:           t.SourceKey,
		MetaBackupKey:           t.BackupKey,
		MetaOrgID:               t.OrgID,
		MetaEndpoint:            t.Endpoint,
		MetaStreamable:          strconv.FormatBool(t.Streamable),
		MetaParentCorrelationID: t.ParentCorrelationID,
	}
}
