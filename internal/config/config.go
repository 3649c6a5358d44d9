package config

import (
	"errors"
	"fmt"
)

// DefaultRegion is used when neither the flag, the environment nor the AWS
// default chain resolves a region.
const DefaultRegion = "sa-east-1"

// DefaultPageSize bounds the number of keys returned per listing request.
const DefaultPageSize = 10

// maxPageSize is the largest page S3 returns for ListObjectsV2.
const maxPageSize = 1000

// Run holds everything one processing run depends on.
type Run struct {
	// Endpoint identifies the originating system/channel of the files (CIB).
	Endpoint string
	// Bucket is both the source and destination bucket.
	Bucket string
	// Prefix scopes the listing.
	Prefix string
	// Suffix is inserted before the extension when deriving backup keys.
	Suffix string
	// Regex is an optional ad-hoc filter applied after the structural rules.
	Regex string
	// KMSKey is the key ID or ARN used to encrypt streamable files.
	KMSKey string
	// Verbose enables debug logging.
	Verbose bool
	// Pretend computes every copy but never issues it.
	Pretend bool
	// PageSize is the listing page size.
	PageSize int32

	Store Store

	// PatternsFile optionally overrides the structural key rules.
	PatternsFile string
	// ReportDir receives summary.yaml and metrics.prom; empty disables them.
	ReportDir string
}

// Store holds connection settings for the object store.
type Store struct {
	Region string
	// URL overrides the S3 endpoint for S3-compatible stores.
	URL       string
	PathStyle bool
	AccessKey string
	SecretKey string
}

// Validate checks the run configuration and returns the first problem found.
func (r *Run) Validate() error {
	if r.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	if r.Bucket == "" {
		return errors.New("bucket is required")
	}
	if r.PageSize < 1 || r.PageSize > maxPageSize {
		return fmt.Errorf("page size must be between 1 and %d, got %d", maxPageSize, r.PageSize)
	}
	if (r.Store.AccessKey == "") != (r.Store.SecretKey == "") {
		return errors.New("access key and secret key must be set together")
	}
	return nil
}
