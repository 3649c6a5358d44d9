// Package s3 provides the object store client used by the settlement file
// processor.
//
// It lists every key under a bucket prefix page by page and issues
// server-side copies with replaced metadata and optional SSE-KMS. Region
// and credentials come from the AWS default chain unless overridden; any
// S3-compatible endpoint can be targeted.
package s3
