package s3

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/go-logr/logr"

	"github.com/imamik/sfproc/internal/config"
)

// Client wraps the S3 client for settlement file processing.
type Client struct {
	s3     *s3.Client
	region string
}

// CopyInput describes a same-bucket server-side copy.
type CopyInput struct {
	Bucket         string
	SourceKey      string
	DestinationKey string
	// Metadata replaces the metadata of the source object.
	Metadata map[string]string
	// KMSKeyID requests SSE-KMS with the given key when non-empty.
	KMSKeyID string
}

// NewClient creates a new S3 client. Region and credentials fall back to the
// AWS default chain; when the chain yields no region, config.DefaultRegion
// is used.
func NewClient(ctx context.Context, store config.Store) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if store.Region != "" {
		opts = append(opts, awsconfig.WithRegion(store.Region))
	}
	if store.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(store.AccessKey, store.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = config.DefaultRegion
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if store.URL != "" {
			o.BaseEndpoint = aws.String(store.URL)
		}
		o.UsePathStyle = store.PathStyle
	})

	return &Client{s3: client, region: cfg.Region}, nil
}

// Region returns the resolved region.
func (c *Client) Region() string {
	return c.region
}

// ListKeys lists every object key under prefix, pageSize keys per request,
// in the order returned by the store. A failure on any page discards the
// keys gathered so far.
func (c *Client) ListKeys(ctx context.Context, bucketName, prefix string, pageSize int32) ([]string, error) {
	log := logr.FromContextOrDiscard(ctx)

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	paginator := s3.NewListObjectsV2Paginator(c.s3, input, func(o *s3.ListObjectsV2PaginatorOptions) {
		o.Limit = pageSize
	})

	var keys []string
	for page := 1; paginator.HasMorePages(); page++ {
		result, err := paginator.NextPage(ctx)
		if err != nil {
			if isNoSuchBucket(err) {
				return nil, fmt.Errorf("bucket %s does not exist: %w", bucketName, err)
			}
			return nil, fmt.Errorf("failed to list objects in bucket %s (page %d): %w", bucketName, page, err)
		}

		for _, obj := range result.Contents {
			if obj.Key != nil {
				keys = append(keys, *obj.Key)
			}
		}
		log.V(1).Info("Listed page", "bucket", bucketName, "prefix", prefix, "page", page, "keys", len(result.Contents))
	}

	return keys, nil
}

// CopyObject copies an object within its bucket, replacing its metadata.
// The copy only counts as done when the store returns a copy result.
func (c *Client) CopyObject(ctx context.Context, in CopyInput) error {
	input := &s3.CopyObjectInput{
		Bucket:            aws.String(in.Bucket),
		Key:               aws.String(in.DestinationKey),
		CopySource:        aws.String(copySource(in.Bucket, in.SourceKey)),
		Metadata:          in.Metadata,
		MetadataDirective: types.MetadataDirectiveReplace,
	}
	if in.KMSKeyID != "" {
		input.ServerSideEncryption = types.ServerSideEncryptionAwsKms
		input.SSEKMSKeyId = aws.String(in.KMSKeyID)
	}

	result, err := c.s3.CopyObject(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to copy object %s to %s in bucket %s: %w", in.SourceKey, in.DestinationKey, in.Bucket, err)
	}
	if result == nil || result.CopyObjectResult == nil {
		return fmt.Errorf("copy of object %s to %s in bucket %s returned no result", in.SourceKey, in.DestinationKey, in.Bucket)
	}
	return nil
}

// ErrorCode returns the S3 API error code carried by err, or "".
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// copySource builds the URL-encoded bucket/key copy source.
func copySource(bucketName, key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return bucketName + "/" + strings.Join(segments, "/")
}

// isNoSuchBucket checks if the error indicates a missing bucket.
func isNoSuchBucket(err error) bool {
	if err == nil {
		return false
	}

	// Check for typed S3 errors first
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}

	// Fall back to API error code checking for S3-compatible services
	return ErrorCode(err) == "NoSuchBucket"
}
