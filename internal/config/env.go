package config

import (
	"os"
	"strconv"
)

// Environment variables read by [FromEnv].
const (
	EnvPageSize  = "SFPROC_PAGE_SIZE"
	EnvRegion    = "SFPROC_REGION"
	EnvAccessKey = "SFPROC_S3_ACCESS_KEY"
	EnvSecretKey = "SFPROC_S3_SECRET_KEY"
)

// FromEnv returns a Run pre-populated with defaults and environment values.
// Command-line flags are applied on top of it.
//
// Environment Variables:
//   - SFPROC_PAGE_SIZE (default: 10)
//   - SFPROC_REGION (default: resolved by the AWS default chain, then sa-east-1)
//   - SFPROC_S3_ACCESS_KEY, SFPROC_S3_SECRET_KEY (default: AWS default chain)
func FromEnv() *Run {
	return &Run{
		PageSize: parseInt32(EnvPageSize, DefaultPageSize),
		Store: Store{
			Region:    os.Getenv(EnvRegion),
			AccessKey: os.Getenv(EnvAccessKey),
			SecretKey: os.Getenv(EnvSecretKey),
		},
	}
}

// parseInt32 parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt32(envVar string, defaultVal int32) int32 {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaultVal
	}

	return int32(i)
}
