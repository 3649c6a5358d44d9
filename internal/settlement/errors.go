package settlement

import "errors"

// Error taxonomy of a processing run. Only ErrListingFailed aborts a run;
// every other error is scoped to a single object.
var (
	ErrListingFailed        = errors.New("listing failed")
	ErrInvalidUserPattern   = errors.New("invalid user pattern")
	ErrMissingEncryptionKey = errors.New("missing encryption key for streamable file")
	ErrCopyFailed           = errors.New("copy failed")

	ErrMissingExtension = errors.New("key has no recognized extension")
	ErrMissingTenant    = errors.New("key has no tenant token")
)
