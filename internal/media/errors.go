package media

import "errors"

var (
	// ErrEmptyPath indicates a sign request without an object path.
	ErrEmptyPath = errors.New("empty media path")
	// ErrInvalidPath indicates an object path that escapes the media root.
	ErrInvalidPath = errors.New("invalid media path")
	// ErrBucketMismatch indicates a sign request naming a bucket other than
	// the configured one.
	ErrBucketMismatch = errors.New("unknown media bucket")
	// ErrNotLocalBackend indicates a local-delivery operation attempted while
	// media is served from S3.
	ErrNotLocalBackend = errors.New("media is not served locally")
)
