package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateID is returned when an INSERT of a protected QR record
	// collides with an existing identifier. With UUIDv7 identifiers this
	// indicates a client retrying a completed request.
	ErrDuplicateID = errors.New("protected qr id already exists")

	// ErrProtectedQRNotFound is returned when a lookup targets an id that
	// does not exist, or that the cleanup worker has already purged.
	ErrProtectedQRNotFound = errors.New("protected qr was not found")

	// ErrNothingSaved is returned when a write completes without a driver
	// error but affects zero rows.
	ErrNothingSaved = errors.New("no rows were written")
)
