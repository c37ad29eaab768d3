package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/ebelikov/go-qr-studio/models"
)

// ProtectedQRRepository is the persistence contract for password-protected
// QR records. The server stores only the bcrypt hash of the password; the
// plaintext never reaches this layer.
type ProtectedQRRepository interface {
	// Create persists a new record and returns it with server-assigned
	// fields (CreatedAt) populated.
	Create(ctx context.Context, qr models.ProtectedQR) (models.ProtectedQR, error)

	// Get retrieves a record by its opaque identifier.
	Get(ctx context.Context, id string) (models.ProtectedQR, error)

	// List returns records matching the filter, newest first.
	List(ctx context.Context, filter ProtectedQRFilter) ([]models.ProtectedQR, error)

	// DeleteExpired removes every record whose expiry is before now and
	// reports how many rows were purged.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// ProtectedQRFilter narrows a List call. Zero values mean "no constraint".
type ProtectedQRFilter struct {
	QRType       models.ContentType
	CreatedAfter time.Time
	Limit        uint64
}

// HistoryRepository is the client-side store of previously generated codes,
// kept in a local SQLite file so the terminal client can re-open and re-save
// past work.
type HistoryRepository interface {
	Add(ctx context.Context, entry HistoryEntry) error
	Recent(ctx context.Context, limit int) ([]HistoryEntry, error)
}

// HistoryEntry is one generated code in the client history.
type HistoryEntry struct {
	ID        string
	Title     string
	QRType    models.ContentType
	Payload   string
	CreatedAt time.Time
}
