package store

import (
	"context"

	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
)

// Storages aggregates every repository the server needs.
type Storages struct {
	ProtectedQR ProtectedQRRepository
}

// NewStorages connects to PostgreSQL, applies migrations, and wires up the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		ProtectedQR: NewProtectedQRRepository(db, log),
	}, nil
}
