package store

import (
	"context"
	"fmt"

	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer. Currently it holds only
// [HistoryRepository]; additional repositories can be added here as the
// feature set grows.
type ClientStorages struct {
	// History is the SQLite-backed repository of previously generated codes.
	History HistoryRepository
}

// NewClientStorages opens the SQLite file specified in cfg.DB.DSN, creating
// it if it does not yet exist, and wires up the history repository.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		History: NewHistoryRepository(db, logger),
	}, nil
}
