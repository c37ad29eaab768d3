package store

import (
	"context"
	"fmt"

	"github.com/ebelikov/go-qr-studio/internal/logger"
)

// historyRepository is the SQLite-backed implementation of
// [HistoryRepository] used by the terminal client.
type historyRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *historyRepository) Add(ctx context.Context, entry HistoryEntry) error {
	res, err := r.db.ExecContext(ctx, insertHistoryEntry,
		entry.ID, entry.Title, entry.QRType, entry.Payload, entry.CreatedAt)
	if err != nil {
		r.logger.Err(err).Str("func", "*historyRepository.Add").Msg("error saving history entry")
		return fmt.Errorf("error saving history entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNothingSaved
	}

	return nil
}

func (r *historyRepository) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, selectRecentHistory, limit)
	if err != nil {
		r.logger.Err(err).Str("func", "*historyRepository.Recent").Msg("error reading history")
		return nil, fmt.Errorf("error reading history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err = rows.Scan(&entry.ID, &entry.Title, &entry.QRType, &entry.Payload, &entry.CreatedAt); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
