package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/models"
	"github.com/jackc/pgerrcode"
)

// protectedQRRepository is the PostgreSQL-backed implementation of
// [ProtectedQRRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type protectedQRRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProtectedQRRepository constructs a [ProtectedQRRepository] backed by the
// provided database connection and logger.
func NewProtectedQRRepository(db *DB, logger *logger.Logger) ProtectedQRRepository {
	logger.Debug().Msg("creating protected qr repository")
	return &protectedQRRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new protected QR record.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDuplicateID].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *protectedQRRepository) Create(ctx context.Context, qr models.ProtectedQR) (models.ProtectedQR, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createProtectedQR,
		qr.ID, qr.ContentURL, qr.QRType, qr.PasswordHash, qr.ExpiresAt)

	var saved models.ProtectedQR
	if err := row.Scan(&saved.ID, &saved.ContentURL, &saved.QRType, &saved.PasswordHash, &saved.CreatedAt, &saved.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*protectedQRRepository.Create").Msg("error saving protected qr")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.ProtectedQR{}, ErrDuplicateID
		default:
			return models.ProtectedQR{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return saved, nil
}

// Get retrieves a protected QR record by id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrProtectedQRNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *protectedQRRepository) Get(ctx context.Context, id string) (models.ProtectedQR, error) {
	log := logger.FromContext(ctx)

	var qr models.ProtectedQR
	row := r.db.QueryRowContext(ctx, getProtectedQR, id)

	if err := row.Scan(&qr.ID, &qr.ContentURL, &qr.QRType, &qr.PasswordHash, &qr.CreatedAt, &qr.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProtectedQR{}, ErrProtectedQRNotFound
		}

		log.Err(err).Str("func", "*protectedQRRepository.Get").Msg("error scanning protected qr")
		return models.ProtectedQR{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return qr, nil
}

// List returns records matching the filter, newest first.
func (r *protectedQRRepository) List(ctx context.Context, filter ProtectedQRFilter) ([]models.ProtectedQR, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProtectedQRQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*protectedQRRepository.List").Msg("error building list query")
		return nil, fmt.Errorf("error building list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*protectedQRRepository.List").Msg("error executing list query")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var result []models.ProtectedQR
	for rows.Next() {
		var qr models.ProtectedQR
		if err = rows.Scan(&qr.ID, &qr.ContentURL, &qr.QRType, &qr.PasswordHash, &qr.CreatedAt, &qr.ExpiresAt); err != nil {
			log.Err(err).Str("func", "*protectedQRRepository.List").Msg("error scanning protected qr row")
			return nil, err
		}

		result = append(result, qr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return result, nil
}

// DeleteExpired purges every record whose expiry is before now.
func (r *protectedQRRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteExpiredProtectedQR, now)
	if err != nil {
		log.Err(err).Str("func", "*protectedQRRepository.DeleteExpired").Msg("error deleting expired records")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	purged, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}

	return purged, nil
}
