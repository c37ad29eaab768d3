package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createProtectedQR = `INSERT INTO protected_qr (id, content_url, qr_type, password_hash, expires_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, content_url, qr_type, password_hash, created_at, expires_at;`

	getProtectedQR = `SELECT id, content_url, qr_type, password_hash, created_at, expires_at
    FROM protected_qr
    WHERE id = $1;`

	deleteExpiredProtectedQR = `DELETE FROM protected_qr
    WHERE expires_at IS NOT NULL AND expires_at < $1;`

	// client-side history schema, created lazily on first connect
	createHistoryTable = `CREATE TABLE IF NOT EXISTS history (
        id TEXT PRIMARY KEY,
        title TEXT NOT NULL DEFAULT '',
        qr_type TEXT NOT NULL,
        payload TEXT NOT NULL,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    );`

	insertHistoryEntry = `INSERT INTO history (id, title, qr_type, payload, created_at)
    VALUES (?, ?, ?, ?, ?);`

	selectRecentHistory = `SELECT id, title, qr_type, payload, created_at
    FROM history
    ORDER BY created_at DESC
    LIMIT ?;`
)

// buildListProtectedQRQuery assembles the filtered List query. Filters are
// optional, so the statement is built dynamically with Postgres placeholders.
func buildListProtectedQRQuery(filter ProtectedQRFilter) (string, []any, error) {
	builder := sq.
		Select("id", "content_url", "qr_type", "password_hash", "created_at", "expires_at").
		From("protected_qr").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.QRType != "" {
		builder = builder.Where(sq.Eq{"qr_type": string(filter.QRType)})
	}
	if !filter.CreatedAfter.IsZero() {
		builder = builder.Where(sq.Gt{"created_at": filter.CreatedAfter})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}
