package models

import "time"

// ProtectedQR is the persisted record behind a password-protected QR code.
//
// The QR payload for a protected code is a reveal URL containing only the
// opaque ID. PasswordHash is a bcrypt digest; neither the hash nor the
// plaintext content ever appears in the payload string.
type ProtectedQR struct {
	ID           string      `json:"id"`
	ContentURL   string      `json:"contentUrl"`
	QRType       ContentType `json:"qrType"`
	PasswordHash string      `json:"-"`
	CreatedAt    time.Time   `json:"createdAt"`
	ExpiresAt    *time.Time  `json:"expiresAt,omitempty"`
}

// Expired reports whether the record has an expiry in the past relative to now.
func (p ProtectedQR) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}

// CreateProtectedRequest is the body of POST /api/protect.
// ExpiresIn is an optional lifetime in seconds.
type CreateProtectedRequest struct {
	Password   string      `json:"password"`
	ContentURL string      `json:"contentUrl"`
	QRType     ContentType `json:"qrType"`
	ExpiresIn  int64       `json:"expiresIn,omitempty"`
}

// CreateProtectedResponse returns the opaque identifier and the reveal URL
// that becomes the actual QR payload.
type CreateProtectedResponse struct {
	QRID      string     `json:"qrId"`
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// VerifyPasswordRequest is the body of POST /api/protect/verify.
type VerifyPasswordRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// VerifyPasswordResponse reports the outcome of a password check. URL is
// populated only on success; Error carries a human-readable reason otherwise.
type VerifyPasswordResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Error   string `json:"error,omitempty"`
}
