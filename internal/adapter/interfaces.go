// Package adapter provides transport-layer abstractions for communicating with
// the QR Studio server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrGone] for 410).
package adapter

import (
	"context"
	"io"

	"github.com/ebelikov/go-qr-studio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the QR Studio
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// Encode submits content for payload encoding and returns the exact
	// payload string plus the server's renderability verdict. Returns an
	// error if the request fails or the server responds with a non-2xx
	// status.
	Encode(ctx context.Context, content models.QRContent) (*models.EncodeResponse, error)

	// Render asks the server to rasterise content into a QR image with the
	// given options and returns the image as a base64 data URL. Returns
	// [ErrUnprocessable] (wrapped) if the content fails gating.
	Render(ctx context.Context, req models.RenderRequest) (*models.RenderResponse, error)

	// CreateProtected registers a password-protected QR on the server and
	// returns the reveal URL to encode. The plaintext password travels only
	// in this request body.
	CreateProtected(ctx context.Context, req models.CreateProtectedRequest) (*models.CreateProtectedResponse, error)

	// VerifyPassword checks a password attempt against a protected QR. A
	// wrong password is not an error: the response carries Success=false.
	// Transient network failures are retried once.
	VerifyPassword(ctx context.Context, req models.VerifyPasswordRequest) (*models.VerifyPasswordResponse, error)

	// SignMediaURL requests a time-limited download URL for a stored media
	// object.
	SignMediaURL(ctx context.Context, req models.SignedURLRequest) (*models.SignedURLResponse, error)

	// BulkCSV streams a CSV file to the server and returns the per-row
	// generation outcomes.
	BulkCSV(ctx context.Context, csv io.Reader) (*models.BulkResponse, error)

	// GetServerVersion fetches the server build version string.
	GetServerVersion(ctx context.Context) (string, error)
}
