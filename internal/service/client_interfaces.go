package service

import (
	"context"

	"github.com/ebelikov/go-qr-studio/internal/store"
	"github.com/ebelikov/go-qr-studio/models"
)

// ClientQRService is the terminal client's facade over the server API. It
// encodes, renders, and protects QR codes through the HTTP adapter and keeps
// the local generation history in sync.
type ClientQRService interface {
	// Encode asks the server for the payload string and renderability
	// verdict without producing an image. Used for live previews.
	Encode(ctx context.Context, content models.QRContent) (*models.EncodeResponse, error)

	// Generate renders content into a QR image via the server and records
	// the result in the local history under title.
	Generate(ctx context.Context, title string, content models.QRContent, opts models.RenderOptions) (*models.RenderResponse, error)

	// Protect registers a password-protected QR on the server and returns
	// the reveal URL to encode.
	Protect(ctx context.Context, req models.CreateProtectedRequest) (*models.CreateProtectedResponse, error)

	// SaveImage decodes a base64 PNG data URL and writes it to dir under
	// name, returning the full path of the written file.
	SaveImage(dataURL, dir, name string) (string, error)

	// ServerVersion fetches the server build version string.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientHistoryService manages the local record of previously generated
// codes.
type ClientHistoryService interface {
	// Record stores one generated code in the history.
	Record(ctx context.Context, title string, qrType models.ContentType, payload string) error

	// Recent returns the latest limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]store.HistoryEntry, error)
}
