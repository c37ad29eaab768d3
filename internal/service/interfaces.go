package service

import (
	"context"
	"io"
	"os"

	"github.com/ebelikov/go-qr-studio/models"
)

// EncodeService turns structured content into QR payload strings and
// rasterised QR images.
type EncodeService interface {
	// Encode produces the payload for the given content together with the
	// gating verdict. The payload is always computed, even when the content
	// fails validation.
	Encode(ctx context.Context, content models.QRContent) (*models.EncodeResponse, error)

	// Render validates the content, encodes it, and rasterises the payload
	// into a PNG data URL.
	Render(ctx context.Context, req models.RenderRequest) (*models.RenderResponse, error)
}

// ProtectService manages password-protected QR codes. The payload of a
// protected code is a reveal URL carrying only an opaque identifier.
type ProtectService interface {
	Create(ctx context.Context, req models.CreateProtectedRequest) (*models.CreateProtectedResponse, error)
	Verify(ctx context.Context, req models.VerifyPasswordRequest) (*models.VerifyPasswordResponse, error)
}

// MediaService issues signed URLs for uploaded media objects.
type MediaService interface {
	SignURL(ctx context.Context, req models.SignedURLRequest) (*models.SignedURLResponse, error)

	// OpenLocal resolves a capability token issued by the local media backend
	// and opens the object it names. Returns media.ErrNotLocalBackend when
	// media is served from S3.
	OpenLocal(ctx context.Context, token string) (*os.File, error)
}

// BulkService generates payloads for many rows of content at once.
type BulkService interface {
	GenerateFromCSV(ctx context.Context, r io.Reader) (*models.BulkResponse, error)
}

// AppInfoService exposes application metadata such as the running version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
