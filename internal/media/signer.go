package media

import (
	"time"

	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
)

const defaultSignedURLTTL = 15 * time.Minute

// NewSigner selects the media backend from configuration. An S3 bucket takes
// precedence over local delivery.
func NewSigner(app config.App, cfg config.Media, log *logger.Logger) Signer {
	ttl := app.SignedURLTTL
	if ttl == 0 {
		ttl = defaultSignedURLTTL
	}

	if cfg.S3Bucket != "" {
		return NewS3Signer(cfg, ttl, log)
	}

	return NewLocalSigner(cfg, app.PublicBaseURL, app.URLSignKey, ttl, log)
}
