package media

import (
	"context"

	"github.com/ebelikov/go-qr-studio/models"
)

// Signer issues time-limited URLs granting read access to a single media
// object.
type Signer interface {
	Sign(ctx context.Context, req models.SignedURLRequest) (*models.SignedURLResponse, error)
}
