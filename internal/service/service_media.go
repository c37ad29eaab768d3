package service

import (
	"context"
	"fmt"
	"os"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/media"
	"github.com/ebelikov/go-qr-studio/models"
)

// mediaService is the concrete implementation of MediaService.
// The actual URL signing is delegated to the configured media backend.
type mediaService struct {
	signer media.Signer

	logger *logger.Logger
}

func NewMediaService(signer media.Signer, logger *logger.Logger) MediaService {
	return &mediaService{
		signer: signer,
		logger: logger,
	}
}

func (m *mediaService) SignURL(ctx context.Context, req models.SignedURLRequest) (*models.SignedURLResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := m.signer.Sign(ctx, req)
	if err != nil {
		log.Err(err).Str("path", req.Path).Msg("media url signing failed")
		return nil, fmt.Errorf("media url signing failed: %w", err)
	}

	return resp, nil
}

func (m *mediaService) OpenLocal(ctx context.Context, token string) (*os.File, error) {
	log := logger.FromContext(ctx)

	local, ok := m.signer.(*media.LocalSigner)
	if !ok {
		return nil, media.ErrNotLocalBackend
	}

	f, err := local.Open(token)
	if err != nil {
		log.Err(err).Msg("media token resolution failed")
		return nil, fmt.Errorf("media token resolution failed: %w", err)
	}

	return f, nil
}
