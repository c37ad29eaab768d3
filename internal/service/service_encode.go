package service

import (
	"context"
	"fmt"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/payload"
	"github.com/ebelikov/go-qr-studio/internal/render"
	"github.com/ebelikov/go-qr-studio/internal/validators"
	"github.com/ebelikov/go-qr-studio/models"
)

// encodeService is the concrete implementation of EncodeService.
// It composes the payload encoder with the content validator: validation
// failures never suppress the payload, they only flip the renderable flag.
type encodeService struct {
	encoder   *payload.Encoder
	validator validators.Validator

	logger *logger.Logger
}

// NewEncodeService constructs an EncodeService with the default encoder and
// content validator.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewEncodeService(logger *logger.Logger) EncodeService {
	return &encodeService{
		encoder:   payload.NewEncoder(),
		validator: validators.NewContentValidator(),
		logger:    logger,
	}
}

func (s *encodeService) Encode(ctx context.Context, content models.QRContent) (*models.EncodeResponse, error) {
	resp := &models.EncodeResponse{
		Payload:    s.encoder.Encode(content),
		Renderable: true,
	}

	if err := s.validator.Validate(ctx, content); err != nil {
		resp.Renderable = false
		resp.Reason = err.Error()
	}

	return resp, nil
}

func (s *encodeService) Render(ctx context.Context, req models.RenderRequest) (*models.RenderResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req.Content); err != nil {
		log.Err(err).Str("type", string(req.Content.Type)).Msg("content failed validation before rendering")
		return nil, fmt.Errorf("content failed validation before rendering: %w", err)
	}

	encoded := s.encoder.Encode(req.Content)

	dataURL, err := render.DataURL(encoded, req.Options)
	if err != nil {
		log.Err(err).Str("type", string(req.Content.Type)).Msg("rendering qr code failed")
		return nil, fmt.Errorf("rendering qr code failed: %w", err)
	}

	return &models.RenderResponse{
		Payload: encoded,
		DataURL: dataURL,
	}, nil
}
