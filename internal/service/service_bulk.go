package service

import (
	"context"
	"fmt"
	"io"

	"github.com/ebelikov/go-qr-studio/internal/bulk"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/payload"
	"github.com/ebelikov/go-qr-studio/internal/validators"
	"github.com/ebelikov/go-qr-studio/models"
)

// bulkService is the concrete implementation of BulkService.
// Each CSV row is validated and encoded independently; a failing row keeps
// its position in the result with the failure reason instead of aborting the
// whole run.
type bulkService struct {
	encoder   *payload.Encoder
	validator validators.Validator

	logger *logger.Logger
}

func NewBulkService(logger *logger.Logger) BulkService {
	return &bulkService{
		encoder:   payload.NewEncoder(),
		validator: validators.NewContentValidator(),
		logger:    logger,
	}
}

func (b *bulkService) GenerateFromCSV(ctx context.Context, r io.Reader) (*models.BulkResponse, error) {
	log := logger.FromContext(ctx)

	rows, err := bulk.Parse(r)
	if err != nil {
		log.Err(err).Msg("bulk csv parsing failed")
		return nil, fmt.Errorf("bulk csv parsing failed: %w", err)
	}

	resp := &models.BulkResponse{
		Items: make([]models.BulkItem, 0, len(rows)),
		Total: len(rows),
	}

	for _, row := range rows {
		item := models.BulkItem{
			Line:  row.Line,
			Title: row.Title,
		}

		if err := b.validator.Validate(ctx, row.Content); err != nil {
			item.Error = err.Error()
			resp.Failed++
		} else {
			item.Payload = b.encoder.Encode(row.Content)
		}

		resp.Items = append(resp.Items, item)
	}

	return resp, nil
}
