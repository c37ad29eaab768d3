package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/store"
	"github.com/ebelikov/go-qr-studio/internal/utils"
	"github.com/ebelikov/go-qr-studio/models"
)

// defaultHistoryLimit caps Recent when the caller passes a non-positive limit.
const defaultHistoryLimit = 20

type clientHistoryService struct {
	repository store.HistoryRepository
	uuidGen    *utils.UUIDGenerator
	logger     *logger.Logger
}

func NewClientHistoryService(repository store.HistoryRepository, logger *logger.Logger) ClientHistoryService {
	return &clientHistoryService{
		repository: repository,
		uuidGen:    utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

func (h *clientHistoryService) Record(ctx context.Context, title string, qrType models.ContentType, payload string) error {
	if payload == "" {
		return ErrInvalidDataProvided
	}

	entry := store.HistoryEntry{
		ID:        h.uuidGen.Generate(),
		Title:     title,
		QRType:    qrType,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.repository.Add(ctx, entry); err != nil {
		return fmt.Errorf("record history entry: %w", err)
	}

	return nil
}

func (h *clientHistoryService) Recent(ctx context.Context, limit int) ([]store.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := h.repository.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent history: %w", err)
	}

	return entries, nil
}
