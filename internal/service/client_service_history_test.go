package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/mock"
	"github.com/ebelikov/go-qr-studio/internal/store"
	"github.com/ebelikov/go-qr-studio/models"
)

func TestClientHistoryService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockHistoryRepository(ctrl)
	repo.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry store.HistoryEntry) error {
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, "Office wifi", entry.Title)
			assert.Equal(t, models.TypeWifi, entry.QRType)
			assert.Equal(t, "WIFI:T:WPA;S:Office;P:p;H:false;;", entry.Payload)
			assert.WithinDuration(t, time.Now().UTC(), entry.CreatedAt, time.Minute)
			return nil
		})

	svc := NewClientHistoryService(repo, logger.Nop())

	err := svc.Record(context.Background(), "Office wifi", models.TypeWifi, "WIFI:T:WPA;S:Office;P:p;H:false;;")
	require.NoError(t, err)
}

func TestClientHistoryService_RecordEmptyPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewClientHistoryService(mock.NewMockHistoryRepository(ctrl), logger.Nop())

	err := svc.Record(context.Background(), "Empty", models.TypeText, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientHistoryService_RecordRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockHistoryRepository(ctrl)
	repo.EXPECT().Add(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	svc := NewClientHistoryService(repo, logger.Nop())

	err := svc.Record(context.Background(), "Site", models.TypeURL, "https://example.com")
	assert.Error(t, err)
}

func TestClientHistoryService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := []store.HistoryEntry{
		{ID: "2", Title: "Newest", QRType: models.TypeURL, Payload: "https://b.example.com"},
		{ID: "1", Title: "Older", QRType: models.TypeURL, Payload: "https://a.example.com"},
	}

	repo := mock.NewMockHistoryRepository(ctrl)
	repo.EXPECT().Recent(gomock.Any(), 2).Return(entries, nil)

	svc := NewClientHistoryService(repo, logger.Nop())

	got, err := svc.Recent(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestClientHistoryService_RecentDefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockHistoryRepository(ctrl)
	repo.EXPECT().Recent(gomock.Any(), defaultHistoryLimit).Return(nil, nil)

	svc := NewClientHistoryService(repo, logger.Nop())

	_, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
}
