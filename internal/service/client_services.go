package service

import (
	"github.com/ebelikov/go-qr-studio/internal/adapter"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/store"
)

type ClientServices struct {
	QRService      ClientQRService
	HistoryService ClientHistoryService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	historySvc := NewClientHistoryService(storages.History, logger)

	return &ClientServices{
		QRService:      NewClientQRService(serverAdapter, historySvc, logger),
		HistoryService: historySvc,
	}
}
