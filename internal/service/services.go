package service

import (
	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/media"
	"github.com/ebelikov/go-qr-studio/internal/store"
)

type Services struct {
	EncodeService  EncodeService
	ProtectService ProtectService
	MediaService   MediaService
	BulkService    BulkService
	AppInfoService AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	signer := media.NewSigner(cfg.App, cfg.Storage.Media, logger)

	return &Services{
		EncodeService:  NewEncodeService(logger),
		ProtectService: NewProtectService(storages.ProtectedQR, cfg.App, logger),
		MediaService:   NewMediaService(signer, logger),
		BulkService:    NewBulkService(logger),
		AppInfoService: appInfoService,
	}, nil
}
