package client

import (
	"context"
	"fmt"

	"github.com/ebelikov/go-qr-studio/internal/adapter"
	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/service"
	"github.com/ebelikov/go-qr-studio/internal/store"
	"github.com/ebelikov/go-qr-studio/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
}

func NewApp(logger *logger.Logger) (Client, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	svcs := service.NewClientServices(storages, serverAdapter, logger)

	ui, err := tui.New(svcs, cfg.OutputDir, logger)
	if err != nil {
		return nil, fmt.Errorf("create terminal ui: %w", err)
	}

	return &App{services: svcs, tui: ui}, nil
}

func (a *App) Run() error {
	return a.tui.MainLoop(context.Background())
}
