package handler

import (
	"github.com/ebelikov/go-qr-studio/internal/config"
	"github.com/ebelikov/go-qr-studio/internal/handler/http"
	"github.com/ebelikov/go-qr-studio/internal/logger"
	"github.com/ebelikov/go-qr-studio/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
