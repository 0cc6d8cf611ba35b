package handler

import (
	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/handler/http"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
