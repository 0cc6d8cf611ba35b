package http

import (
	"time"

	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/service"
)

type Handler struct {
	services *service.Services

	staticDir      string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		staticDir:      cfg.StaticDir,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
