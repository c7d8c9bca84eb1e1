package handler

import (
	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/handler/http"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/service"
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
		HTTP: http.NewHandler(services, logger),
	}, nil
}
