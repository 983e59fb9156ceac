package http

import (
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
)

type Handler struct {
	services *service.Services

	userValidator validators.Validator
	taskValidator validators.Validator

	isProduction   bool
	tokenDuration  time.Duration
	clientURL      string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		userValidator:  validators.NewUserValidator(),
		taskValidator:  validators.NewTaskValidator(),
		isProduction:   cfg.App.IsProduction(),
		tokenDuration:  cfg.App.TokenDuration,
		clientURL:      cfg.App.ClientURL,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
