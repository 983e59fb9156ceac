package service

import (
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	TaskService    TaskService
	AppInfoService AppInfoService
}

// NewServices resolves the key material in cfg and builds every service on
// top of storages. Any failure here is a configuration error.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	key, err := config.ResolveEncryptionKey(cfg.App)
	if err != nil {
		return nil, err
	}
	fieldCipher, err := crypto.NewFieldCipher(key, logger)
	if err != nil {
		return nil, err
	}

	hasher, err := crypto.NewPasswordHasher()
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	authService, err := NewAuthService(storages.UserRepository, hasher, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    authService,
		TaskService:    NewTaskService(storages.TaskRepository, fieldCipher, logger),
		AppInfoService: appInfoService,
	}, nil
}
