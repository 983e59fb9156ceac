package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Environment: config.EnvProduction}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestAppInfoService_ReportsConfiguredValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.App
	}{
		{"development", config.App{Version: "1.0.0", Environment: config.EnvDevelopment}},
		{"production", config.App{Version: "v1.2.3-beta+build.42", Environment: config.EnvProduction}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, logger.Nop())
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			assert.Equal(t, tt.cfg.Version, svc.GetAppVersion(ctx))
			assert.Equal(t, tt.cfg.Environment, svc.GetEnvironment(ctx))
		})
	}
}
