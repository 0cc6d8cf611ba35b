package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "empty name",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Name = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory sqlite per call",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "in-memory sqlite pooled with shared cache",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.DSN = "file::memory:?cache=shared"
				cfg.Storage.DB.Pooled = true
			},
		},
		{
			name: "private in-memory sqlite with several pooled conns",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.DSN = ":memory:"
				cfg.Storage.DB.Pooled = true
				cfg.Storage.DB.MaxOpenConns = 4
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "private in-memory sqlite with one pooled conn",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.DSN = "file:users?mode=memory"
				cfg.Storage.DB.Pooled = true
				cfg.Storage.DB.MaxOpenConns = 1
			},
		},
		{
			name:    "empty created stamp",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.CreatedStamp = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "pooled without bound",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.DB.Pooled = true
				cfg.Storage.DB.MaxOpenConns = 0
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
