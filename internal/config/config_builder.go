package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// Default values applied before any other source.
const (
	DefaultAppName        = "sample-app"
	DefaultAppVersion     = "dev"
	DefaultDriver         = "sqlite3"
	DefaultDSN            = "data/app.db"
	DefaultCreatedStamp   = "2024-01-01"
	DefaultMaxOpenConns   = 4
	DefaultRetryDelay     = 500 * time.Millisecond
	DefaultHTTPAddress    = ":8000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultStaticDir      = "frontend"
	DefaultDotenvPath     = ".env"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func (b *configBuilder) withDotenv() *configBuilder {
	path := os.Getenv("DOTENV")
	if path == "" {
		path = DefaultDotenvPath
	}

	if err := loadDotenv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    DefaultAppName,
			Version: DefaultAppVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DefaultDriver,
				DSN:          DefaultDSN,
				CreatedStamp: DefaultCreatedStamp,
				MaxOpenConns: DefaultMaxOpenConns,

				ConnectRetryDelay: DefaultRetryDelay,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			StaticDir:      DefaultStaticDir,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost" + DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
