package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Infogain-GenAI/sample-app1/internal/adapter"
	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/service"
	"github.com/Infogain-GenAI/sample-app1/internal/store"
)

// options are the connection settings shared by every subcommand.
type options struct {
	server  string
	dsn     string
	driver  string
	timeout time.Duration
	debug   bool
}

// session is an open user API plus whatever must be released afterwards.
type session struct {
	users   service.UserManager
	version func(ctx context.Context) (string, error)
	close   func() error
}

type connectFunc func(ctx context.Context, opts options, log *logger.Logger) (*session, error)

// connect talks to the server at opts.server when set and opens the
// configured database otherwise.
func connect(ctx context.Context, opts options, log *logger.Logger) (*session, error) {
	if opts.server != "" {
		return connectRemote(opts, log)
	}

	return connectLocal(ctx, opts, log)
}

func connectRemote(opts options, log *logger.Logger) (*session, error) {
	remote, err := adapter.NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    opts.server,
		RequestTimeout: opts.timeout,
	}, log)
	if err != nil {
		return nil, err
	}

	return &session{
		users:   remote,
		version: remote.Version,
		close:   func() error { return nil },
	}, nil
}

func connectLocal(ctx context.Context, opts options, log *logger.Logger) (*session, error) {
	cfg, err := config.GetStructuredConfig(nil)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	if opts.driver != "" {
		cfg.Storage.DB.Driver = opts.driver
	}
	if opts.dsn != "" {
		cfg.Storage.DB.DSN = opts.dsn
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	return &session{
		users: services.UserManager,
		version: func(ctx context.Context) (string, error) {
			return services.AppInfoService.GetAppVersion(ctx), nil
		},
		close: storages.Close,
	}, nil
}
