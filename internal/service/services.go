package service

import (
	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/store"
)

// Services groups the application services built on one set of storages.
//
// UserService validates its input and is meant for untrusted callers such
// as the HTTP API. UserManager sits on the unvalidated service, so it stores
// whatever it is given.
type Services struct {
	UserService    UserService
	UserManager    UserManager
	TodoService    TodoService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserService(storages.UserRepository, cfg.Storage.DB, logger)

	return &Services{
		UserService:    NewUserValidationService().Wrap(userService),
		UserManager:    NewUserManager(userService, logger),
		TodoService:    NewTodoService(storages.TodoRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
