package http

import (
	"context"

	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/service"
	"github.com/Infogain-GenAI/sample-app1/models"
)

// ---- Mock: UserService ----

type mockUserService struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	getFn         func(ctx context.Context, name string) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	listFn        func(ctx context.Context) ([]models.User, error)
	updateFn      func(ctx context.Context, name, email string) error
	deleteFn      func(ctx context.Context, name string) error

	active bool
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = 1
	return user, nil
}

func (m *mockUserService) GetUser(ctx context.Context, name string) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, name)
	}
	return models.User{}, nil
}

func (m *mockUserService) FindUsersByName(_ context.Context, _ string) ([]models.User, error) {
	return nil, nil
}

func (m *mockUserService) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserService) UpdateUserEmail(ctx context.Context, name, email string) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, name, email)
	}
	return nil
}

func (m *mockUserService) UpdateUserEmailByID(_ context.Context, _ int64, _ string) error {
	return nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, name string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, name)
	}
	return nil
}

func (m *mockUserService) DeleteUserByID(_ context.Context, _ int64) error {
	return nil
}

func (m *mockUserService) SetActive(active bool) { m.active = active }
func (m *mockUserService) Active() bool          { return m.active }

// ---- Mock: TodoService ----

type mockTodoService struct {
	createFn func(ctx context.Context, title string) (models.Todo, error)
	listFn   func(ctx context.Context) ([]models.Todo, error)
}

func (m *mockTodoService) CreateTodo(ctx context.Context, title string) (models.Todo, error) {
	if m.createFn != nil {
		return m.createFn(ctx, title)
	}
	return models.Todo{ID: 1, Title: title}, nil
}

func (m *mockTodoService) ListTodos(ctx context.Context) ([]models.Todo, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// ---- Mock: AppInfoService ----

type mockAppInfoService struct {
	name    string
	version string
}

func (m *mockAppInfoService) GetAppName(_ context.Context) string {
	return m.name
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ---- Helper ----

func newTestServices(users *mockUserService, todos *mockTodoService) *service.Services {
	if users == nil {
		users = &mockUserService{}
	}
	if todos == nil {
		todos = &mockTodoService{}
	}
	return &service.Services{
		UserService:    users,
		TodoService:    todos,
		AppInfoService: &mockAppInfoService{name: "sample-app", version: "test-version"},
	}
}

func newTestRouterWith(services *service.Services, cfg config.Server) *Handler {
	return NewHandler(services, cfg, logger.Nop())
}
