package service

import (
	"context"

	"github.com/Infogain-GenAI/sample-app1/models"
)

// UserService is the typed API over the user store. Absence is reported as
// store.ErrUserNotFound and store failures keep their *store.Failure type.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, name string) (models.User, error)
	FindUsersByName(ctx context.Context, name string) ([]models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	UpdateUserEmail(ctx context.Context, name, email string) error
	UpdateUserEmailByID(ctx context.Context, id int64, email string) error
	DeleteUser(ctx context.Context, name string) error
	DeleteUserByID(ctx context.Context, id int64) error

	SetActive(active bool)
	Active() bool
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

// UserManager is the boolean convenience API over user records.
//
// Every failure is logged and reported as false. GetAllUsers returns
// ok=false when the listing is unavailable, which is distinct from an empty
// listing.
type UserManager interface {
	AddUser(ctx context.Context, name, email string) bool
	GetUser(ctx context.Context, name string) (models.User, bool)
	FindUserByEmail(ctx context.Context, email string) (models.User, bool)
	UpdateUser(ctx context.Context, name, email string) bool
	DeleteUser(ctx context.Context, name string) bool
	GetAllUsers(ctx context.Context) ([]models.User, bool)
}

type TodoService interface {
	CreateTodo(ctx context.Context, title string) (models.Todo, error)
	ListTodos(ctx context.Context) ([]models.Todo, error)
}

type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
