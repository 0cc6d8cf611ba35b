package store

import (
	"context"
	"database/sql"

	"github.com/Infogain-GenAI/sample-app1/models"
	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=Conn,Connector,ErrorClassificator

// UserRepository persists user records in the "users" table.
//
// Lookups by name or email return the first match in id order and
// [ErrUserNotFound] when nothing matches. Update and delete report the number
// of affected rows; zero is not an error at this layer. Every method acquires
// its own connection and releases it before returning.
type UserRepository interface {
	EnsureSchema(ctx context.Context) error

	CreateUser(ctx context.Context, name, email string) (models.User, error)
	FindUserByName(ctx context.Context, name string) (models.User, error)
	FindUsersByName(ctx context.Context, name string) ([]models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUserEmail(ctx context.Context, name, email string) (int64, error)
	UpdateUserEmailByID(ctx context.Context, id int64, email string) (int64, error)
	DeleteUser(ctx context.Context, name string) (int64, error)
	DeleteUserByID(ctx context.Context, id int64) (int64, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// SetActive toggles the liveness flag. While it is false ListUsers
	// returns ErrStoreUnavailable; every other operation is unaffected.
	SetActive(active bool)
	Active() bool
}

// TodoRepository persists to-do items in the "todos" table.
type TodoRepository interface {
	CreateTodo(ctx context.Context, title string) (models.Todo, error)
	ListTodos(ctx context.Context) ([]models.Todo, error)
}

// Conn is the subset of a database handle the repositories need. Both
// *sqlx.DB and *sqlx.Conn satisfy it.
type Conn interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// Connector hands out database connections.
//
// Acquire returns a connection together with the function that releases it.
// The release function is safe to call more than once. InUse reports how
// many acquired connections have not been released yet.
type Connector interface {
	Acquire(ctx context.Context) (Conn, func() error, error)
	InUse() int64
	Close() error
}

// ErrorClassificator maps a driver error to a [FailureReason].
type ErrorClassificator interface {
	Classify(err error) FailureReason
}
