package store

import (
	"context"
	"fmt"

	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/models"
	"github.com/jmoiron/sqlx"
)

type todoRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTodoRepository constructs a [TodoRepository] on top of db.
func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *todoRepository) CreateTodo(ctx context.Context, title string) (models.Todo, error) {
	query, args, err := r.db.queries.insertTodo(title)
	if err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.db.withTx(ctx, "CreateTodo", func(tx *sqlx.Tx) error {
		var insertErr error
		id, insertErr = insertReturningID(ctx, tx, r.db.dialect.ReturningID, query, args...)
		return insertErr
	})
	if err != nil {
		return models.Todo{}, err
	}

	logger.FromContextOr(ctx, r.logger).Debug().
		Str("func", "*todoRepository.CreateTodo").
		Int64("id", id).
		Msg("todo created")

	return models.Todo{ID: id, Title: title}, nil
}

func (r *todoRepository) ListTodos(ctx context.Context) ([]models.Todo, error) {
	query, args, err := r.db.queries.selectAllTodos()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	todos := make([]models.Todo, 0)
	err = r.db.withConn(ctx, "ListTodos", func(conn Conn) error {
		if err := sqlx.SelectContext(ctx, conn, &todos, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return todos, nil
}
