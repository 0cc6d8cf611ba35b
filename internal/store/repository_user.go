package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// userRepository is the SQL implementation of [UserRepository]. It handles
// user record creation, lookup, update and removal against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContextOr] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db           *DB
	logger       *logger.Logger
	createdStamp string
	active       atomic.Bool
}

// NewUserRepository constructs a [UserRepository] on top of db. Every
// inserted record gets createdStamp as its creation value. The repository
// starts active.
func NewUserRepository(db *DB, createdStamp string, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	r := &userRepository{
		db:           db,
		logger:       logger,
		createdStamp: createdStamp,
	}
	r.active.Store(true)

	return r
}

func (r *userRepository) EnsureSchema(ctx context.Context) error {
	return r.db.EnsureSchema(ctx)
}

// CreateUser inserts a record with the configured creation stamp and returns
// it with the id assigned by the store.
//
// Dialects with a RETURNING clause read the id from the inserted row; the
// others ask the driver for the last insert id.
func (r *userRepository) CreateUser(ctx context.Context, name, email string) (models.User, error) {
	log := logger.FromContextOr(ctx, r.logger)

	query, args, err := r.db.queries.insertUser(name, email, r.createdStamp)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.db.withTx(ctx, "CreateUser", func(tx *sqlx.Tx) error {
		var insertErr error
		id, insertErr = insertReturningID(ctx, tx, r.db.dialect.ReturningID, query, args...)
		return insertErr
	})
	if err != nil {
		return models.User{}, err
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("id", id).Msg("user created")

	return models.User{
		ID:      id,
		Name:    name,
		Email:   email,
		Created: r.createdStamp,
	}, nil
}

// FindUserByName returns the first record whose name equals name exactly.
func (r *userRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	return r.findFirst(ctx, "FindUserByName", sq.Eq{"name": name})
}

// FindUserByEmail returns the first record whose email equals email exactly.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findFirst(ctx, "FindUserByEmail", sq.Eq{"email": email})
}

// FindUsersByName returns every record named name in id order, so callers
// can pick one by id when names collide. The slice is empty, not nil, when
// nothing matches.
func (r *userRepository) FindUsersByName(ctx context.Context, name string) ([]models.User, error) {
	query, args, err := r.db.queries.selectUsersWhere(sq.Eq{"name": name})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.selectUsers(ctx, "FindUsersByName", query, args...)
}

func (r *userRepository) UpdateUserEmail(ctx context.Context, name, email string) (int64, error) {
	query, args, err := r.db.queries.updateUserEmail(sq.Eq{"name": name}, email)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffected(ctx, "UpdateUserEmail", query, args...)
}

func (r *userRepository) UpdateUserEmailByID(ctx context.Context, id int64, email string) (int64, error) {
	query, args, err := r.db.queries.updateUserEmail(sq.Eq{"id": id}, email)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffected(ctx, "UpdateUserEmailByID", query, args...)
}

// DeleteUser removes every record named name.
func (r *userRepository) DeleteUser(ctx context.Context, name string) (int64, error) {
	query, args, err := r.db.queries.deleteUsers(sq.Eq{"name": name})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffected(ctx, "DeleteUser", query, args...)
}

func (r *userRepository) DeleteUserByID(ctx context.Context, id int64) (int64, error) {
	query, args, err := r.db.queries.deleteUsers(sq.Eq{"id": id})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffected(ctx, "DeleteUserByID", query, args...)
}

// ListUsers returns all records in the order the store yields them.
// It returns [ErrStoreUnavailable] without touching the store while the
// repository is inactive.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if !r.active.Load() {
		logger.FromContextOr(ctx, r.logger).Warn().
			Str("func", "*userRepository.ListUsers").
			Msg("bulk read requested while store is inactive")
		return nil, ErrStoreUnavailable
	}

	query, args, err := r.db.queries.selectAllUsers()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.selectUsers(ctx, "ListUsers", query, args...)
}

func (r *userRepository) SetActive(active bool) {
	r.active.Store(active)
}

func (r *userRepository) Active() bool {
	return r.active.Load()
}

func (r *userRepository) findFirst(ctx context.Context, op string, where sq.Eq) (models.User, error) {
	query, args, err := r.db.queries.selectFirstUser(where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withConn(ctx, op, func(conn Conn) error {
		if err := sqlx.GetContext(ctx, conn, &user, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (r *userRepository) selectUsers(ctx context.Context, op, query string, args ...any) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.db.withConn(ctx, op, func(conn Conn) error {
		if err := sqlx.SelectContext(ctx, conn, &users, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepository) execAffected(ctx context.Context, op, query string, args ...any) (int64, error) {
	var affected int64
	err := r.db.withTx(ctx, op, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrReadingResult, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.FromContextOr(ctx, r.logger).Debug().
		Str("func", "*userRepository."+op).
		Int64("affected", affected).
		Msg("statement executed")

	return affected, nil
}

// insertReturningID runs an INSERT and returns the id the store assigned.
func insertReturningID(ctx context.Context, tx *sqlx.Tx, returning bool, query string, args ...any) (int64, error) {
	var id int64
	if returning {
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return id, nil
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrReadingResult, err)
	}

	return id, nil
}
