package store

import (
	"context"

	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
)

// Storages groups the repositories built on one database.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	TodoRepository TodoRepository
}

// NewStorages opens the database described by cfg and builds every
// repository on top of it.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, cfg.CreatedStamp, log),
		TodoRepository: NewTodoRepository(db, log),
	}, nil
}

// Close releases the underlying database.
func (s *Storages) Close() error {
	return s.DB.Close()
}
