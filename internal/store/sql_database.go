package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/sethvargo/go-retry"
)

// DB couples a [Connector] with the dialect-specific pieces every repository
// needs: the query builder and the error classifier.
type DB struct {
	connector          Connector
	dialect            Dialect
	queries            queryBuilder
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the store described by cfg and makes sure the schema exists.
//
// With cfg.Pooled unset every repository call opens and closes its own
// connection; otherwise calls share a pool of cfg.MaxOpenConns connections.
// Unavailable or busy failures are retried cfg.ConnectRetries times with
// exponential backoff.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("unsupported database driver")
		return nil, err
	}

	if dialect.DriverName == driverSQLite {
		if err = createLocalDBDirIfNotExists(cfg.DSN); err != nil {
			log.Err(err).Str("func", "NewDB").Msg("error creating database directory")
			return nil, err
		}
	}

	var db *DB
	attempt := 0
	backoff := retry.WithMaxRetries(cfg.ConnectRetries, retry.NewExponential(connectRetryDelay(cfg)))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		db, err = openDB(ctx, cfg, dialect, log)
		if err == nil {
			return nil
		}

		log.Err(err).
			Str("func", "NewDB").
			Int("attempt", attempt).
			Str("reason", ReasonOf(err).String()).
			Msg("error opening database")

		var failure *Failure
		if errors.As(err, &failure) && failure.Retryable() {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("func", "NewDB").
		Str("driver", cfg.Driver).
		Bool("pooled", cfg.Pooled).
		Int("attempts", attempt).
		Msg("connected to database successfully")

	return db, nil
}

func openDB(ctx context.Context, cfg config.DB, dialect Dialect, log *logger.Logger) (*DB, error) {
	var connector Connector
	if cfg.Pooled {
		maxOpen := cfg.MaxOpenConns
		if dialect.DriverName == driverSQLite {
			maxOpen = sqliteMaxOpenConns(cfg.DSN, maxOpen)
		}

		pool, err := NewPoolConnector(ctx, dialect.DriverName, cfg.DSN, maxOpen)
		if err != nil {
			return nil, &Failure{Op: "Connect", Reason: ReasonUnavailable, Err: err}
		}
		connector = pool
	} else {
		connector = NewPerCallConnector(dialect.DriverName, cfg.DSN)
	}

	db := newDB(connector, dialect, log)
	if err := db.EnsureSchema(ctx); err != nil {
		_ = connector.Close()
		return nil, err
	}

	return db, nil
}

func connectRetryDelay(cfg config.DB) time.Duration {
	if cfg.ConnectRetryDelay <= 0 {
		return config.DefaultRetryDelay
	}
	return cfg.ConnectRetryDelay
}

func newDB(connector Connector, dialect Dialect, log *logger.Logger) *DB {
	return &DB{
		connector:          connector,
		dialect:            dialect,
		queries:            newQueryBuilder(dialect),
		errorClassificator: dialect.Classifier,
		logger:             log,
	}
}

// EnsureSchema creates the users and todos tables when they are missing.
// Existing tables and rows are left untouched.
func (db *DB) EnsureSchema(ctx context.Context) error {
	return db.withTx(ctx, "EnsureSchema", func(tx *sqlx.Tx) error {
		for _, stmt := range db.dialect.Schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}

// InUse reports how many connections are currently acquired.
func (db *DB) InUse() int64 {
	return db.connector.InUse()
}

// Close releases the pool, if any.
func (db *DB) Close() error {
	return db.connector.Close()
}

// withConn acquires a connection, runs fn on it and releases the connection
// on every exit path. Errors from fn other than domain sentinels are wrapped
// into a *Failure for op.
func (db *DB) withConn(ctx context.Context, op string, fn func(conn Conn) error) error {
	log := logger.FromContextOr(ctx, db.logger)

	conn, release, err := db.connector.Acquire(ctx)
	if err != nil {
		log.Err(err).Str("func", "*DB."+op).Msg("error acquiring connection")
		return db.failure(op, err, ReasonUnavailable)
	}
	defer func() {
		if relErr := release(); relErr != nil {
			log.Warn().Err(relErr).Str("func", "*DB."+op).Msg("error releasing connection")
		}
	}()

	if err = fn(conn); err != nil {
		if isDomainError(err) {
			return err
		}
		log.Err(err).Str("func", "*DB."+op).Msg("store operation failed")
		return db.failure(op, err, ReasonUnknown)
	}

	return nil
}

// withTx runs fn inside a transaction on a freshly acquired connection and
// commits it when fn succeeds. The transaction is rolled back otherwise.
func (db *DB) withTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	return db.withConn(ctx, op, func(conn Conn) error {
		tx, err := conn.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if err = fn(tx); err != nil {
			return err
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}

		return nil
	})
}

// failure wraps err into a *Failure. fallback is used when the classifier
// does not recognise err.
func (db *DB) failure(op string, err error, fallback FailureReason) *Failure {
	reason := classify(db.errorClassificator, err)
	if reason == ReasonUnknown {
		reason = fallback
	}

	return &Failure{Op: op, Reason: reason, Err: err}
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrStoreUnavailable)
}
