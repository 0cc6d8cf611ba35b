package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver and maps it
// to a [FailureReason].
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It attempts to unwrap err as a
// *pgconn.PgError and delegates to [ClassifyPgError]. Connection setup
// failures (*pgconn.ConnectError) are [ReasonUnavailable]. Anything else is
// [ReasonUnknown].
func (c *PostgresErrorClassifier) Classify(err error) FailureReason {
	if err == nil {
		return ReasonUnknown
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return ReasonUnavailable
	}

	// Attempt to unwrap to a pgconn.PgError.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return ReasonUnknown
}

// ClassifyPgError maps a *pgconn.PgError to a [FailureReason] based on the
// PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
//   - Class 08 connection exceptions, 57P03 cannot_connect_now: unavailable
//   - Class 40 transaction rollback, 55P03 lock_not_available: busy
//   - Class 23 integrity constraint violations: constraint
//   - 25006 read_only_sql_transaction: read-only
//   - XX001 data_corrupted, XX002 index_corrupted: corrupt
//   - Class 58 system errors, 53100 disk_full: io
//
// Any code not listed above is classified as [ReasonUnknown].
func ClassifyPgError(pgErr *pgconn.PgError) FailureReason {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code), code == pgerrcode.CannotConnectNow:
		return ReasonUnavailable
	case pgerrcode.IsTransactionRollback(code), code == pgerrcode.LockNotAvailable:
		return ReasonBusy
	case pgerrcode.IsIntegrityConstraintViolation(code):
		return ReasonConstraint
	}

	switch code {
	case pgerrcode.ReadOnlySQLTransaction:
		return ReasonReadOnly
	case pgerrcode.DataCorrupted, pgerrcode.IndexCorrupted:
		return ReasonCorrupt
	case pgerrcode.DiskFull:
		return ReasonIO
	}

	if pgerrcode.IsSystemError(code) {
		return ReasonIO
	}

	return ReasonUnknown
}
