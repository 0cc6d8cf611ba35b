package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup by name, email or id matches
	// no user record. It signals absence, not a store failure.
	ErrUserNotFound = errors.New("user not found")

	// ErrStoreUnavailable is returned by ListUsers while the repository's
	// liveness flag is false.
	ErrStoreUnavailable = errors.New("store is unavailable")

	// ErrUnknownDriver is returned when the configured driver has no dialect.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are wrapped inside a [Failure]
// so callers can tell which step of an operation went wrong.
var (
	// ErrAcquiringConnection is returned when no connection to the store
	// could be opened or taken from the pool.
	ErrAcquiringConnection = errors.New("error acquiring connection")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrReadingResult is returned when the driver cannot report the inserted
	// id or the number of affected rows.
	ErrReadingResult = errors.New("failed to read statement result")
)
