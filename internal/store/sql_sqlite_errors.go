package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite using the
// primary result code carried by sqlite3.Error.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) FailureReason {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return ReasonUnknown
	}

	switch sqliteErr.Code {
	case sqlite3.ErrCantOpen:
		return ReasonUnavailable
	case sqlite3.ErrConstraint:
		return ReasonConstraint
	case sqlite3.ErrReadonly:
		return ReasonReadOnly
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return ReasonBusy
	case sqlite3.ErrCorrupt, sqlite3.ErrNotADB:
		return ReasonCorrupt
	case sqlite3.ErrIoErr, sqlite3.ErrFull:
		return ReasonIO
	default:
		return ReasonUnknown
	}
}
