package store

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the classifier recognises.
const (
	mysqlDuplicateEntry      = 1062
	mysqlColumnCannotBeNull  = 1048
	mysqlNoReferencedRow     = 1452
	mysqlLockWaitTimeout     = 1205
	mysqlDeadlock            = 1213
	mysqlOptionPreventsWrite = 1290
	mysqlReadOnlyTransaction = 1792
	mysqlInnodbReadOnly      = 1874
	mysqlTableCorrupt        = 1194
	mysqlDiskFull            = 1021
	mysqlTooManyConnections  = 1040
)

// MySQLErrorClassifier implements [ErrorClassificator] for MySQL using the
// server error number carried by *mysql.MySQLError.
type MySQLErrorClassifier struct{}

// NewMySQLErrorClassifier constructs a [MySQLErrorClassifier].
func NewMySQLErrorClassifier() *MySQLErrorClassifier {
	return &MySQLErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *MySQLErrorClassifier) Classify(err error) FailureReason {
	if errors.Is(err, mysql.ErrInvalidConn) {
		return ReasonUnavailable
	}

	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return ReasonUnknown
	}

	switch myErr.Number {
	case mysqlTooManyConnections:
		return ReasonUnavailable
	case mysqlDuplicateEntry, mysqlColumnCannotBeNull, mysqlNoReferencedRow:
		return ReasonConstraint
	case mysqlLockWaitTimeout, mysqlDeadlock:
		return ReasonBusy
	case mysqlOptionPreventsWrite, mysqlReadOnlyTransaction, mysqlInnodbReadOnly:
		return ReasonReadOnly
	case mysqlTableCorrupt:
		return ReasonCorrupt
	case mysqlDiskFull:
		return ReasonIO
	default:
		return ReasonUnknown
	}
}
