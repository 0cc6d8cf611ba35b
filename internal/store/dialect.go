package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Dialect bundles everything that differs between the supported databases.
type Dialect struct {
	// DriverName is the database/sql driver the connector opens.
	DriverName string
	// Placeholder is the bind-parameter style used by the query builder.
	Placeholder sq.PlaceholderFormat
	// Schema holds the idempotent DDL statements run by EnsureSchema.
	Schema []string
	// ReturningID is set when inserted ids come from a RETURNING clause
	// instead of the driver's LastInsertId.
	ReturningID bool
	// Classifier maps driver errors to failure reasons.
	Classifier ErrorClassificator
}

// DialectFor returns the dialect registered for driver.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case driverSQLite:
		return sqliteDialect(), nil
	case driverPostgres:
		return postgresDialect(), nil
	case driverMySQL:
		return mysqlDialect(), nil
	default:
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
