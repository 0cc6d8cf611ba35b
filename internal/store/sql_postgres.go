package store

import (
	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// driverPostgres is the name pgx registers with database/sql.
const driverPostgres = "pgx"

func postgresDialect() Dialect {
	return Dialect{
		DriverName:  driverPostgres,
		Placeholder: sq.Dollar,
		Schema:      []string{createUsersTablePostgres, createTodosTablePostgres},
		ReturningID: true,
		Classifier:  NewPostgresErrorClassifier(),
	}
}
