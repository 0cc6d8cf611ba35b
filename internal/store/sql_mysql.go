package store

import (
	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
)

const driverMySQL = "mysql"

func mysqlDialect() Dialect {
	return Dialect{
		DriverName:  driverMySQL,
		Placeholder: sq.Question,
		Schema:      []string{createUsersTableMySQL, createTodosTableMySQL},
		Classifier:  NewMySQLErrorClassifier(),
	}
}
