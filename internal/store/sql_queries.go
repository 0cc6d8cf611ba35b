package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUsersTableSQLite = `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		created TEXT NOT NULL
	);`
	createTodosTableSQLite = `CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL
	);`

	createUsersTablePostgres = `CREATE TABLE IF NOT EXISTS users (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		created TEXT NOT NULL
	);`
	createTodosTablePostgres = `CREATE TABLE IF NOT EXISTS todos (
		id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
		title TEXT NOT NULL
	);`

	createUsersTableMySQL = `CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		created TEXT NOT NULL
	);`
	createTodosTableMySQL = `CREATE TABLE IF NOT EXISTS todos (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		title TEXT NOT NULL
	);`
)

const (
	usersTable = "users"
	todosTable = "todos"
)

var (
	userColumns = []string{"id", "name", "email", "created"}
	todoColumns = []string{"id", "title"}
)

// queryBuilder renders the repository statements for one dialect.
type queryBuilder struct {
	sb          sq.StatementBuilderType
	returningID bool
}

func newQueryBuilder(d Dialect) queryBuilder {
	return queryBuilder{
		sb:          sq.StatementBuilder.PlaceholderFormat(d.Placeholder),
		returningID: d.ReturningID,
	}
}

func (q queryBuilder) insertUser(name, email, created string) (string, []any, error) {
	b := q.sb.Insert(usersTable).
		Columns("name", "email", "created").
		Values(name, email, created)
	if q.returningID {
		b = b.Suffix("RETURNING id")
	}

	return b.ToSql()
}

// selectFirstUser returns the lowest-id user matching where.
func (q queryBuilder) selectFirstUser(where sq.Eq) (string, []any, error) {
	return q.sb.Select(userColumns...).
		From(usersTable).
		Where(where).
		OrderBy("id").
		Limit(1).
		ToSql()
}

func (q queryBuilder) selectUsersWhere(where sq.Eq) (string, []any, error) {
	return q.sb.Select(userColumns...).
		From(usersTable).
		Where(where).
		OrderBy("id").
		ToSql()
}

// selectAllUsers leaves the row order to the store.
func (q queryBuilder) selectAllUsers() (string, []any, error) {
	return q.sb.Select(userColumns...).
		From(usersTable).
		ToSql()
}

func (q queryBuilder) updateUserEmail(where sq.Eq, email string) (string, []any, error) {
	return q.sb.Update(usersTable).
		Set("email", email).
		Where(where).
		ToSql()
}

func (q queryBuilder) deleteUsers(where sq.Eq) (string, []any, error) {
	return q.sb.Delete(usersTable).
		Where(where).
		ToSql()
}

func (q queryBuilder) insertTodo(title string) (string, []any, error) {
	b := q.sb.Insert(todosTable).
		Columns("title").
		Values(title)
	if q.returningID {
		b = b.Suffix("RETURNING id")
	}

	return b.ToSql()
}

func (q queryBuilder) selectAllTodos() (string, []any, error) {
	return q.sb.Select(todoColumns...).
		From(todosTable).
		OrderBy("id").
		ToSql()
}
