// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_insertUser(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{
			name:    "sqlite",
			dialect: sqliteDialect(),
			want:    "INSERT INTO users (name,email,created) VALUES (?,?,?)",
		},
		{
			name:    "mysql",
			dialect: mysqlDialect(),
			want:    "INSERT INTO users (name,email,created) VALUES (?,?,?)",
		},
		{
			name:    "postgres returns id",
			dialect: postgresDialect(),
			want:    "INSERT INTO users (name,email,created) VALUES ($1,$2,$3) RETURNING id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := newQueryBuilder(tt.dialect).insertUser("Alice", "a@x.com", "2024-01-01")
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"Alice", "a@x.com", "2024-01-01"}, args)
		})
	}
}

func Test_selectFirstUser_OrdersByIDAndLimits(t *testing.T) {
	query, args, err := newQueryBuilder(postgresDialect()).selectFirstUser(sq.Eq{"email": "a@x.com"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, email, created FROM users WHERE email = $1 ORDER BY id LIMIT 1", query)
	assert.Equal(t, []any{"a@x.com"}, args)
}

func Test_selectUsersWhere_NoLimit(t *testing.T) {
	query, _, err := newQueryBuilder(sqliteDialect()).selectUsersWhere(sq.Eq{"name": "Alice"})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(query, "ORDER BY id"))
	assert.NotContains(t, query, "LIMIT")
}

// The bulk read keeps the store's native order.
func Test_selectAllUsers_NoOrdering(t *testing.T) {
	query, args, err := newQueryBuilder(sqliteDialect()).selectAllUsers()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, email, created FROM users", query)
	assert.Empty(t, args)
}

func Test_updateUserEmail(t *testing.T) {
	query, args, err := newQueryBuilder(postgresDialect()).updateUserEmail(sq.Eq{"name": "Alice"}, "new@x.com")
	require.NoError(t, err)

	assert.Equal(t, "UPDATE users SET email = $1 WHERE name = $2", query)
	assert.Equal(t, []any{"new@x.com", "Alice"}, args)
}

func Test_deleteUsers(t *testing.T) {
	query, args, err := newQueryBuilder(mysqlDialect()).deleteUsers(sq.Eq{"id": int64(5)})
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM users WHERE id = ?", query)
	assert.Equal(t, []any{int64(5)}, args)
}

func Test_todoQueries(t *testing.T) {
	qb := newQueryBuilder(postgresDialect())

	query, args, err := qb.insertTodo("buy milk")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO todos (title) VALUES ($1) RETURNING id", query)
	assert.Equal(t, []any{"buy milk"}, args)

	query, _, err = qb.selectAllTodos()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, title FROM todos ORDER BY id", query)
}

func TestDialectFor(t *testing.T) {
	for _, driver := range []string{"sqlite3", "pgx", "mysql"} {
		d, err := DialectFor(driver)
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.DriverName)
		assert.Len(t, d.Schema, 2)
		assert.NotNil(t, d.Classifier)
		for _, stmt := range d.Schema {
			assert.Contains(t, stmt, "CREATE TABLE IF NOT EXISTS")
		}
	}

	_, err := DialectFor("oracle")
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func Test_sqliteFilePath(t *testing.T) {
	tests := map[string]string{
		"data/app.db":                "data/app.db",
		"file:data/app.db?mode=ro":   "data/app.db",
		"file:/tmp/x.db":             "/tmp/x.db",
		":memory:":                   "",
		"file::memory:?cache=shared": "",
		"":                           "",
	}

	for dsn, want := range tests {
		assert.Equal(t, want, sqliteFilePath(dsn), dsn)
	}
}

func Test_sqliteMaxOpenConns(t *testing.T) {
	tests := []struct {
		dsn  string
		want int
	}{
		{dsn: ":memory:", want: 1},
		{dsn: "file:users?mode=memory", want: 1},
		{dsn: "file::memory:?cache=shared", want: 4},
		{dsn: "data/app.db", want: 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteMaxOpenConns(tt.dsn, 4), tt.dsn)
	}
}
