package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const driverSQLite = "sqlite3"

func sqliteDialect() Dialect {
	return Dialect{
		DriverName:  driverSQLite,
		Placeholder: sq.Question,
		Schema:      []string{createUsersTableSQLite, createTodosTableSQLite},
		Classifier:  NewSQLiteErrorClassifier(),
	}
}

// createLocalDBDirIfNotExists creates the parent directory of a SQLite
// database file. The file itself is created by the driver on first open.
// In-memory databases are left alone.
func createLocalDBDirIfNotExists(dsn string) error {
	path := sqliteFilePath(dsn)
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating DB directory %q: %w", dir, err)
	}

	return nil
}

// sqliteFilePath extracts the file path from a SQLite DSN such as
// "data/app.db" or "file:data/app.db?mode=ro". It returns "" for in-memory
// databases.
func sqliteFilePath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	if path == "" || strings.Contains(path, ":memory:") {
		return ""
	}

	return path
}

// sqliteMaxOpenConns bounds the pool for dsn. A private in-memory database
// exists per connection, so it is limited to one.
func sqliteMaxOpenConns(dsn string, maxOpen int) int {
	inMemory := strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
	if inMemory && !strings.Contains(dsn, "cache=shared") {
		return 1
	}

	return maxOpen
}
