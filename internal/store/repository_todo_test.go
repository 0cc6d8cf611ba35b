package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/jmoiron/sqlx"
)

func newTestTodoRepo(t *testing.T) (TodoRepository, sqlmock.Sqlmock, Connector) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })

	connector := newPerCallConnector(driverSQLite, "mock", func(string, string) (*sqlx.DB, error) {
		return sqlx.NewDb(mockDB, "sqlmock"), nil
	})

	l := logger.Nop()
	return NewTodoRepository(newDB(connector, sqliteDialect(), l), l), mock, connector
}

func TestCreateTodo_Success(t *testing.T) {
	repo, mock, connector := newTestTodoRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO todos (title) VALUES (?)")).
		WithArgs("buy milk").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()
	mock.ExpectClose()

	todo, err := repo.CreateTodo(context.Background(), "buy milk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todo.ID != 3 || todo.Title != "buy milk" {
		t.Errorf("unexpected todo %+v", todo)
	}

	assertReleased(t, mock, connector)
}

func TestCreateTodo_ExecError(t *testing.T) {
	repo, mock, connector := newTestTodoRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO todos").WillReturnError(errors.New("disk gone"))
	mock.ExpectRollback()
	mock.ExpectClose()

	_, err := repo.CreateTodo(context.Background(), "buy milk")
	if !errors.Is(err, ErrStoreFailure) {
		t.Fatalf("expected store failure, got %v", err)
	}

	assertReleased(t, mock, connector)
}

func TestListTodos(t *testing.T) {
	repo, mock, connector := newTestTodoRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title FROM todos ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(1, "buy milk").
			AddRow(2, "walk dog"))
	mock.ExpectClose()

	todos, err := repo.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(todos) != 2 || todos[1].Title != "walk dog" {
		t.Errorf("unexpected todos %+v", todos)
	}

	assertReleased(t, mock, connector)
}

func TestListTodos_Empty(t *testing.T) {
	repo, mock, connector := newTestTodoRepo(t)

	mock.ExpectQuery("SELECT id, title FROM todos").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))
	mock.ExpectClose()

	todos, err := repo.ListTodos(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if todos == nil || len(todos) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", todos)
	}

	assertReleased(t, mock, connector)
}
