package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"go.uber.org/mock/gomock"

	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/mock"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(connect connectFunc, args ...string) result {
	root := newRootCommand(connect)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// mockConnect serves every command from a gomock ServerAdapter and records
// the options and close calls it saw.
type mockConnect struct {
	adapter *mock.MockServerAdapter
	opts    options
	closed  int
}

func newMockConnect(c *qt.C) *mockConnect {
	ctrl := gomock.NewController(c)
	return &mockConnect{adapter: mock.NewMockServerAdapter(ctrl)}
}

func (m *mockConnect) connect(_ context.Context, opts options, _ *logger.Logger) (*session, error) {
	m.opts = opts
	return &session{
		users:   m.adapter,
		version: m.adapter.Version,
		close: func() error {
			m.closed++
			return nil
		},
	}, nil
}

func localArgs(c *qt.C, args ...string) []string {
	dsn := filepath.Join(c.TempDir(), "users.db")
	return append(args, "--dsn", dsn)
}

func TestRoot_PassesConnectionFlags(t *testing.T) {
	c := qt.New(t)
	m := newMockConnect(c)
	m.adapter.EXPECT().Version(gomock.Any()).Return("1.2.3", nil)

	r := execute(m.connect, "version", "--server", "localhost:9000", "--dsn", "x.db", "--driver", "pgx", "--timeout", "5s")
	c.Assert(r.err, qt.IsNil)
	c.Assert(r.stdout, qt.Equals, "1.2.3\n")
	c.Assert(m.opts.server, qt.Equals, "localhost:9000")
	c.Assert(m.opts.dsn, qt.Equals, "x.db")
	c.Assert(m.opts.driver, qt.Equals, "pgx")
	c.Assert(m.opts.timeout.String(), qt.Equals, "5s")
	c.Assert(m.closed, qt.Equals, 1)
}

func TestRoot_ConnectError(t *testing.T) {
	c := qt.New(t)
	boom := errors.New("boom")

	r := execute(func(context.Context, options, *logger.Logger) (*session, error) {
		return nil, boom
	}, "list")
	c.Assert(r.err, qt.ErrorIs, errConnecting)
	c.Assert(r.err, qt.ErrorIs, boom)
}

func TestRoot_ClosesSessionOnFailure(t *testing.T) {
	c := qt.New(t)
	m := newMockConnect(c)
	m.adapter.EXPECT().DeleteUser(gomock.Any(), "Ghost").Return(false)

	r := execute(m.connect, "delete", "Ghost")
	c.Assert(r.err, qt.ErrorIs, errOperationFailed)
	c.Assert(m.closed, qt.Equals, 1)
}

func TestRoot_WrongArgCount(t *testing.T) {
	c := qt.New(t)
	m := newMockConnect(c)

	r := execute(m.connect, "add", "OnlyName")
	c.Assert(r.err, qt.IsNotNil)
	c.Assert(m.closed, qt.Equals, 0)
}

func TestConnect_RemoteRejectsEmptyAddress(t *testing.T) {
	c := qt.New(t)

	_, err := connectRemote(options{server: "   "}, logger.Nop())
	c.Assert(err, qt.IsNotNil)
}

func TestConnect_LocalOpensDatabase(t *testing.T) {
	c := qt.New(t)
	dsn := filepath.Join(c.TempDir(), "nested", "users.db")

	s, err := connect(context.Background(), options{dsn: dsn}, logger.Nop())
	c.Assert(err, qt.IsNil)
	defer s.close()

	c.Assert(s.users.AddUser(context.Background(), "Alice", "a@x.com"), qt.IsTrue)
	user, ok := s.users.GetUser(context.Background(), "Alice")
	c.Assert(ok, qt.IsTrue)
	c.Assert(user.Email, qt.Equals, "a@x.com")
}
