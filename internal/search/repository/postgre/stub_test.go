package postgre

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
)

type noopLogger struct{}

func (noopLogger) Debug(context.Context, ...any) {}
func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any) {}
func (noopLogger) Warn(context.Context, ...any) {}
func (noopLogger) Warnf(context.Context, string, ...any) {}
func (noopLogger) Error(context.Context, ...any) {}
func (noopLogger) Errorf(context.Context, string, ...any) {}
func (noopLogger) Fatal(context.Context, ...any) {}
func (noopLogger) Fatalf(context.Context, string, ...any) {}

// stubRows replays fixed rows through the database/sql driver interface.
type stubRows struct {
	columns []string
	data    [][]driver.Value
	pos     int
}

func (r *stubRows) Columns() []string { return r.columns }
func (r *stubRows) Close() error { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.pos])
	r.pos++
	return nil
}

// stubConn serves canned result sets keyed by a substring of the query.
// Queries matching no key return an empty result set.
type stubConn struct {
	results map[string]*stubRows
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("prepare is not supported")
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions are not supported")
}

func (c *stubConn) Query(query string, _ []driver.Value) (driver.Rows, error) {
	for marker, rs := range c.results {
		if strings.Contains(query, marker) {
			return &stubRows{columns: rs.columns, data: rs.data}, nil
		}
	}
	return &stubRows{}, nil
}

type stubConnector struct {
	conn *stubConn
}

func (c stubConnector) Connect(context.Context) (driver.Conn, error) { return c.conn, nil }
func (c stubConnector) Driver() driver.Driver { return stubDriver{} }

type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("open by name is not supported")
}

func newStubDB(results map[string]*stubRows) *sql.DB {
	return sql.OpenDB(stubConnector{conn: &stubConn{results: results}})
}
