package repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeDB implements infra.SQLExecutor for repository tests.
type fakeDB struct {
	lastQuery string
	lastArgs  []any

	execErr  error
	row      pgx.Row
	rows     pgx.Rows
	queryErr error
}

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.lastQuery = query
	f.lastArgs = args
	return pgconn.CommandTag{}, f.execErr
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.lastQuery = query
	f.lastArgs = args
	if f.row != nil {
		return f.row
	}
	return simpleRow{}
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.lastQuery = query
	f.lastArgs = args
	return f.rows, f.queryErr
}

// simpleRow is a pgx.Row backed by a scan func; the zero value yields ErrNoRows.
type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

// fakeRows is a pgx.Rows over fixed value tuples.
type fakeRows struct {
	tuples [][]any
	idx    int
	err    error
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.tuples) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assignValues(dest, r.tuples[r.idx-1])
}

func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) Close()                                       {}
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }

func (r *fakeRows) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

// assignValues copies each value into the matching scan destination. A nil
// value leaves the destination at its zero value, mimicking a SQL NULL
// scanned into a pointer.
func assignValues(dest []any, vals []any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan destination count %d does not match %d values", len(dest), len(vals))
	}
	for i, val := range vals {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("scan destination %d is not a pointer", i)
		}
		elem := target.Elem()
		if val == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}
		value := reflect.ValueOf(val)
		if !value.Type().AssignableTo(elem.Type()) {
			if value.Type().ConvertibleTo(elem.Type()) {
				value = value.Convert(elem.Type())
			} else {
				return fmt.Errorf("cannot assign %T to destination %d (%s)", val, i, elem.Type())
			}
		}
		elem.Set(value)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
