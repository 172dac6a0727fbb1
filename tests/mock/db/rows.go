package dbmock

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Row is a pgx.Row whose Scan runs fn.
type Row struct {
	fn func(dest ...any) error
}

func NewRow(fn func(dest ...any) error) Row {
	return Row{fn: fn}
}

func ErrRow(err error) Row {
	return Row{fn: func(...any) error { return err }}
}

// CountRow scans n into the single *int destination of a COUNT query.
func CountRow(n int) Row {
	return Row{fn: func(dest ...any) error {
		*dest[0].(*int) = n
		return nil
	}}
}

func (r Row) Scan(dest ...any) error {
	return r.fn(dest...)
}

// Rows is an empty result set, optionally failing at the end of iteration.
type Rows struct {
	err    error
	closed bool
}

func EmptyRows() *Rows {
	return &Rows{}
}

func FailingRows(err error) *Rows {
	return &Rows{err: err}
}

func (r *Rows) Close()                                       { r.closed = true }
func (r *Rows) Err() error                                   { return r.err }
func (r *Rows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT 0") }
func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *Rows) Next() bool                                   { return false }
func (r *Rows) Scan(...any) error                            { return nil }
func (r *Rows) Values() ([]any, error)                       { return nil, r.err }
func (r *Rows) RawValues() [][]byte                          { return nil }
func (r *Rows) Conn() *pgx.Conn                              { return nil }
func (r *Rows) Closed() bool                                 { return r.closed }

var (
	_ pgx.Row  = Row{}
	_ pgx.Rows = (*Rows)(nil)
)
