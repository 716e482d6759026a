package mem

import (
	"io"

	"github.com/grovedb/go-sql-format/sql"
)

// Table is an in-memory table with a fixed schema.
type Table struct {
	name   string
	schema sql.Schema
	data   []sql.Row
}

var _ sql.Table = (*Table)(nil)

// NewTable creates a new empty Table with the given name and schema.
func NewTable(name string, schema sql.Schema) *Table {
	return &Table{
		name:   name,
		schema: schema,
	}
}

// NewNumberSequence creates a table with a single int64 "number" column
// holding the values 0 to n-1. It plays the role of the row-generating
// sources real engines provide, such as the numbers() table function.
func NewNumberSequence(name string, n int64) *Table {
	t := NewTable(name, sql.Schema{
		{Name: "number", Type: sql.Int64},
	})
	for i := int64(0); i < n; i++ {
		// values produced by the generator always match the schema
		_ = t.Insert(i)
	}
	return t
}

// Name implements the Nameable interface.
func (t *Table) Name() string {
	return t.name
}

// Schema implements the Table interface.
func (t *Table) Schema() sql.Schema {
	return t.schema
}

// RowIter implements the Table interface.
func (t *Table) RowIter(ctx *sql.Context) (sql.RowIter, error) {
	return &iter{data: t.data}, nil
}

// Insert a new row into the table. Values must check against the schema
// types; NULLs are only accepted in nullable columns.
func (t *Table) Insert(values ...interface{}) error {
	if len(values) != len(t.schema) {
		return sql.ErrUnexpectedRowLength.New(len(t.schema), len(values))
	}

	for idx, value := range values {
		c := t.schema[idx]
		if value == nil {
			if !c.Nullable {
				return sql.ErrInvalidType.New("NULL")
			}
			continue
		}
		if !c.Type.Check(value) {
			return sql.ErrInvalidType.New(c.Type.Name())
		}
	}

	t.data = append(t.data, sql.NewRow(values...))
	return nil
}

type iter struct {
	idx  int
	data []sql.Row
}

func (i *iter) Next() (sql.Row, error) {
	if i.idx >= len(i.data) {
		return nil, io.EOF
	}

	row := i.data[i.idx]
	i.idx++
	return row.Copy(), nil
}

func (i *iter) Close() error {
	i.data = nil
	return nil
}
