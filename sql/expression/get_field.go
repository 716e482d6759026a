package expression

import (
	"github.com/grovedb/go-sql-format/sql"
)

// GetField is an expression to get the value of a field in a row.
type GetField struct {
	fieldIndex int
	fieldType  sql.Type
	name       string
	nullable   bool
}

var _ sql.Expression = (*GetField)(nil)

// NewGetField creates a GetField expression.
func NewGetField(index int, fieldType sql.Type, fieldName string, nullable bool) *GetField {
	return &GetField{
		fieldIndex: index,
		fieldType:  fieldType,
		name:       fieldName,
		nullable:   nullable,
	}
}

// Index returns the index where the GetField will look for the value from a sql.Row.
func (p *GetField) Index() int { return p.fieldIndex }

// Name implements the Nameable interface.
func (p *GetField) Name() string { return p.name }

// Resolved implements the Expression interface.
func (p *GetField) Resolved() bool {
	return true
}

// IsNullable returns whether the field is nullable or not.
func (p *GetField) IsNullable() bool {
	return p.nullable
}

// Type returns the type of the field.
func (p *GetField) Type() sql.Type {
	return p.fieldType
}

// Eval implements the Expression interface.
func (p *GetField) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	if p.fieldIndex < 0 || p.fieldIndex >= len(row) {
		return nil, sql.ErrUnexpectedRowLength.New(p.fieldIndex+1, len(row))
	}

	return row[p.fieldIndex], nil
}

func (p *GetField) String() string {
	return p.name
}

// Children implements the Expression interface.
func (*GetField) Children() []sql.Expression {
	return nil
}

// WithChildren implements the Expression interface.
func (p *GetField) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 0)
	}
	return p, nil
}

// WithIndex returns a copy of this expression with a new index.
func (p *GetField) WithIndex(index int) sql.Expression {
	p2 := *p
	p2.fieldIndex = index
	return &p2
}

// SchemaToGetFields takes a schema and returns an expression array of
// GetFields the same length.
func SchemaToGetFields(s sql.Schema) []sql.Expression {
	ret := make([]sql.Expression, len(s))
	for i, col := range s {
		ret[i] = NewGetField(i, col.Type, col.Name, col.Nullable)
	}

	return ret
}
