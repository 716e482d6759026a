package sql

import "fmt"

// Expression is a combination of one or more SQL expressions.
type Expression interface {
	Resolved() bool
	// Type returns the expression type.
	Type() Type
	// IsNullable returns whether the expression can be null.
	IsNullable() bool
	// Eval evaluates the given row and returns a result.
	Eval(ctx *Context, row Row) (interface{}, error)
	// Children returns the children expressions of this expression.
	Children() []Expression
	// WithChildren returns a copy of the expression with children replaced.
	// It will return an error if the number of children is different than
	// the current number of children. They must be given in the same order
	// as they are returned by Children.
	WithChildren(children ...Expression) (Expression, error)
	fmt.Stringer
}

// FunctionExpression is an Expression that represents a built-in function.
type FunctionExpression interface {
	Expression
	// FunctionName returns the name of this function expression.
	FunctionName() string
	// Description returns the description of this function expression.
	Description() string
}

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// Table is a collection of rows.
type Table interface {
	Nameable
	// Schema returns the table schema.
	Schema() Schema
	// RowIter produces an iterator over the table rows.
	RowIter(ctx *Context) (RowIter, error)
}

// Column is the definition of a table column.
type Column struct {
	// Name is the name of the column.
	Name string
	// Type is the type of the column.
	Type Type
	// Nullable is true if the column can contain NULL values.
	Nullable bool
}

// Schema is the definition of a table.
type Schema []Column
