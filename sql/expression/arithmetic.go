package expression

import (
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/grovedb/go-sql-format/sql"
)

const (
	plusStr  = "+"
	minusStr = "-"
	multStr  = "*"
	divStr   = "/"
)

// errUnsupportedOperator is returned for operators with no evaluation rule.
var errUnsupportedOperator = errors.NewKind("unsupported operator: %s")

// Arithmetic expressions (+, -, *, /).
type Arithmetic struct {
	BinaryExpression
	Op string
}

var _ sql.Expression = (*Arithmetic)(nil)

// NewArithmetic creates a new Arithmetic sql.Expression.
func NewArithmetic(left, right sql.Expression, op string) *Arithmetic {
	return &Arithmetic{BinaryExpression{Left: left, Right: right}, op}
}

// NewPlus creates a new Arithmetic + sql.Expression.
func NewPlus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, plusStr)
}

// NewMinus creates a new Arithmetic - sql.Expression.
func NewMinus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, minusStr)
}

// NewMult creates a new Arithmetic * sql.Expression.
func NewMult(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, multStr)
}

// NewDiv creates a new Arithmetic / sql.Expression.
func NewDiv(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, divStr)
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left, a.Op, a.Right)
}

// IsNullable implements the Expression interface.
func (a *Arithmetic) IsNullable() bool {
	return a.BinaryExpression.IsNullable() || a.Op == divStr
}

// Type returns the greatest type for this arithmetic operation.
func (a *Arithmetic) Type() sql.Type {
	if a.Op == divStr {
		return sql.Float64
	}

	if isIntegral(a.Left.Type()) && isIntegral(a.Right.Type()) {
		return sql.Int64
	}

	return sql.Float64
}

func isIntegral(t sql.Type) bool {
	return t == sql.Int32 || t == sql.Int64
}

// WithChildren implements the Expression interface.
func (a *Arithmetic) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 2)
	}
	return NewArithmetic(children[0], children[1], a.Op), nil
}

// Eval implements the Expression interface.
func (a *Arithmetic) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lval, err := a.Left.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if lval == nil {
		return nil, nil
	}

	rval, err := a.Right.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if rval == nil {
		return nil, nil
	}

	if a.Type() == sql.Int64 {
		return a.evalInt64(lval, rval)
	}
	return a.evalFloat64(lval, rval)
}

func (a *Arithmetic) evalInt64(lval, rval interface{}) (interface{}, error) {
	l, err := sql.Int64.Convert(lval)
	if err != nil {
		return nil, err
	}
	r, err := sql.Int64.Convert(rval)
	if err != nil {
		return nil, err
	}

	switch a.Op {
	case plusStr:
		return l.(int64) + r.(int64), nil
	case minusStr:
		return l.(int64) - r.(int64), nil
	case multStr:
		return l.(int64) * r.(int64), nil
	}

	return nil, errUnsupportedOperator.New(a.Op)
}

func (a *Arithmetic) evalFloat64(lval, rval interface{}) (interface{}, error) {
	l, err := sql.Float64.Convert(lval)
	if err != nil {
		return nil, err
	}
	r, err := sql.Float64.Convert(rval)
	if err != nil {
		return nil, err
	}

	switch a.Op {
	case plusStr:
		return l.(float64) + r.(float64), nil
	case minusStr:
		return l.(float64) - r.(float64), nil
	case multStr:
		return l.(float64) * r.(float64), nil
	case divStr:
		if r.(float64) == 0 {
			// MySQL yields NULL on division by zero.
			return nil, nil
		}
		return l.(float64) / r.(float64), nil
	}

	return nil, errUnsupportedOperator.New(a.Op)
}
