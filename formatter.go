package sqlformat

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/grovedb/go-sql-format/sql"
	"github.com/grovedb/go-sql-format/sql/expression"
	"github.com/grovedb/go-sql-format/sql/expression/function"
)

// Formatter evaluates the FORMAT builtin outside of a full SQL engine. It
// owns a function registry preloaded with the default builtins; engines
// embedding this library can register their own entries on top.
type Formatter struct {
	Registry sql.FunctionRegistry
}

// New creates a new Formatter with the default functions registered.
func New() *Formatter {
	r := sql.NewFunctionRegistry()
	r.RegisterFunctions(function.Defaults)

	return &Formatter{Registry: r}
}

// Format renders value with precision fractional digits using the separators
// of the given locale. A nil locale selects the default separators. The
// result is a string, or nil when value or precision is NULL per FORMAT
// semantics.
func (f *Formatter) Format(ctx *sql.Context, value, precision, locale interface{}) (interface{}, error) {
	args := []sql.Expression{
		expression.NewLiteral(value, litType(value)),
		expression.NewLiteral(precision, litType(precision)),
	}
	if locale != nil {
		args = append(args, expression.NewLiteral(locale, litType(locale)))
	}

	fn, err := f.Registry.Function("format")
	if err != nil {
		return nil, err
	}

	e, err := fn.Call(args...)
	if err != nil {
		return nil, err
	}

	span, ctx := ctx.Span("format.eval")
	defer span.Finish()

	result, err := e.Eval(ctx, nil)
	if err != nil {
		logrus.WithField("id", ctx.ID()).
			WithError(err).
			Errorf("unable to evaluate %s", e)
		return nil, err
	}

	return result, nil
}

// Project evaluates the given expressions over every row produced by the
// iterator and returns the resulting rows. The iterator is closed before
// returning.
func (f *Formatter) Project(ctx *sql.Context, exprs []sql.Expression, iter sql.RowIter) ([]sql.Row, error) {
	span, ctx := ctx.Span("formatter.project")
	defer span.Finish()

	rows, err := sql.RowIterToRows(iter)
	if err != nil {
		return nil, err
	}

	var projected []sql.Row
	for _, row := range rows {
		fields := make(sql.Row, len(exprs))
		for i, e := range exprs {
			v, err := e.Eval(ctx, row)
			if err != nil {
				logrus.WithField("id", ctx.ID()).
					WithError(err).
					Errorf("unable to evaluate %s", e)
				return nil, err
			}
			fields[i] = v
		}
		projected = append(projected, fields)
	}

	return projected, nil
}

func litType(v interface{}) sql.Type {
	switch v.(type) {
	case nil:
		return sql.Null
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return sql.Int64
	case float32, float64:
		return sql.Float64
	case decimal.Decimal:
		return sql.Decimal
	case []byte:
		return sql.Blob
	default:
		return sql.Text
	}
}
