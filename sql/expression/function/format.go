package function

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/grovedb/go-sql-format/sql"
)

// maxDecimals is the highest number of fractional digits FORMAT produces,
// matching the MySQL limit.
const maxDecimals = 30

// Format function returns a result of NumVal rounded to NumDecimalPlaces
// fractional digits, with the integer part grouped per the given locale.
type Format struct {
	NumVal           sql.Expression
	NumDecimalPlaces sql.Expression
	Locale           sql.Expression

	locales map[string]Separators
}

var _ sql.FunctionExpression = (*Format)(nil)

// NewFormat returns a new Format expression.
func NewFormat(args ...sql.Expression) (sql.Expression, error) {
	return newFormat(nil, args...)
}

// NewFormatWithLocales returns a Format constructor whose locale lookups are
// served by the given table instead of the built-in one. The table is not
// copied; callers must not mutate it afterwards.
func NewFormatWithLocales(locales map[string]Separators) sql.FunctionN {
	return func(args ...sql.Expression) (sql.Expression, error) {
		return newFormat(locales, args...)
	}
}

func newFormat(locales map[string]Separators, args ...sql.Expression) (sql.Expression, error) {
	var numVal, numDecimalPlaces, locale sql.Expression
	switch len(args) {
	case 2:
		numVal = args[0]
		numDecimalPlaces = args[1]
	case 3:
		numVal = args[0]
		numDecimalPlaces = args[1]
		locale = args[2]
	default:
		return nil, sql.ErrInvalidArgumentNumber.New("2 or 3", len(args))
	}

	return &Format{
		NumVal:           numVal,
		NumDecimalPlaces: numDecimalPlaces,
		Locale:           locale,
		locales:          locales,
	}, nil
}

// FunctionName implements sql.FunctionExpression
func (f *Format) FunctionName() string {
	return "format"
}

// Description implements sql.FunctionExpression
func (f *Format) Description() string {
	return "returns a number formatted to specified number of decimal places."
}

// Resolved implements the Expression interface.
func (f *Format) Resolved() bool {
	for _, c := range f.Children() {
		if !c.Resolved() {
			return false
		}
	}
	return true
}

// Type implements the Expression interface.
func (f *Format) Type() sql.Type {
	return sql.Text
}

// IsNullable implements the Expression interface.
func (f *Format) IsNullable() bool {
	return true
}

func (f *Format) String() string {
	args := make([]string, 0, 3)
	for _, c := range f.Children() {
		args = append(args, c.String())
	}
	return fmt.Sprintf("%s(%s)", f.FunctionName(), strings.Join(args, ", "))
}

// Children implements the Expression interface.
func (f *Format) Children() []sql.Expression {
	children := []sql.Expression{f.NumVal, f.NumDecimalPlaces}
	if f.Locale != nil {
		children = append(children, f.Locale)
	}
	return children
}

// WithChildren implements the Expression interface.
func (f *Format) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != len(f.Children()) {
		return nil, sql.ErrInvalidChildrenNumber.New(f, len(children), len(f.Children()))
	}
	return newFormat(f.locales, children...)
}

// Eval implements the Expression interface. A NULL value, a NULL number of
// decimal places, or an argument that does not coerce to a number all yield
// NULL. An unknown locale is an error.
func (f *Format) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	numVal, err := f.NumVal.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if numVal == nil {
		return nil, nil
	}

	num, err := sql.Decimal.Convert(numVal)
	if err != nil {
		return nil, nil
	}

	dVal, err := f.NumDecimalPlaces.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if dVal == nil {
		return nil, nil
	}

	dFloat, err := sql.Float64.Convert(dVal)
	if err != nil {
		return nil, nil
	}

	// NaN passes both clamps below and would turn into a bogus digit count
	if math.IsNaN(dFloat.(float64)) {
		return nil, nil
	}

	numDecimalPlaces := math.Round(dFloat.(float64))
	if numDecimalPlaces < 0 {
		numDecimalPlaces = 0
	} else if numDecimalPlaces > maxDecimals {
		numDecimalPlaces = maxDecimals
	}

	seps, err := f.evalSeparators(ctx, row)
	if err != nil {
		return nil, err
	}
	if seps == nil {
		return nil, nil
	}

	// StringFixed rounds half away from zero and zero-pads the fraction to
	// exactly the requested width.
	fixed := num.(decimal.Decimal).StringFixed(int32(numDecimalPlaces))

	return groupNumber(fixed, int(numDecimalPlaces), *seps), nil
}

// evalSeparators resolves the locale argument to a separator pair. A missing,
// NULL or empty locale selects the default pair. A NULL result with nil error
// means the whole expression is NULL.
func (f *Format) evalSeparators(ctx *sql.Context, row sql.Row) (*Separators, error) {
	if f.Locale == nil {
		seps := defaultSeparators
		return &seps, nil
	}

	locale, err := f.Locale.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if locale == nil {
		seps := defaultSeparators
		return &seps, nil
	}

	localeStr, err := sql.Text.Convert(locale)
	if err != nil {
		return nil, nil
	}

	seps, err := lookupLocale(f.locales, localeStr.(string))
	if err != nil {
		return nil, err
	}
	return &seps, nil
}

// groupNumber inserts the grouping separator into the integer part of a plain
// fixed-point number string every three digits from the right, and swaps the
// decimal point for the locale's separator.
func groupNumber(value string, numDecimalPlaces int, seps Separators) string {
	var b strings.Builder
	if strings.HasPrefix(value, "-") {
		b.WriteByte('-')
		value = value[1:]
	}

	intPart := value
	var fracPart string
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		intPart = value[:idx]
		fracPart = value[idx+1:]
	}

	pos := 0
	if len(intPart) > 3 {
		if pos = len(intPart) % 3; pos > 0 {
			b.WriteString(intPart[:pos])
			b.WriteString(seps.Grouping)
		}
		for ; pos+3 < len(intPart); pos += 3 {
			b.WriteString(intPart[pos : pos+3])
			b.WriteString(seps.Grouping)
		}
	}
	b.WriteString(intPart[pos:])

	if numDecimalPlaces > 0 {
		b.WriteString(seps.Decimal)
		b.WriteString(fracPart)
	}

	return b.String()
}
