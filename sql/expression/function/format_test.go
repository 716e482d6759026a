package function

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	errors "gopkg.in/src-d/go-errors.v1"

	"github.com/grovedb/go-sql-format/sql"
	"github.com/grovedb/go-sql-format/sql/expression"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		xType    sql.Type
		dType    sql.Type
		row      sql.Row
		expected interface{}
		err      *errors.Kind
	}{
		{"float64 is nil", sql.Float64, sql.Int32, sql.NewRow(nil, nil), nil, nil},
		{"float64 without d", sql.Float64, sql.Int32, sql.NewRow(5555.8, nil), nil, nil},
		{"float64 with d", sql.Float64, sql.Int32, sql.NewRow(5555.855, 2), "5,555.86", nil},
		{"float64 with negative d", sql.Float64, sql.Int32, sql.NewRow(5552.855, -1), "5,553", nil},
		{"float64 with float d", sql.Float64, sql.Float64, sql.NewRow(5555.855, float64(2.123)), "5,555.86", nil},
		{"float64 with float negative d", sql.Float64, sql.Float64, sql.NewRow(5552.855, float64(-1)), "5,553", nil},
		{"float64 with blob d", sql.Float64, sql.Blob, sql.NewRow(5555.855, []byte{1, 2, 3}), nil, nil},
		{"float64 with text d", sql.Float64, sql.Text, sql.NewRow(5555.855, "2"), "5,555.86", nil},
		{"negative float64 with d", sql.Float64, sql.Int32, sql.NewRow(-5555.855, 2), "-5,555.86", nil},
		{"blob is nil", sql.Blob, sql.Int32, sql.NewRow(nil, nil), nil, nil},
		{"blob is ok", sql.Blob, sql.Int32, sql.NewRow([]byte{1, 2, 3}, nil), nil, nil},
		{"text int without d", sql.Text, sql.Int32, sql.NewRow("98765432", nil), nil, nil},
		{"text int with d", sql.Text, sql.Int32, sql.NewRow("98765432", 2), "98,765,432.00", nil},
		{"text int with negative d", sql.Text, sql.Int32, sql.NewRow("98765432", -1), "98,765,432", nil},
		{"text int with float d", sql.Text, sql.Float64, sql.NewRow("98765432", 2.123), "98,765,432.00", nil},
		{"text int with float negative d", sql.Text, sql.Float64, sql.NewRow("98765432", float32(-1)), "98,765,432", nil},
		{"text float without d", sql.Text, sql.Int32, sql.NewRow("98765432.1234", nil), nil, nil},
		{"text float with d", sql.Text, sql.Int32, sql.NewRow("98765432.1234", 2), "98,765,432.12", nil},
		{"text float with negative d", sql.Text, sql.Int32, sql.NewRow("98765432.8234", -1), "98,765,433", nil},
		{"text float with float d", sql.Text, sql.Float64, sql.NewRow("98765432.1234", float64(2.823)), "98,765,432.123", nil},
		{"text float with float negative d", sql.Text, sql.Float64, sql.NewRow("98765432.1234", float64(-1)), "98,765,432", nil},
		{"text float with blob d", sql.Text, sql.Blob, sql.NewRow("98765432.1234", []byte{1, 2, 3}), nil, nil},
		{"negative num text int with d", sql.Text, sql.Int32, sql.NewRow("-98765432", 2), "-98,765,432.00", nil},
		{"sci-notn numb with d=1", sql.Float64, sql.Int32, sql.NewRow(5932886+.000000000001, 1), "5,932,886.0", nil},
		{"sci-notn numb with d=8", sql.Float64, sql.Int32, sql.NewRow(5932886+.000000000001, 8), "5,932,886.00000000", nil},
		{"sci-notn numb with d=2", sql.Float64, sql.Int32, sql.NewRow(5.932887e+08, 2), "593,288,700.00", nil},
		{"negative sci-notn numb with d=2", sql.Float64, sql.Int32, sql.NewRow(-5.932887e+08, 2), "-593,288,700.00", nil},
		{"rounds half away from zero", sql.Float64, sql.Int32, sql.NewRow(12332.123456, 4), "12,332.1235", nil},
		{"negative rounds half away from zero", sql.Float64, sql.Int32, sql.NewRow(-12332.123456, 4), "-12,332.1235", nil},
		{"trailing zero padding", sql.Float64, sql.Int32, sql.NewRow(12332.1, 4), "12,332.1000", nil},
		{"no decimal point at d=0", sql.Float64, sql.Int32, sql.NewRow(12332.2, 0), "12,332", nil},
		{"negative d clamped to 0", sql.Float64, sql.Int32, sql.NewRow(12332.2, -1), "12,332", nil},
		{"integer input with d", sql.Int64, sql.Int32, sql.NewRow(int64(12332), 2), "12,332.00", nil},
		{"zero with d=0", sql.Int64, sql.Int32, sql.NewRow(int64(0), 0), "0", nil},
		{"NaN d", sql.Float64, sql.Float64, sql.NewRow(5555.855, math.NaN()), nil, nil},
		{"NaN value", sql.Float64, sql.Int32, sql.NewRow(math.NaN(), 2), nil, nil},
		{"negative infinite d clamps to 0", sql.Float64, sql.Float64, sql.NewRow(5555.855, math.Inf(-1)), "5,556", nil},
		{"positive infinite d clamps to 30", sql.Float64, sql.Float64, sql.NewRow(5555.855, math.Inf(1)), "5,555.855" + strings.Repeat("0", 27), nil},
		{"oversized d clamps to 30", sql.Float64, sql.Float64, sql.NewRow(5555.855, float64(1e9)), "5,555.855" + strings.Repeat("0", 27), nil},
	}

	for _, tt := range testCases {
		var args = make([]sql.Expression, 2)
		args[0] = expression.NewGetField(0, tt.xType, "Val", false)
		args[1] = expression.NewGetField(1, tt.dType, "Df", false)
		f, err := NewFormat(args...)

		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			require.Nil(err)

			result, err := f.Eval(sql.NewEmptyContext(), tt.row)
			if tt.err != nil {
				require.Error(err)
				require.True(tt.err.Is(err))
			} else {
				require.NoError(err)
				require.Equal(tt.expected, result)
			}
		})
	}
}

func TestFormatWithLocale(t *testing.T) {
	testCases := []struct {
		name     string
		locale   interface{}
		expected interface{}
		err      *errors.Kind
	}{
		{"en_US is the default style", "en_US", "12,332.1235", nil},
		{"hyphen spelling is accepted", "en-US", "12,332.1235", nil},
		{"case is ignored", "EN_us", "12,332.1235", nil},
		{"zh_CN groups like the default", "zh_CN", "12,332.1235", nil},
		{"empty locale means default", "", "12,332.1235", nil},
		{"nil locale means default", nil, "12,332.1235", nil},
		{"de_DE swaps the separators", "de_DE", "12.332,1235", nil},
		{"fr_FR groups with spaces", "fr_FR", "12 332,1235", nil},
		{"de_CH groups with apostrophes", "de_CH", "12'332.1235", nil},
		{"unknown locale is an error", "xx_XX", nil, ErrInvalidLocale},
		{"garbage locale is an error", "!!", nil, ErrInvalidLocale},
	}

	for _, tt := range testCases {
		f, err := NewFormat(
			expression.NewLiteral(12332.123456, sql.Float64),
			expression.NewLiteral(4, sql.Int32),
			expression.NewLiteral(tt.locale, sql.Text),
		)

		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			require.Nil(err)

			result, err := f.Eval(sql.NewEmptyContext(), nil)
			if tt.err != nil {
				require.Error(err)
				require.True(tt.err.Is(err))
			} else {
				require.NoError(err)
				require.Equal(tt.expected, result)
			}
		})
	}
}

func TestFormatWithCustomLocales(t *testing.T) {
	require := require.New(t)

	locales, err := LoadLocales(strings.NewReader(`
en_IN:
  grouping: ","
  decimal: "."
nb_NO:
  grouping: " "
  decimal: ","
`))
	require.NoError(err)

	newFormat := NewFormatWithLocales(locales)

	f, err := newFormat(
		expression.NewLiteral(12332.123456, sql.Float64),
		expression.NewLiteral(4, sql.Int32),
		expression.NewLiteral("nb_NO", sql.Text),
	)
	require.NoError(err)

	result, err := f.Eval(sql.NewEmptyContext(), nil)
	require.NoError(err)
	require.Equal("12 332,1235", result)

	// the custom table fully replaces the built-in one
	f, err = newFormat(
		expression.NewLiteral(12332.123456, sql.Float64),
		expression.NewLiteral(4, sql.Int32),
		expression.NewLiteral("de_DE", sql.Text),
	)
	require.NoError(err)

	_, err = f.Eval(sql.NewEmptyContext(), nil)
	require.Error(err)
	require.True(ErrInvalidLocale.Is(err))
}

func TestFormatArity(t *testing.T) {
	require := require.New(t)

	_, err := NewFormat(expression.NewLiteral(1, sql.Int64))
	require.Error(err)
	require.True(sql.ErrInvalidArgumentNumber.Is(err))

	_, err = NewFormat(
		expression.NewLiteral(1, sql.Int64),
		expression.NewLiteral(1, sql.Int64),
		expression.NewLiteral("en_US", sql.Text),
		expression.NewLiteral("en_US", sql.Text),
	)
	require.Error(err)
	require.True(sql.ErrInvalidArgumentNumber.Is(err))
}

func TestFormatString(t *testing.T) {
	require := require.New(t)

	f, err := NewFormat(
		expression.NewGetField(0, sql.Float64, "Val", false),
		expression.NewGetField(1, sql.Int32, "Df", false),
	)
	require.NoError(err)
	require.Equal("format(Val, Df)", f.String())
}
