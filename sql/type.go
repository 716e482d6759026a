package sql

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Type represents a SQL value type. All values handed to a Type are expected
// to already be Go values produced by the surrounding engine; Convert performs
// the loose numeric and string coercions MySQL applies to function arguments.
type Type interface {
	// Name returns the SQL name of the type.
	Name() string
	// Check returns whether the value has this exact type.
	Check(v interface{}) bool
	// Convert a value of a compatible type to the internal representation.
	Convert(v interface{}) (interface{}, error)
	// Compare returns an integer comparing two values.
	Compare(a interface{}, b interface{}) (int, error)
}

var (
	// Int32 is an integer of 32 bits.
	Int32 Type = numberType{name: "int32", kind: reflect.Int32}
	// Int64 is an integer of 64 bits.
	Int64 Type = numberType{name: "int64", kind: reflect.Int64}
	// Float64 is a floating point number of 64 bits.
	Float64 Type = numberType{name: "float64", kind: reflect.Float64}
	// Text is a string type.
	Text Type = textType{}
	// Blob is a byte string type.
	Blob Type = blobType{}
	// Decimal is an exact fixed point numeric type.
	Decimal Type = decimalType{}
	// Null is the type of NULL literals.
	Null Type = nullType{}
)

// IsNumber checks if t is a numeric type.
func IsNumber(t Type) bool {
	switch t.(type) {
	case numberType, decimalType:
		return true
	default:
		return false
	}
}

// IsText checks if t is a text type.
func IsText(t Type) bool {
	_, ok := t.(textType)
	return ok
}

type nullType struct{}

func (t nullType) Name() string { return "null" }

func (t nullType) Check(v interface{}) bool {
	return v == nil
}

// Convert implements Type interface.
func (t nullType) Convert(v interface{}) (interface{}, error) {
	if v != nil {
		return nil, ErrValueNotConvertible.New(v, t.Name())
	}
	return nil, nil
}

// Compare implements Type interface. NULL compares equal only to NULL.
func (t nullType) Compare(a interface{}, b interface{}) (int, error) {
	if a == nil && b == nil {
		return 0, nil
	}
	if a == nil {
		return -1, nil
	}
	return 1, nil
}

type numberType struct {
	name string
	kind reflect.Kind
}

func (t numberType) Name() string { return t.name }

func (t numberType) Check(v interface{}) bool {
	return v != nil && reflect.TypeOf(v).Kind() == t.kind
}

// Convert implements Type interface.
func (t numberType) Convert(v interface{}) (interface{}, error) {
	switch t.kind {
	case reflect.Int32:
		return cast.ToInt32E(v)
	case reflect.Int64:
		return cast.ToInt64E(v)
	case reflect.Float64:
		return cast.ToFloat64E(v)
	}
	return nil, ErrInvalidType.New(t.name)
}

// Compare implements Type interface.
func (t numberType) Compare(a interface{}, b interface{}) (int, error) {
	ca, err := cast.ToFloat64E(a)
	if err != nil {
		return 0, err
	}
	cb, err := cast.ToFloat64E(b)
	if err != nil {
		return 0, err
	}

	if ca == cb {
		return 0, nil
	}
	if ca < cb {
		return -1, nil
	}
	return 1, nil
}

type textType struct{}

func (t textType) Name() string { return "text" }

func (t textType) Check(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

// Convert implements Type interface.
func (t textType) Convert(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return cast.ToStringE(v)
	}
}

// Compare implements Type interface.
func (t textType) Compare(a interface{}, b interface{}) (int, error) {
	ca, err := t.Convert(a)
	if err != nil {
		return 0, err
	}
	cb, err := t.Convert(b)
	if err != nil {
		return 0, err
	}

	return strings.Compare(ca.(string), cb.(string)), nil
}

type blobType struct{}

func (t blobType) Name() string { return "blob" }

func (t blobType) Check(v interface{}) bool {
	_, ok := v.([]byte)
	return ok
}

// Convert implements Type interface.
func (t blobType) Convert(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, ErrValueNotConvertible.New(v, t.Name())
	}
}

// Compare implements Type interface.
func (t blobType) Compare(a interface{}, b interface{}) (int, error) {
	ca, err := t.Convert(a)
	if err != nil {
		return 0, err
	}
	cb, err := t.Convert(b)
	if err != nil {
		return 0, err
	}

	return bytes.Compare(ca.([]byte), cb.([]byte)), nil
}

type decimalType struct{}

func (t decimalType) Name() string { return "decimal" }

func (t decimalType) Check(v interface{}) bool {
	_, ok := v.(decimal.Decimal)
	return ok
}

// Convert implements Type interface. Strings are converted exactly, floats
// through their shortest decimal representation.
func (t decimalType) Convert(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, ErrValueNotConvertible.New(v, t.Name())
		}
		return d, nil
	case []byte:
		return t.Convert(string(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrValueNotConvertible.New(v, t.Name())
		}
		return decimal.NewFromFloat(v), nil
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return nil, ErrValueNotConvertible.New(v, t.Name())
		}
		return decimal.NewFromFloat32(v), nil
	case int:
		return decimal.New(int64(v), 0), nil
	case int8:
		return decimal.New(int64(v), 0), nil
	case int16:
		return decimal.New(int64(v), 0), nil
	case int32:
		return decimal.New(int64(v), 0), nil
	case int64:
		return decimal.New(v, 0), nil
	case uint:
		return decimal.New(int64(v), 0), nil
	case uint8:
		return decimal.New(int64(v), 0), nil
	case uint16:
		return decimal.New(int64(v), 0), nil
	case uint32:
		return decimal.New(int64(v), 0), nil
	case uint64:
		return decimal.NewFromString(cast.ToString(v))
	default:
		return nil, ErrValueNotConvertible.New(v, t.Name())
	}
}

// Compare implements Type interface.
func (t decimalType) Compare(a interface{}, b interface{}) (int, error) {
	ca, err := t.Convert(a)
	if err != nil {
		return 0, err
	}
	cb, err := t.Convert(b)
	if err != nil {
		return 0, err
	}

	return ca.(decimal.Decimal).Cmp(cb.(decimal.Decimal)), nil
}
