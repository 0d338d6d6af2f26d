package value

import (
	"fmt"
	"strconv"
	"strings"

	"gradedb/internal/domain/errors"
)

// DataType is the declared primitive kind of a value or index.
type DataType string

const (
	TypeInt   DataType = "INT"
	TypeFloat DataType = "FLOAT"
	TypeText  DataType = "TEXT"
)

// Value is a tagged scalar cell. Exactly one of the payload fields is
// meaningful, selected by the kind tag.
type Value struct {
	kind DataType
	i    int64
	f    float64
	s    string
}

func Int(v int64) Value {
	return Value{kind: TypeInt, i: v}
}

func Float(v float64) Value {
	return Value{kind: TypeFloat, f: v}
}

func Text(v string) Value {
	return Value{kind: TypeText, s: v}
}

// DataType returns the declared kind of the value.
func (v Value) DataType() DataType {
	return v.kind
}

func (v Value) Int() int64 {
	return v.i
}

func (v Value) Float() float64 {
	return v.f
}

func (v Value) Text() string {
	return v.s
}

// AsFloat widens numeric values to float64 for arithmetic bindings.
// Returns false for TEXT values.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case TypeInt:
		return float64(v.i), true
	case TypeFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Compare orders two values of the same kind, returning a negative, zero or
// positive result. Comparing values of differing kinds is a precondition
// violation and fails with a TypeMismatchError.
func Compare(a, b Value) (int, error) {
	if a.kind != b.kind {
		return 0, errors.NewTypeMismatch("", string(a.kind), string(b.kind))
	}
	switch a.kind {
	case TypeInt:
		switch {
		case a.i < b.i:
			return -1, nil
		case a.i > b.i:
			return 1, nil
		}
		return 0, nil
	case TypeFloat:
		switch {
		case a.f < b.f:
			return -1, nil
		case a.f > b.f:
			return 1, nil
		}
		return 0, nil
	case TypeText:
		return strings.Compare(a.s, b.s), nil
	}
	return 0, fmt.Errorf("unknown data type %q", a.kind)
}

// Equal reports whether two values have the same kind and compare as zero.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	cmp, _ := Compare(v, o)
	return cmp == 0
}

// Key returns a canonical string form suitable as a map key. The kind prefix
// keeps equal-looking values of different kinds distinct.
func (v Value) Key() string {
	return string(v.kind) + ":" + v.String()
}

// String renders the payload without its kind tag.
func (v Value) String() string {
	switch v.kind {
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TypeText:
		return v.s
	}
	return fmt.Sprintf("<%s>", v.kind)
}

// Decode converts a raw JSON-decoded cell into a Value of the declared kind.
// JSON numbers arrive as float64; integer columns accept whole floats only.
func Decode(kind DataType, raw interface{}) (Value, error) {
	switch kind {
	case TypeInt:
		switch n := raw.(type) {
		case float64:
			if n != float64(int64(n)) {
				return Value{}, fmt.Errorf("expected INT, got fractional number %v", n)
			}
			return Int(int64(n)), nil
		case int64:
			return Int(n), nil
		case int:
			return Int(int64(n)), nil
		}
	case TypeFloat:
		switch n := raw.(type) {
		case float64:
			return Float(n), nil
		case int64:
			return Float(float64(n)), nil
		case int:
			return Float(float64(n)), nil
		}
	case TypeText:
		if s, ok := raw.(string); ok {
			return Text(s), nil
		}
	default:
		return Value{}, fmt.Errorf("unknown data type %q", kind)
	}
	return Value{}, errors.NewTypeMismatch("", string(kind), fmt.Sprintf("%T", raw))
}
