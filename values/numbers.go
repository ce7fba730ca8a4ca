package values

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

type numClass int8

const (
	notNumeric numClass = iota
	signedNum
	unsignedNum
	floatNum
)

func numericClass(rv reflect.Value) numClass {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedNum
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedNum
	case reflect.Float32, reflect.Float64:
		return floatNum
	}
	return notNumeric
}

// IsNumber is true for values of any Go integer or floating point kind.
func IsNumber(v any) bool {
	return v != nil && numericClass(reflect.ValueOf(v)) != notNumeric
}

// ToFloat converts a numeric value to float64. The second result is false for
// non-numeric values.
func ToFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch numericClass(rv) {
	case signedNum:
		return float64(rv.Int()), true
	case unsignedNum:
		return float64(rv.Uint()), true
	case floatNum:
		return rv.Float(), true
	}
	return 0, false
}

// IsInteger is true for integer kinds and for floats without a fractional part.
func IsInteger(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch numericClass(rv) {
	case signedNum, unsignedNum:
		return true
	case floatNum:
		f := rv.Float()
		return !math.IsInf(f, 0) && !math.IsNaN(f) && f == math.Trunc(f)
	}
	return false
}

// IsFinite is true for integer kinds and for floats which are neither infinite nor NaN.
func IsFinite(v any) bool {
	f, ok := ToFloat(v)
	return ok && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Within checks lo ≤ x ≤ hi. It serves the length refinements of strings (int)
// and the range refinements of numbers (float64). NaN is never within a range.
func Within[T constraints.Ordered](x, lo, hi T) bool {
	return lo <= x && x <= hi
}

func numericEqual(a, b reflect.Value) bool {
	ca, cb := numericClass(a), numericClass(b)
	switch {
	case ca == floatNum || cb == floatNum:
		fa, _ := ToFloat(a.Interface())
		fb, _ := ToFloat(b.Interface())
		return fa == fb
	case ca == signedNum && cb == signedNum:
		return a.Int() == b.Int()
	case ca == unsignedNum && cb == unsignedNum:
		return a.Uint() == b.Uint()
	case ca == signedNum: // b unsigned
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default: // a unsigned, b signed
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
}
