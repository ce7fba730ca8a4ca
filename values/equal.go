package values

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// exportAll lets cmp look into unexported struct fields instead of panicking.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal is the literal equality used for patterns which are neither matchers nor
// structural patterns.
//
// Numbers compare by numeric value, regardless of their Go kind: int(2), uint8(2) and
// float64(2.0) are all equal. Values of string kind compare by their underlying string,
// values of bool kind by their underlying bool, so named string types match plain
// string literals. A nil literal equals every nil value (see IsNil).
// Everything else requires identical dynamic types. Comparable values then compare
// with ==, so pointers match by identity. Values which cannot be compared with ==
// (slices, maps, structs holding them) are compared structurally with cmp.Equal.
func Equal(literal, v any) bool {
	if literal == nil || v == nil {
		return IsNil(literal) && IsNil(v)
	}
	a, b := reflect.ValueOf(literal), reflect.ValueOf(v)
	if numericClass(a) != notNumeric && numericClass(b) != notNumeric {
		return numericEqual(a, b)
	}
	if a.Kind() == reflect.String && b.Kind() == reflect.String {
		return a.String() == b.String()
	}
	if a.Kind() == reflect.Bool && b.Kind() == reflect.Bool {
		return a.Bool() == b.Bool()
	}
	if a.Type() != b.Type() {
		return false
	}
	if a.Type().Comparable() {
		if eq, ok := identical(literal, v); ok {
			return eq
		}
	}
	return cmp.Equal(literal, v, exportAll)
}

// identical compares with ==. ok is false if == panicked, which happens for structs
// and arrays holding interfaces with incomparable dynamic values.
func identical(a, b any) (eq bool, ok bool) {
	defer func() {
		if recover() != nil {
			eq, ok = false, false
		}
	}()
	return a == b, true
}
