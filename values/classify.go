package values

import (
	"reflect"
)

// Kind is the structural kind of a runtime value.
type Kind int8

// Structural kinds, as reported by Classify.
const (
	Scalar Kind = iota
	Sequence
	Set
	Map
	Record
)

var kindNames = [...]string{"scalar", "sequence", "set", "map", "record"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

var emptyStructType = reflect.TypeOf(struct{}{})

// Classify reports the structural kind of v. It is total and never panics.
//
// Slices and arrays are sequences, maps with element type struct{} are sets,
// structs, non-nil pointers to structs and maps with string keys are records,
// all other maps are maps. Everything else is a scalar, including nil.
func Classify(v any) Kind {
	if v == nil {
		return Scalar
	}
	return classify(reflect.ValueOf(v))
}

func classify(rv reflect.Value) Kind {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return Sequence
	case reflect.Map:
		t := rv.Type()
		if t.Elem() == emptyStructType {
			return Set
		}
		if t.Key().Kind() == reflect.String {
			return Record
		}
		return Map
	case reflect.Struct:
		return Record
	case reflect.Ptr:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			return Record
		}
	}
	return Scalar
}

// IsRecordLike is true for every value which supports lookup of fields by name.
// This includes sets with string keys, which are Go maps with string keys after all.
func IsRecordLike(v any) bool {
	if v == nil {
		return false
	}
	if Classify(v) == Record {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// IsMap is true for every Go map which is not a set.
func IsMap(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Elem() != emptyStructType
}

// IsStringKeyedMap is true for maps with string keys which are not sets.
// Patterns of this form are record patterns.
func IsStringKeyedMap(v any) bool {
	return IsMap(v) && reflect.TypeOf(v).Key().Kind() == reflect.String
}

// IsNil is true for nil and for nil pointers, interfaces, channels and functions.
// Nil slices and nil maps are empty collections, not nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsString is true for every value of string kind, including named string types.
func IsString(v any) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.String
}

// AsString returns the underlying string of a value of string kind.
func AsString(v any) (string, bool) {
	if !IsString(v) {
		return "", false
	}
	return reflect.ValueOf(v).String(), true
}

// IsBool is true for every value of bool kind.
func IsBool(v any) bool {
	return v != nil && reflect.ValueOf(v).Kind() == reflect.Bool
}
