package values

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/slices"
)

// FieldTag is the struct tag consulted to find the record key of a struct field.
//
//     type Event struct {
//         Type string `match:"type"`
//     }
//
const FieldTag = "match"

// Elements returns the elements of a sequence as a slice of interfaces.
// For values which are not sequences, Elements returns nil.
func Elements(v any) []any {
	if Classify(v) != Sequence {
		return nil
	}
	if xs, ok := v.([]any); ok {
		return xs
	}
	rv := reflect.ValueOf(v)
	xs := make([]any, rv.Len())
	for i := range xs {
		xs[i] = rv.Index(i).Interface()
	}
	return xs
}

// Len returns the number of elements of a sequence, set or map. It returns 0 for
// every other kind of value.
func Len(v any) int {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	return 0
}

// SetElements returns the members of a set in a deterministic order (see Less).
// For values which are not sets, SetElements returns nil.
func SetElements(v any) []any {
	if Classify(v) != Set {
		return nil
	}
	rv := reflect.ValueOf(v)
	xs := make([]any, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		xs = append(xs, k.Interface())
	}
	slices.SortFunc(xs, Less)
	return xs
}

// Entry is a key/value pair of a map.
type Entry struct {
	Key   any
	Value any
}

// MapEntries returns the entries of a map, sorted by key (see Less).
// For values which are not maps, MapEntries returns nil.
func MapEntries(v any) []Entry {
	if !IsMap(v) {
		return nil
	}
	rv := reflect.ValueOf(v)
	entries := make([]Entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, Entry{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
	}
	slices.SortFunc(entries, func(a, b Entry) bool {
		return Less(a.Key, b.Key)
	})
	return entries
}

// StringKeys returns the keys of a map with string keys in ascending order.
func StringKeys(v any) []string {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil
	}
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)
	return keys
}

// Field looks up key in a record-like value. The second result reports whether
// the key exists. Maps with string keys are indexed directly, structs (or pointers
// to structs) are searched for an exported field tagged or named key, including
// fields promoted from embedded structs. A promoted field behind a nil embedded
// pointer is absent.
func Field(v any, key string) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		t := rv.Type()
		if t.Key().Kind() != reflect.String {
			return nil, false
		}
		x := rv.MapIndex(reflect.ValueOf(key).Convert(t.Key()))
		if !x.IsValid() {
			return nil, false
		}
		return x.Interface(), true
	case reflect.Struct:
		if index := fieldIndex(rv.Type(), key); index != nil {
			if x, err := rv.FieldByIndexErr(index); err == nil {
				return x.Interface(), true
			}
		}
	}
	return nil, false
}

// fieldIndex finds the exported field for key, following Go's selector rules:
// fields promoted from embedded structs are visible unless shadowed. A field with
// a match tag is found by its tag only. The shallowest tagged field wins over the
// shallowest field found by name.
func fieldIndex(t reflect.Type, key string) []int {
	var byTag, byName []int
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		if tag, ok := f.Tag.Lookup(FieldTag); ok {
			if tag == key && (byTag == nil || len(f.Index) < len(byTag)) {
				byTag = f.Index
			}
			continue
		}
		if f.Name == key && (byName == nil || len(f.Index) < len(byName)) {
			byName = f.Index
		}
	}
	if byTag != nil {
		return byTag
	}
	return byName
}

// Less is a total order over arbitrary values, used to iterate sets and maps
// deterministically. Numbers order numerically and before strings, strings
// order lexically, booleans order false before true. Other values order
// by their fmt representation.
func Less(a, b any) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	switch ra {
	case 0:
		fa, _ := ToFloat(a)
		fb, _ := ToFloat(b)
		return fa < fb
	case 1:
		sa, _ := AsString(a)
		sb, _ := AsString(b)
		return sa < sb
	case 2:
		return !reflect.ValueOf(a).Bool() && reflect.ValueOf(b).Bool()
	}
	return fmt.Sprintf("%#v", a) < fmt.Sprintf("%#v", b)
}

func rank(v any) int {
	switch {
	case IsNumber(v):
		return 0
	case IsString(v):
		return 1
	case IsBool(v):
		return 2
	}
	return 3
}
