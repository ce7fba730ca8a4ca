package pattern

import (
	"reflect"

	"github.com/npillmayer/fpmatch/values"
)

// Optional matches nil (including an absent record key), binding nil for every
// selection key of p, or anything p matches.
func Optional(p any) Chainable {
	return chainable(&node{
		kind:  KindOptional,
		label: "optional",
		args:  []any{p},
		match: func(value any) Result {
			sels := Selections{}
			if values.IsNil(value) {
				for _, k := range SelectionKeys(p) {
					sels[k] = nil
				}
				return Result{Matched: true, Selections: sels}
			}
			return Result{Matched: MatchPattern(p, value, sels), Selections: sels}
		},
		keys: func() []string { return SelectionKeys(p) },
	})
}

// Array matches sequences. Without an argument it matches every sequence, otherwise
// every element has to match the element pattern. Selections of the elements are
// collected into slices; an empty sequence binds an empty slice for every selection
// key of the element pattern.
//
// Use Spread (or Rest) to make the array absorb the middle segment of a tuple.
func Array(p ...any) ArrayPattern {
	if len(p) > 1 {
		err := newPatternError(p, "array takes at most one element pattern, have %d", len(p))
		tracer().Errorf("%v", err)
		panic(err)
	}
	return arrayChainable(&node{
		kind:  KindArray,
		label: "array",
		args:  p,
		match: func(value any) Result {
			if values.Classify(value) != values.Sequence {
				return Result{}
			}
			if len(p) == 0 {
				return Result{Matched: true}
			}
			sels := Selections{}
			xs := values.Elements(value)
			if len(xs) == 0 {
				for _, k := range SelectionKeys(p[0]) {
					sels[k] = []any{}
				}
				return Result{Matched: true, Selections: sels}
			}
			acc := accumulate(sels)
			for _, x := range xs {
				if !MatchPattern(p[0], x, acc) {
					return Result{Selections: sels}
				}
			}
			return Result{Matched: true, Selections: sels}
		},
		keys: func() []string { return flatKeys(p) },
	})
}

// Rest is a shorthand for Array(p...).Spread().
func Rest(p ...any) ArrayPattern {
	return Array(p...).Spread()
}

// Set matches sets (see package values). Without an argument it matches every set,
// otherwise every member has to match the member pattern. An empty set always
// matches. Selections of the members are collected into slices.
func Set(p ...any) Chainable {
	if len(p) > 1 {
		err := newPatternError(p, "set takes at most one member pattern, have %d", len(p))
		tracer().Errorf("%v", err)
		panic(err)
	}
	return chainable(&node{
		kind:  KindSet,
		label: "set",
		args:  p,
		match: func(value any) Result {
			if values.Classify(value) != values.Set {
				return Result{}
			}
			sels := Selections{}
			if values.Len(value) == 0 || len(p) == 0 {
				return Result{Matched: true, Selections: sels}
			}
			acc := accumulate(sels)
			for _, x := range values.SetElements(value) {
				if !MatchPattern(p[0], x, acc) {
					return Result{Selections: sels}
				}
			}
			return Result{Matched: true, Selections: sels}
		},
		keys: func() []string { return flatKeys(p) },
	})
}

// Map matches Go maps other than sets. Without arguments it matches every map,
// otherwise it takes a key pattern and a value pattern, both of which have to match
// for every entry. An empty map always matches. Selections are collected into slices.
//
// Calling Map with a key pattern only is a construction error and panics.
func Map(p ...any) Chainable {
	if len(p) == 1 || len(p) > 2 {
		err := newPatternError(p, "map needs a key pattern and a value pattern, have %d argument(s)", len(p))
		tracer().Errorf("%v", err)
		panic(err)
	}
	return chainable(&node{
		kind:  KindMap,
		label: "map",
		args:  p,
		match: func(value any) Result {
			if !values.IsMap(value) {
				return Result{}
			}
			sels := Selections{}
			if values.Len(value) == 0 || len(p) == 0 {
				return Result{Matched: true, Selections: sels}
			}
			acc := accumulate(sels)
			for _, e := range values.MapEntries(value) {
				keyMatch := MatchPattern(p[0], e.Key, acc)
				valueMatch := MatchPattern(p[1], e.Value, acc)
				if !keyMatch || !valueMatch {
					return Result{Selections: sels}
				}
			}
			return Result{Matched: true, Selections: sels}
		},
		keys: func() []string { return flatKeys(p) },
	})
}

// Intersection matches if all of ps match the value.
func Intersection(ps ...any) Chainable {
	return chainable(&node{
		kind:  KindAnd,
		label: "and",
		args:  ps,
		match: func(value any) Result {
			sels := Selections{}
			for _, p := range ps {
				if !MatchPattern(p, value, sels) {
					return Result{Selections: sels}
				}
			}
			return Result{Matched: true, Selections: sels}
		},
		keys: func() []string { return flatKeys(ps) },
	})
}

// Union matches if at least one of ps matches the value, trying them in order.
// Every selection key of every alternative is bound to nil beforehand, so keys of
// alternatives not taken are still present.
func Union(ps ...any) Chainable {
	return chainable(&node{
		kind:  KindOr,
		label: "or",
		args:  ps,
		match: func(value any) Result {
			sels := Selections{}
			for _, k := range distinct(flatKeys(ps)) {
				sels[k] = nil
			}
			for _, p := range ps {
				if MatchPattern(p, value, sels) {
					return Result{Matched: true, Selections: sels}
				}
			}
			return Result{Selections: sels}
		},
		keys: func() []string { return distinct(flatKeys(ps)) },
	})
}

// Not matches if p does not. It never selects.
func Not(p any) Chainable {
	return chainable(&node{
		kind:  KindNot,
		label: "not",
		args:  []any{p},
		match: func(value any) Result {
			return Result{Matched: !MatchPattern(p, value, Discard)}
		},
	})
}

// When matches if predicate returns true for the value.
func When(predicate func(value any) bool) Chainable {
	return chainable(guard("when", predicate))
}

func guard(label string, predicate func(value any) bool, args ...any) *node {
	return &node{
		kind:  KindGuard,
		label: label,
		args:  args,
		match: func(value any) Result {
			return Result{Matched: predicate(value)}
		},
	}
}

// Select binds the matched value to key. An empty key denotes the anonymous
// selection. With a sub-pattern, Select matches only if the sub-pattern does, and
// the sub-pattern's own selections are kept alongside.
func Select(key string, sub ...any) Chainable {
	if len(sub) > 1 {
		err := newPatternError(sub, "select takes at most one sub-pattern, have %d", len(sub))
		tracer().Errorf("%v", err)
		panic(err)
	}
	if key == "" {
		key = AnonymousKey
	}
	label := "select " + key
	if key == AnonymousKey {
		label = "select"
	}
	return chainable(&node{
		kind:  KindSelect,
		label: label,
		args:  sub,
		match: func(value any) Result {
			sels := Selections{key: value}
			if len(sub) == 0 {
				return Result{Matched: true, Selections: sels}
			}
			return Result{Matched: MatchPattern(sub[0], value, sels), Selections: sels}
		},
		keys: func() []string { return append([]string{key}, flatKeys(sub)...) },
	})
}

// InstanceOf matches values of dynamic type T or, if T is an interface type, values
// implementing T.
//
//     pattern.InstanceOf[*os.PathError]()
//     pattern.InstanceOf[fmt.Stringer]()
//
func InstanceOf[T any]() Chainable {
	name := reflect.TypeOf((*T)(nil)).Elem().String()
	return chainable(guard("instanceOf "+name, func(value any) bool {
		_, ok := value.(T)
		return ok
	}))
}

// Shape wraps a complete pattern into an opaque guard, making the chainable methods
// available for structural patterns. Selections inside p are not propagated.
func Shape(p any) Chainable {
	return chainable(guard("shape", func(value any) bool {
		return MatchPattern(p, value, Discard)
	}, p))
}

// --- Wildcards -------------------------------------------------------------

// Any matches every value, including nil.
func Any() Chainable {
	return chainable(guard("any", func(any) bool { return true }))
}

// Wildcard is an alias for Any.
func Wildcard() Chainable {
	return Any()
}

// String matches values of string kind.
func String() StringPattern {
	return StringPattern{chainable(guard("string", values.IsString))}
}

// Number matches values of any Go numeric kind.
func Number() NumberPattern {
	return NumberPattern{chainable(guard("number", values.IsNumber))}
}

// Boolean matches values of bool kind.
func Boolean() Chainable {
	return chainable(guard("boolean", values.IsBool))
}

// Nullish matches nil and nil pointers (see values.IsNil).
func Nullish() Chainable {
	return chainable(guard("nullish", values.IsNil))
}

// NonNullable matches everything Nullish does not match.
func NonNullable() Chainable {
	return chainable(guard("nonNullable", func(value any) bool {
		return !values.IsNil(value)
	}))
}
