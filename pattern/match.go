package pattern

import (
	"reflect"

	"github.com/npillmayer/fpmatch/values"
	"golang.org/x/exp/slices"
)

// Tuple is a pattern for sequences. Every slice or array works as a tuple pattern;
// Tuple is a convenient spelling for []any.
type Tuple []any

// Record is a pattern for records. Every map with string keys works as a record
// pattern; Record is a convenient spelling for map[string]any.
type Record map[string]any

// MatchPattern reports whether value matches pattern p, forwarding all selections
// to sink. Rules, first applicable wins:
//
//  1. p is a Matcher: delegate to it, forward its selections if it matched.
//  2. p is a tuple pattern: value must be a sequence matching element-wise, with a
//     spread array absorbing a possibly empty middle segment.
//  3. p is a record pattern: value must be record-like and every key of p must exist
//     in value (or have an optional sub-pattern), with matching field values.
//  4. otherwise p is a literal, compared with values.Equal.
//
// MatchPattern panics with a *PatternError if it meets a tuple pattern with more
// than one spread array.
func MatchPattern(p, value any, sink Sink) bool {
	if m, ok := p.(Matcher); ok {
		r := m.Match(value)
		if r.Matched {
			for k, v := range r.Selections {
				sink.Select(k, v)
			}
		}
		return r.Matched
	}
	switch {
	case isTuplePattern(p):
		if values.Classify(value) != values.Sequence {
			return false
		}
		return matchTuple(p, value, sink)
	case isRecordPattern(p):
		if !values.IsRecordLike(value) {
			return false
		}
		return matchRecord(p, value, sink)
	}
	return values.Equal(p, value)
}

func isTuplePattern(p any) bool {
	return values.Classify(p) == values.Sequence
}

func isRecordPattern(p any) bool {
	return values.IsStringKeyedMap(p)
}

// segments is a tuple pattern split around its spread array.
type segments struct {
	start    []any
	variadic any // nil if the tuple is of fixed length
	end      []any
}

func segment(p any) (segments, error) {
	var seg segments
	count := 0
	for _, sub := range values.Elements(p) {
		switch {
		case isVariadic(sub):
			count++
			seg.variadic = sub
		case count > 0:
			seg.end = append(seg.end, sub)
		default:
			seg.start = append(seg.start, sub)
		}
	}
	if count > 1 {
		return seg, newPatternError(p, "tuple contains %d spread arrays, at most one is allowed", count)
	}
	return seg, nil
}

func matchTuple(p, value any, sink Sink) bool {
	subs := values.Elements(p)
	xs := values.Elements(value)
	seg, err := segment(p)
	if err != nil {
		tracer().Errorf("%v", err)
		panic(err)
	}
	if seg.variadic == nil {
		if len(subs) != len(xs) {
			return false
		}
		for i, sub := range subs {
			if !MatchPattern(sub, xs[i], sink) {
				return false
			}
		}
		return true
	}
	if len(xs) < len(seg.start)+len(seg.end) {
		return false
	}
	startValues := xs[:len(seg.start)]
	middleValues := xs[len(seg.start) : len(xs)-len(seg.end)]
	endValues := xs[len(xs)-len(seg.end):]
	tracer().Debugf("tuple segments: start=%v, middle=%v, end=%v", startValues, middleValues, endValues)
	for i, sub := range seg.start {
		if !MatchPattern(sub, startValues[i], sink) {
			return false
		}
	}
	for i, sub := range seg.end {
		if !MatchPattern(sub, endValues[i], sink) {
			return false
		}
	}
	return MatchPattern(seg.variadic, slices.Clip(middleValues), sink)
}

func matchRecord(p, value any, sink Sink) bool {
	rp := reflect.ValueOf(p)
	for _, k := range values.StringKeys(p) {
		sub := recordSub(rp, k)
		v, found := values.Field(value, k)
		if !found && !isOptional(sub) {
			return false
		}
		if !MatchPattern(sub, v, sink) {
			return false
		}
	}
	return true
}

// recordSub returns the sub-pattern stored under key k of record pattern rp.
func recordSub(rp reflect.Value, k string) any {
	return rp.MapIndex(reflect.ValueOf(k).Convert(rp.Type().Key())).Interface()
}

// SelectionKeys returns every key a match against p may select, in pattern order.
// Keys of record patterns are visited in ascending key order.
func SelectionKeys(p any) []string {
	if m, ok := p.(Matcher); ok {
		return m.SelectionKeys()
	}
	var keys []string
	switch {
	case isTuplePattern(p):
		for _, sub := range values.Elements(p) {
			keys = append(keys, SelectionKeys(sub)...)
		}
	case isRecordPattern(p):
		rp := reflect.ValueOf(p)
		for _, k := range values.StringKeys(p) {
			sub := recordSub(rp, k)
			keys = append(keys, SelectionKeys(sub)...)
		}
	}
	return keys
}

func flatKeys(ps []any) []string {
	var keys []string
	for _, p := range ps {
		keys = append(keys, SelectionKeys(p)...)
	}
	return keys
}

// distinct removes duplicate keys, keeping the first occurrence.
func distinct(keys []string) []string {
	var out []string
	for _, k := range keys {
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	return out
}
