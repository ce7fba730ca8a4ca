/*
Package pattern implements runtime structural patterns and the algorithm matching them
against arbitrary values.

A pattern is one of

  - a literal (42, "get", true, nil), matched by equality,
  - a tuple pattern (Tuple, or any slice or array), matched element-wise against a sequence,
  - a record pattern (Record, or any map with string keys), matched against a subset of the
    fields of a map or struct,
  - a Matcher, i.e. a node created by one of the combinators of this package (or
    by clients implementing the Matcher interface themselves).

Combinators nest freely:

    p := pattern.Record{
        "type": pattern.Union("click", "keypress"),
        "pos":  pattern.Tuple{pattern.Number().Select("x"), pattern.Number().Select("y")},
        "tags": pattern.Array(pattern.String()).Optional(),
    }
    ok := pattern.MatchPattern(p, event, pattern.Discard)

Selections

Select nodes bind parts of the matched value to keys. During matching, bindings flow
into a Sink. Array, Set and Map combinators collect the selections of their elements
into slices; Optional and Union bind nil for every key they could have produced but
did not.

Variadic Tuples

A tuple pattern may contain at most one spread array, which absorbs the middle part of
a sequence:

    pattern.Tuple{"get", pattern.Rest(pattern.Number())}       // ["get", 1, 2, 3]
    pattern.Tuple{pattern.Rest(), pattern.String()}             // [..., "last"]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpmatch.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("fpmatch.pattern")
}
