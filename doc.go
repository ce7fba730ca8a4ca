/*
Package fpmatch provides match expressions over runtime structural patterns.

A match expression takes an input value and a sequence of clauses. Clauses are tried
in order, and the handler of the first clause whose pattern matches produces the
result; later clauses are not evaluated.

    area, err := fpmatch.Match[float64](shape).
        With(pattern.Record{"kind": "circle", "r": pattern.Number().Select("r")},
            fpmatch.Named(func(s pattern.Selections) float64 {
                r, _ := values.ToFloat(s["r"])
                return math.Pi * r * r
            })).
        With(pattern.Record{"kind": "square", "side": pattern.Select("")},
            func(side any, _ any) float64 {
                x, _ := values.ToFloat(side)
                return x * x
            }).
        Exhaustive()

Patterns are built with package pattern. Handlers receive the selections of the
matching pattern and the input: the input itself if the pattern selects nothing, the
selected value for a lone anonymous selection, and pattern.Selections otherwise.

Expressions are immutable values; every clause method returns a new expression.
Match expressions are synchronous and involve no I/O.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fpmatch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpmatch'.
func tracer() tracing.Trace {
	return tracing.Select("fpmatch")
}
