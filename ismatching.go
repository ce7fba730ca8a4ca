package fpmatch

import "github.com/npillmayer/fpmatch/pattern"

// IsMatching reports whether value matches p. Selections are discarded.
// A defective pattern panics with a *pattern.PatternError.
func IsMatching(p, value any) bool {
	pattern.MustValidate(p)
	return pattern.MatchPattern(p, value, pattern.Discard)
}

// Matching returns a predicate checking values against p.
//
//     hasName := fpmatch.Matching(pattern.Record{"name": pattern.String()})
//     if hasName(input) { … }
//
// p is validated once, when Matching is called.
func Matching(p any) func(value any) bool {
	pattern.MustValidate(p)
	return func(value any) bool {
		return pattern.MatchPattern(p, value, pattern.Discard)
	}
}
