package fpmatch

import (
	"fmt"

	"github.com/npillmayer/fpmatch/pattern"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// --- Errors ----------------------------------------------------------------

// ErrNoMatch is the cause of every failing Exhaustive/Run. Test for it with errors.Is.
var ErrNoMatch = errors.New("no pattern matches value")

// NoMatchError is returned by Exhaustive and Run if no clause matched.
type NoMatchError struct {
	Input   any // the unmatched input
	Clauses int // number of clauses tried
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("pattern matching error: no pattern matches value %#v (%d clause(s) tried)",
		e.Input, e.Clauses)
}

// Is makes every NoMatchError match ErrNoMatch.
func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

// --- Match expression ------------------------------------------------------

// Expression is a match expression over an input value, producing an output of
// type O. Create one with Match, add clauses with With, WithGuard, WithAnyOf and
// When, and finish it with Otherwise, Exhaustive or Run.
//
// Expressions are immutable: every clause method returns a new expression and
// leaves the receiver untouched. Once a clause has matched, further clauses are
// skipped without evaluating their patterns, guards or handlers.
type Expression[O any] struct {
	input   any
	state   State[O]
	clauses int // number of clauses tried so far
}

// Match creates a match expression for input.
//
//     s := fpmatch.Match[string](x).
//         With("A", fpmatch.Const("It's an A!")).
//         With("B", fpmatch.Const("It's a B!")).
//         Otherwise(func(any) string { return "neither" })
//
func Match[O any](input any) Expression[O] {
	return Expression[O]{input: input, state: unmatchedState[O]()}
}

func (e Expression[O]) current() State[O] {
	if e.state == nil {
		return unmatchedState[O]()
	}
	return e.state
}

// State returns the current state of the expression.
func (e Expression[O]) State() State[O] {
	return e.current()
}

// With adds a clause: if p matches the input, h produces the output.
func (e Expression[O]) With(p any, h Handler[O]) Expression[O] {
	return e.with([]any{p}, nil, h)
}

// WithGuard adds a clause: if p matches the input and guard returns true for the
// input, h produces the output. guard is not called if p does not match.
func (e Expression[O]) WithGuard(p any, guard func(input any) bool, h Handler[O]) Expression[O] {
	return e.with([]any{p}, guard, h)
}

// WithAnyOf adds a clause: if any of ps matches the input, h produces the output.
// The alternatives are tried like a pattern.Union, i.e. selection keys of
// alternatives not taken are bound to nil.
func (e Expression[O]) WithAnyOf(h Handler[O], ps ...any) Expression[O] {
	return e.with(ps, nil, h)
}

// with checks the clause's patterns for construction errors (panicking with a
// *pattern.PatternError) before anything else.
func (e Expression[O]) with(ps []any, guard func(any) bool, h Handler[O]) Expression[O] {
	if len(ps) == 0 {
		err := &pattern.PatternError{Err: errors.New("clause without pattern")}
		tracer().Errorf("%v", err)
		panic(err)
	}
	for _, p := range ps {
		pattern.MustValidate(p)
	}
	if e.current().IsMatched() {
		return e
	}
	e.clauses++
	candidate := ps[0]
	if len(ps) > 1 {
		candidate = pattern.Union(ps...)
	}
	sink := &collector{sels: pattern.Selections{}}
	if !pattern.MatchPattern(candidate, e.input, sink) {
		return e
	}
	if guard != nil && !guard(e.input) {
		tracer().Debugf("clause #%d: pattern matched, guard rejected", e.clauses)
		return e
	}
	tracer().Debugf("clause #%d matched input %v", e.clauses, e.input)
	sel := sink.selections(e.input, ps)
	e.state = matchedState(h(sel, e.input))
	return e
}

// When adds a clause: if predicate returns true for the input, h produces the
// output. h receives the input for both of its arguments.
func (e Expression[O]) When(predicate func(input any) bool, h Handler[O]) Expression[O] {
	if e.current().IsMatched() {
		return e
	}
	e.clauses++
	if !predicate(e.input) {
		return e
	}
	tracer().Debugf("clause #%d (predicate) matched input %v", e.clauses, e.input)
	e.state = matchedState(h(e.input, e.input))
	return e
}

// Otherwise finishes the expression, returning the output of the matching clause
// or, if no clause matched, h(input).
func (e Expression[O]) Otherwise(h func(input any) O) O {
	var out O
	if e.current().Match().Matched(&out) != nil {
		return out
	}
	return h(e.input)
}

// Exhaustive finishes the expression, returning the output of the matching clause.
// If no clause matched, it returns a *NoMatchError.
func (e Expression[O]) Exhaustive() (O, error) {
	var out O
	switch m := e.current().Match(); m {
	case m.Matched(&out):
		return out, nil
	case m.Unmatched():
	}
	err := &NoMatchError{Input: e.input, Clauses: e.clauses}
	tracer().Debugf("%v", err)
	return out, err
}

// Run is an alias for Exhaustive.
func (e Expression[O]) Run() (O, error) {
	return e.Exhaustive()
}

// --- Selections ------------------------------------------------------------

// collector is the selection sink of a single clause.
type collector struct {
	sels     pattern.Selections
	selected bool
}

func (c *collector) Select(key string, value any) {
	c.selected = true
	c.sels[key] = value
}

// selections computes the handler's view of the selections: the input if nothing
// was selected, a conflict marker for defective patterns, the anonymous selection,
// or the named selections.
func (c *collector) selections(input any, ps []any) any {
	if !c.selected {
		return input
	}
	if keys, conflict := conflicting(ps); conflict {
		return pattern.SelectionConflict{Keys: keys}
	}
	if v, ok := c.sels[pattern.AnonymousKey]; ok {
		if len(c.sels) > 1 {
			return pattern.SelectionConflict{Keys: sortedKeys(c.sels)}
		}
		return v
	}
	return c.sels
}

// conflicting checks the selection keys of a clause's patterns. Alternatives may each
// select anonymously, but no single pattern may select anonymously twice.
func conflicting(ps []any) ([]string, bool) {
	var all []string
	conflict := false
	for _, p := range ps {
		keys := pattern.SelectionKeys(p)
		conflict = conflict || pattern.HasConflict(keys)
		for _, k := range keys {
			if !slices.Contains(all, k) {
				all = append(all, k)
			}
		}
	}
	return all, conflict || pattern.HasConflict(all)
}

func sortedKeys(sels pattern.Selections) []string {
	keys := maps.Keys(sels)
	slices.Sort(keys)
	return keys
}
