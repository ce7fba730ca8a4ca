package fpmatch

import "github.com/npillmayer/fpmatch/pattern"

// Handler produces the output of a match expression for a matching clause.
// selections is the input itself if the pattern selected nothing, the selected value
// for a single anonymous selection, a pattern.Selections for named selections, and a
// pattern.SelectionConflict for a pattern mixing both.
type Handler[O any] func(selections any, input any) O

// Const returns a handler which produces o.
func Const[O any](o O) Handler[O] {
	return func(any, any) O {
		return o
	}
}

// Selected returns a handler which produces the selections, if they are of type O.
// Otherwise it produces the zero value of O.
func Selected[O any]() Handler[O] {
	return func(sel any, _ any) O {
		o, _ := sel.(O)
		return o
	}
}

// Input returns a handler which produces the input, if it is of type O.
// Otherwise it produces the zero value of O.
func Input[O any]() Handler[O] {
	return func(_ any, input any) O {
		o, _ := input.(O)
		return o
	}
}

// Named adapts a function over named selections to a handler. If the clause produced
// no named selections, f is called with an empty map.
func Named[O any](f func(pattern.Selections) O) Handler[O] {
	return func(sel any, _ any) O {
		s, ok := sel.(pattern.Selections)
		if !ok {
			s = pattern.Selections{}
		}
		return f(s)
	}
}

// Then returns a handler applying f to the output of h.
func Then[A, B any](h Handler[A], f func(A) B) Handler[B] {
	return func(sel any, input any) B {
		return f(h(sel, input))
	}
}
