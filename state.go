package fpmatch

// State is the state of a match expression: unmatched, or matched with an output.
// Inspect it the same way as an option type:
//
//     var out string
//     switch m := expr.State().Match(); m {
//     case m.Matched(&out):
//         fmt.Println(out)
//     case m.Unmatched():
//         fmt.Println("no clause matched (yet)")
//     }
//
type State[O any] interface {
	Match() StateMatcher[O]
	IsMatched() bool
}

type state[O any] struct {
	output  O
	matched bool
}

func matchedState[O any](output O) State[O] {
	return &state[O]{output: output, matched: true}
}

func unmatchedState[O any]() State[O] {
	return &state[O]{}
}

func (s *state[O]) Match() StateMatcher[O] {
	return stateMatcher[O]{s: s}
}

func (s *state[O]) IsMatched() bool {
	return s.matched
}

// --- Matching --------------------------------------------------------------

// StateMatcher decomposes a State. Each method returns the matcher itself if the
// state has the requested form, nil otherwise.
type StateMatcher[O any] interface {
	Matched(*O) StateMatcher[O]
	Unmatched() StateMatcher[O]
}

// stateMatcher holds a pointer, which keeps it comparable for every O.
type stateMatcher[O any] struct {
	s *state[O]
}

func (sm stateMatcher[O]) Matched(out *O) StateMatcher[O] {
	if sm.s.matched {
		*out = sm.s.output
		return sm
	}
	return nil
}

func (sm stateMatcher[O]) Unmatched() StateMatcher[O] {
	if !sm.s.matched {
		return sm
	}
	return nil
}
