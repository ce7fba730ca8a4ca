package pattern

import (
	"fmt"
	"strings"
)

// AnonymousKey is the reserved selection key of an unnamed selection.
const AnonymousKey = "@fpmatch/anonymous-select-key"

// Sink receives selections during a match attempt.
type Sink interface {
	Select(key string, value any)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(key string, value any)

// Select calls f(key, value).
func (f SinkFunc) Select(key string, value any) {
	f(key, value)
}

type discard struct{}

func (discard) Select(string, any) {}

// Discard is a sink which drops all selections.
var Discard Sink = discard{}

// Selections maps selection keys to selected values. It is a Sink itself:
// writes to an existing key overwrite it.
type Selections map[string]any

// Select stores value under key.
func (s Selections) Select(key string, value any) {
	s[key] = value
}

// Get returns the selection for key. Use AnonymousKey for an unnamed selection.
func (s Selections) Get(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

// accumulate returns a sink appending every selection to a slice held in sels.
// Array, Set and Map combinators collect their elements' selections this way.
func accumulate(sels Selections) Sink {
	return SinkFunc(func(key string, value any) {
		xs, _ := sels[key].([]any)
		sels[key] = append(xs, value)
	})
}

// SelectionConflict is handed to a handler instead of selections if a pattern mixes
// an anonymous selection with named ones, or uses more than one anonymous selection.
// It signals a defective pattern and carries no usable data.
type SelectionConflict struct {
	Keys []string // all selection keys of the offending pattern
}

func (c SelectionConflict) String() string {
	keys := make([]string, len(c.Keys))
	for i, k := range c.Keys {
		if k == AnonymousKey {
			k = "<anonymous>"
		}
		keys[i] = k
	}
	return fmt.Sprintf("selection conflict: [%s]", strings.Join(keys, ", "))
}

// HasConflict checks a list of selection keys, as returned by SelectionKeys, for an
// anonymous key which is either repeated or accompanied by named keys.
func HasConflict(keys []string) bool {
	anon, named := 0, 0
	for _, k := range keys {
		if k == AnonymousKey {
			anon++
		} else {
			named++
		}
	}
	return anon > 1 || (anon > 0 && named > 0)
}
