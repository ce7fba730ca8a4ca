package pattern

import (
	"fmt"
	"strings"
)

// Kind tags the sort of a matcher node.
type Kind int8

// Matcher kinds. Client-provided matchers should report KindCustom.
const (
	KindCustom Kind = iota
	KindOptional
	KindArray
	KindSet
	KindMap
	KindAnd
	KindOr
	KindNot
	KindGuard
	KindSelect
)

var kindNames = [...]string{"custom", "optional", "array", "set", "map", "and", "or", "not", "guard", "select"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Result is the outcome of Matcher.Match. Selections may be nil.
type Result struct {
	Matched    bool
	Selections Selections
}

// Matcher is the protocol every pattern node implements. Match must not retain the
// value and must be free of side effects other than those of user predicates.
// SelectionKeys returns every key Match may ever select.
type Matcher interface {
	Match(value any) Result
	SelectionKeys() []string
	Kind() Kind
}

// VariadicMatcher is implemented by matchers which may absorb the middle segment of
// a tuple. Only spread arrays report true.
type VariadicMatcher interface {
	Matcher
	Variadic() bool
}

// node is the matcher implementation shared by all combinators of this package.
// Nodes are immutable after construction.
type node struct {
	kind     Kind
	label    string // name of the combinator, for diagnostics
	args     []any  // sub-patterns, in order
	match    func(value any) Result
	keys     func() []string
	variadic bool
}

func (n *node) Match(value any) Result {
	return n.match(value)
}

func (n *node) SelectionKeys() []string {
	if n.keys == nil {
		return nil
	}
	return n.keys()
}

func (n *node) Kind() Kind {
	return n.kind
}

func (n *node) Variadic() bool {
	return n.variadic
}

func (n *node) subpatterns() []any {
	return n.args
}

func (n *node) describeLabel() string {
	if n.variadic {
		return "..." + n.label
	}
	return n.label
}

// String renders the node as an s-expression, e.g. `(or "a" (select y))`.
func (n *node) String() string {
	var b strings.Builder
	if n.variadic {
		b.WriteString("...")
	}
	b.WriteString("(")
	b.WriteString(n.label)
	for _, a := range n.args {
		b.WriteString(" ")
		b.WriteString(sprint(a))
	}
	b.WriteString(")")
	return b.String()
}

func sprint(p any) string {
	switch x := p.(type) {
	case fmt.Stringer:
		return x.String()
	case string:
		return fmt.Sprintf("%q", x)
	}
	return fmt.Sprintf("%v", p)
}

// isOptional is true for matchers of kind optional. Record patterns accept missing
// keys for those.
func isOptional(p any) bool {
	m, ok := p.(Matcher)
	return ok && m.Kind() == KindOptional
}

func isVariadic(p any) bool {
	m, ok := p.(VariadicMatcher)
	return ok && m.Variadic()
}
