package pattern

// Chainable is a matcher offering methods to derive further patterns from it.
// Every method returns a new pattern; the receiver stays unchanged and usable.
type Chainable struct {
	*node
}

var _ Matcher = Chainable{}
var _ VariadicMatcher = ArrayPattern{}

func chainable(n *node) Chainable {
	return Chainable{node: n}
}

// Optional is Optional(c).
func (c Chainable) Optional() Chainable {
	return Optional(c)
}

// And is Intersection(c, p).
func (c Chainable) And(p any) Chainable {
	return Intersection(c, p)
}

// Or is Union(c, p).
func (c Chainable) Or(p any) Chainable {
	return Union(c, p)
}

// Select is Select(key, c). An empty key selects anonymously.
func (c Chainable) Select(key string) Chainable {
	return Select(key, c)
}

// --- Arrays ----------------------------------------------------------------

// ArrayPattern is the result of Array. Arrays may be spread into tuple patterns.
type ArrayPattern struct {
	Chainable
}

func arrayChainable(n *node) ArrayPattern {
	return ArrayPattern{chainable(n)}
}

// Spread returns a copy of the array pattern flagged as variadic: inside a tuple
// pattern it matches the (possibly empty) segment between the fixed leading and
// trailing elements.
func (a ArrayPattern) Spread() ArrayPattern {
	n := *a.node
	n.variadic = true
	return arrayChainable(&n)
}

// Optional is Optional(a), keeping a's variadic flag.
func (a ArrayPattern) Optional() ArrayPattern {
	return a.wrap(Optional(a.unspread()))
}

// Select is Select(key, a), keeping a's variadic flag.
func (a ArrayPattern) Select(key string) ArrayPattern {
	return a.wrap(Select(key, a.unspread()))
}

// And is Intersection(a, p), keeping a's variadic flag.
func (a ArrayPattern) And(p any) ArrayPattern {
	return a.wrap(Intersection(a.unspread(), p))
}

// Or is Union(a, p), keeping a's variadic flag.
func (a ArrayPattern) Or(p any) ArrayPattern {
	return a.wrap(Union(a.unspread(), p))
}

func (a ArrayPattern) unspread() ArrayPattern {
	if !a.variadic {
		return a
	}
	n := *a.node
	n.variadic = false
	return arrayChainable(&n)
}

func (a ArrayPattern) wrap(c Chainable) ArrayPattern {
	c.node.variadic = a.variadic
	return ArrayPattern{c}
}

// --- Strings ---------------------------------------------------------------

// StringPattern is the result of String. Its methods add refinements.
type StringPattern struct {
	Chainable
}

func (s StringPattern) refine(label string, arg any, predicate func(string) bool) StringPattern {
	g := guard(label, func(value any) bool {
		str, ok := asString(value)
		return ok && predicate(str)
	}, arg)
	return StringPattern{Intersection(s, g)}
}

// --- Numbers ---------------------------------------------------------------

// NumberPattern is the result of Number. Its methods add refinements.
type NumberPattern struct {
	Chainable
}

func (n NumberPattern) refine(label string, args []any, predicate func(float64) bool) NumberPattern {
	g := guard(label, func(value any) bool {
		f, ok := asNumber(value)
		return ok && predicate(f)
	}, args...)
	return NumberPattern{Intersection(n, g)}
}
