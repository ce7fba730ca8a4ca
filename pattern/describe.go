package pattern

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/fpmatch/values"
	tp "github.com/xlab/treeprint"
)

type describeProps struct {
	showKeys bool
	maxDepth int // < 0: unlimited
}

// Option is a type to help configuring Describe.
type Option struct {
	config func(describeProps) describeProps
}

// ShowSelectionKeys switches the listing of selection keys for matcher nodes on or off.
// Default is on.
func ShowSelectionKeys(b bool) Option {
	return Option{config: func(p describeProps) describeProps {
		p.showKeys = b
		return p
	}}
}

// MaxDepth limits the depth of the rendered tree. Deeper sub-patterns are elided
// as "…". Values ≤ 0 are ignored.
func MaxDepth(n int) Option {
	return Option{config: func(p describeProps) describeProps {
		if n > 0 {
			p.maxDepth = n
		}
		return p
	}}
}

// Describe renders a pattern as a tree, for debugging and for error messages.
//
//     .
//     └── tuple
//         ├── "get"
//         └── ...array  {y}
//             └── select y  {y}
//
func Describe(p any, opts ...Option) string {
	props := describeProps{showKeys: true, maxDepth: -1}
	for _, option := range opts {
		props = option.config(props)
	}
	printer := tp.New()
	describe(printer, p, props, 1)
	return printer.String()
}

func describe(printer tp.Tree, p any, props describeProps, depth int) {
	if props.maxDepth > 0 && depth > props.maxDepth {
		printer.AddNode("…")
		return
	}
	if m, ok := p.(Matcher); ok {
		label := matcherLabel(m)
		if props.showKeys {
			if keys := m.SelectionKeys(); len(keys) > 0 {
				label += "  {" + strings.Join(displayKeys(keys), ", ") + "}"
			}
		}
		w, ok := m.(walker)
		if !ok || len(w.subpatterns()) == 0 {
			printer.AddNode(label)
			return
		}
		branch := printer.AddBranch(label)
		for _, sub := range w.subpatterns() {
			describe(branch, sub, props, depth+1)
		}
		return
	}
	switch {
	case isTuplePattern(p):
		xs := values.Elements(p)
		if len(xs) == 0 {
			printer.AddNode("tuple []")
			return
		}
		branch := printer.AddBranch("tuple")
		for _, sub := range xs {
			describe(branch, sub, props, depth+1)
		}
	case isRecordPattern(p):
		keys := values.StringKeys(p)
		if len(keys) == 0 {
			printer.AddNode("record {}")
			return
		}
		branch := printer.AddBranch("record")
		rp := reflect.ValueOf(p)
		for _, k := range keys {
			sub := recordSub(rp, k)
			if isLeaf(sub) {
				branch.AddNode(fmt.Sprintf("%s: %s", k, literal(sub)))
				continue
			}
			describe(branch.AddBranch(k+":"), sub, props, depth+1)
		}
	default:
		printer.AddNode(literal(p))
	}
}

func matcherLabel(m Matcher) string {
	if l, ok := m.(interface{ describeLabel() string }); ok {
		return l.describeLabel()
	}
	return fmt.Sprintf("%s %T", m.Kind(), m)
}

func isLeaf(p any) bool {
	if _, ok := p.(Matcher); ok {
		return false
	}
	return !isTuplePattern(p) && !isRecordPattern(p)
}

func literal(p any) string {
	if s, ok := p.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	if p == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", p)
}

func displayKeys(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == AnonymousKey {
			k = "_"
		}
		out[i] = k
	}
	return out
}
