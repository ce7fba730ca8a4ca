package fpmatch

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/fpmatch/pattern"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTupleSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	y, err := Match[int]([]any{"get", 2}).
		With(pattern.Tuple{"set", pattern.Any()}, Const(-1)).
		With(pattern.Tuple{"get", pattern.Select("y")}, Named(func(s pattern.Selections) int {
			return s["y"].(int)
		})).
		Exhaustive()
	require.NoError(t, err)
	if y != 2 {
		t.Errorf("expected selection y = 2, is %d", y)
	}
}

func TestMatchArraySelections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	input := map[string]any{"a": []any{}, "b": []any{"text"}}
	sels, err := Match[pattern.Selections](input).
		With(pattern.Record{
			"a": pattern.Array(pattern.Select("a")),
			"b": pattern.Array(pattern.Select("b")),
		}, Selected[pattern.Selections]()).
		Exhaustive()
	require.NoError(t, err)
	assert.Equal(t, pattern.Selections{"a": []any{}, "b": []any{"text"}}, sels)
}

func TestFirstMatchWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	predicates, handlers := 0, 0
	counting := pattern.When(func(any) bool {
		predicates++
		return true
	})
	handler := func(name string) Handler[string] {
		return func(any, any) string {
			handlers++
			return name
		}
	}
	out, err := Match[string](7).
		With("7", handler("string")).
		With(counting, handler("first")).
		With(counting, handler("second")).
		WithGuard(pattern.Any(), func(any) bool { predicates++; return true }, handler("guarded")).
		When(func(any) bool { predicates++; return true }, handler("when")).
		Exhaustive()
	require.NoError(t, err)
	assert.Equal(t, "first", out)
	if predicates != 1 || handlers != 1 {
		t.Errorf("expected 1 predicate and 1 handler call, have %d and %d", predicates, handlers)
	}
}

func TestExhaustiveFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	_, err := Match[int]("x").
		With(1, Const(1)).
		With(pattern.Number(), Const(2)).
		Exhaustive()
	require.Error(t, err)
	if !errors.Is(err, ErrNoMatch) {
		t.Errorf("expected error to be ErrNoMatch, is %v", err)
	}
	var nomatch *NoMatchError
	require.True(t, errors.As(err, &nomatch))
	assert.Equal(t, "x", nomatch.Input)
	assert.Equal(t, 2, nomatch.Clauses)
	t.Logf("err = %v", err)
	//
	_, err = Match[int](nil).Run()
	assert.True(t, errors.Is(err, ErrNoMatch), "an expression without clauses never matches")
}

func TestOtherwise(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	describe := func(x any) string {
		return Match[string](x).
			With(pattern.String().StartsWith("#"), Const("comment")).
			With(pattern.Number().Int(), Const("integer")).
			Otherwise(func(input any) string { return fmt.Sprintf("other: %v", input) })
	}
	assert.Equal(t, "comment", describe("# note"))
	assert.Equal(t, "integer", describe(3))
	assert.Equal(t, "other: 3.5", describe(3.5))
}

func TestWhenAndGuards(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	big := func(v any) bool { return v.(int) > 5 }
	classify := func(n int) string {
		return Match[string](n).
			WithGuard(pattern.Number(), big, Const("big")).
			When(func(v any) bool { return v.(int) < 0 }, Const("negative")).
			Otherwise(func(any) string { return "small" })
	}
	assert.Equal(t, "big", classify(10))
	assert.Equal(t, "negative", classify(-1))
	assert.Equal(t, "small", classify(3))
	//
	guardCalled := false
	_, err := Match[bool]("no number").
		WithGuard(pattern.Number(), func(any) bool { guardCalled = true; return true }, Const(true)).
		Exhaustive()
	assert.Error(t, err)
	assert.False(t, guardCalled, "guard must not run if the pattern does not match")
	//
	echo, _ := Match[any](42).When(func(any) bool { return true }, Selected[any]()).Exhaustive()
	assert.Equal(t, 42, echo, "When hands the input to the handler")
}

func TestWithAnyOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	sels, err := Match[pattern.Selections](map[string]any{"type": "b", "y": 2}).
		WithAnyOf(Selected[pattern.Selections](),
			pattern.Record{"type": "a", "x": pattern.Select("x")},
			pattern.Record{"type": "b", "y": pattern.Select("y")},
		).
		Exhaustive()
	require.NoError(t, err)
	assert.Equal(t, pattern.Selections{"x": nil, "y": 2}, sels)
	//
	out, err := Match[string]("ok").
		WithAnyOf(Const("alt"), "yes", "ok").
		Exhaustive()
	require.NoError(t, err)
	assert.Equal(t, "alt", out)
	//
	v, err := Match[any]([]any{1}).
		WithAnyOf(Selected[any](), pattern.Tuple{pattern.Select("")}, pattern.Record{"k": pattern.Select("")}).
		Exhaustive()
	require.NoError(t, err)
	assert.Equal(t, 1, v, "alternatives may each select anonymously")
	//
	assert.Panics(t, func() { Match[string]("x").WithAnyOf(Const("none")) })
}

func TestHandlerArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	input := map[string]any{"user": map[string]any{"name": "Ann"}, "id": 9}
	type call struct{ sel, input any }
	record := func(sel, in any) call { return call{sel, in} }
	//
	c, _ := Match[call](input).With(pattern.Record{"id": 9}, record).Exhaustive()
	assert.Equal(t, input, c.sel, "without selections the handler receives the input")
	assert.Equal(t, input, c.input)
	//
	c, _ = Match[call](input).With(pattern.Record{"user": pattern.Record{"name": pattern.Select("")}}, record).Exhaustive()
	assert.Equal(t, "Ann", c.sel, "an anonymous selection is passed as is")
	//
	c, _ = Match[call](input).With(pattern.Record{"id": pattern.Select("id")}, record).Exhaustive()
	assert.Equal(t, pattern.Selections{"id": 9}, c.sel)
}

func TestSelectionConflict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	input := map[string]any{"x": 1, "y": 2}
	sel, err := Match[any](input).
		With(pattern.Record{"x": pattern.Select(""), "y": pattern.Select("y")}, Selected[any]()).
		Exhaustive()
	require.NoError(t, err)
	conflict, ok := sel.(pattern.SelectionConflict)
	if !ok {
		t.Fatalf("expected a selection conflict, have %#v", sel)
	}
	assert.Equal(t, []string{pattern.AnonymousKey, "y"}, conflict.Keys)
	assert.True(t, strings.Contains(conflict.String(), "<anonymous>"))
	//
	sel, _ = Match[any]([]any{1, 2}).
		With(pattern.Tuple{pattern.Select(""), pattern.Select("")}, Selected[any]()).
		Exhaustive()
	_, ok = sel.(pattern.SelectionConflict)
	assert.True(t, ok, "two anonymous selections conflict")
}

func TestConstructionErrorsPanic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	matched := Match[int](1).With(1, Const(1))
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, pattern.ErrPattern) {
			t.Errorf("expected defective pattern to panic with a pattern error, have %v", r)
		}
	}()
	matched.With(pattern.Tuple{pattern.Rest(), pattern.Rest()}, Const(2))
}

func TestExpressionsAreImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	base := Match[string](1)
	one := base.With(1, Const("one"))
	two := base.With(pattern.Number(), Const("number"))
	assert.False(t, base.State().IsMatched())
	assert.True(t, one.State().IsMatched())
	out1, _ := one.Exhaustive()
	out2, _ := two.Exhaustive()
	assert.Equal(t, "one", out1)
	assert.Equal(t, "number", out2)
	_, err := base.Exhaustive()
	assert.Error(t, err)
	//
	var zero Expression[int]
	assert.False(t, zero.State().IsMatched())
}

func TestStateMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	check := func(e Expression[[]string]) string {
		var out []string
		switch m := e.State().Match(); m {
		case m.Matched(&out):
			return strings.Join(out, ",")
		case m.Unmatched():
			return "unmatched"
		}
		return "impossible"
	}
	e := Match[[]string]("a b")
	assert.Equal(t, "unmatched", check(e))
	e = e.With(pattern.String().Includes(" "), func(_ any, in any) []string {
		return strings.Fields(in.(string))
	})
	assert.Equal(t, "a,b", check(e))
}

func TestHandlers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	assert.Equal(t, 3, Const(3)(nil, nil))
	assert.Equal(t, "s", Selected[string]()("s", 1))
	assert.Equal(t, "", Selected[string]()(1, 1), "mismatching type yields the zero value")
	assert.Equal(t, 1, Input[int]()("s", 1))
	assert.Equal(t, 0, Named(func(s pattern.Selections) int { return len(s) })("s", nil))
	length := Then(Input[string](), func(s string) int { return len(s) })
	assert.Equal(t, 5, length(nil, "hello"))
	//
	n, err := Match[int]([]any{"len", "abc"}).
		With(pattern.Tuple{"len", pattern.Select("")}, Then(Selected[string](), func(s string) int {
			return len(s)
		})).
		Exhaustive()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStructInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpmatch")
	defer teardown()
	//
	type request struct {
		Method string `match:"method"`
		Path   string `match:"path"`
		Args   []any  `match:"args"`
	}
	route := func(r *request) string {
		return Match[string](r).
			With(pattern.Record{"method": "GET", "path": pattern.String().StartsWith("/users/")},
				Const("user")).
			With(pattern.Record{"method": "POST", "args": pattern.Tuple{"id", pattern.Rest(pattern.Number())}},
				Const("create")).
			Otherwise(func(any) string { return "not found" })
	}
	assert.Equal(t, "user", route(&request{Method: "GET", Path: "/users/7"}))
	assert.Equal(t, "create", route(&request{Method: "POST", Args: []any{"id", 1, 2}}))
	assert.Equal(t, "not found", route(&request{Method: "POST", Args: []any{"name"}}))
	assert.Equal(t, "not found", route(nil))
}
