package pattern

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/fpmatch/values"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

func asString(value any) (string, bool) {
	return values.AsString(value)
}

func asNumber(value any) (float64, bool) {
	return values.ToFloat(value)
}

// --- String refinements ----------------------------------------------------

// StartsWith refines s to strings with the given prefix.
func (s StringPattern) StartsWith(prefix string) StringPattern {
	return s.refine("startsWith", prefix, func(str string) bool {
		return strings.HasPrefix(str, prefix)
	})
}

// EndsWith refines s to strings with the given suffix.
func (s StringPattern) EndsWith(suffix string) StringPattern {
	return s.refine("endsWith", suffix, func(str string) bool {
		return strings.HasSuffix(str, suffix)
	})
}

// MinLength refines s to strings of at least min runes.
func (s StringPattern) MinLength(min int) StringPattern {
	return s.refine("minLength", min, func(str string) bool {
		return values.Within(utf8.RuneCountInString(str), min, math.MaxInt)
	})
}

// Length refines s to strings of exactly n runes.
func (s StringPattern) Length(n int) StringPattern {
	return s.refine("length", n, func(str string) bool {
		return values.Within(utf8.RuneCountInString(str), n, n)
	})
}

// MaxLength refines s to strings of at most max runes.
func (s StringPattern) MaxLength(max int) StringPattern {
	return s.refine("maxLength", max, func(str string) bool {
		return values.Within(utf8.RuneCountInString(str), 0, max)
	})
}

// Includes refines s to strings containing substr.
func (s StringPattern) Includes(substr string) StringPattern {
	return s.refine("includes", substr, func(str string) bool {
		return strings.Contains(str, substr)
	})
}

// Regex refines s to strings in which the regular expression expr finds a match.
// expr uses Perl/.NET syntax (package regexp2). An invalid expression is a
// construction error and panics.
func (s StringPattern) Regex(expr string) StringPattern {
	re := compileRegex(expr)
	return s.refine("regex", expr, func(str string) bool {
		ok, err := re.MatchString(str)
		if err != nil {
			tracer().Errorf("regex %q: %v", expr, err)
			return false
		}
		return ok
	})
}

// RegexTimeout limits the time a single regex refinement may spend on a string.
const RegexTimeout = 2 * time.Second

// Compiled expressions are shared between patterns; patterns are frequently
// rebuilt at their call-site. Entries expire regexCacheExpiration after they were
// compiled, so expressions built from dynamic strings do not pile up.
const (
	regexCacheExpiration = 10 * time.Minute
	regexCacheCleanup    = 20 * time.Minute
)

var regexCache = cache.New(regexCacheExpiration, regexCacheCleanup)

func compileRegex(expr string) *regexp2.Regexp {
	if re, found := regexCache.Get(expr); found {
		return re.(*regexp2.Regexp)
	}
	tracer().Debugf("compiling regex %q", expr)
	re, err := regexp2.Compile(expr, regexp2.RE2)
	if err != nil {
		re, err = regexp2.Compile(expr, regexp2.None)
	}
	if err != nil {
		perr := &PatternError{Pattern: expr, Err: errors.Wrapf(err, "cannot compile regex %q", expr)}
		tracer().Errorf("%v", perr)
		panic(perr)
	}
	re.MatchTimeout = RegexTimeout
	regexCache.Set(expr, re, cache.DefaultExpiration)
	return re
}

// --- Number refinements ----------------------------------------------------

// Between refines n to numbers x with min ≤ x ≤ max.
func (n NumberPattern) Between(min, max float64) NumberPattern {
	return n.refine("between", []any{min, max}, func(x float64) bool {
		return values.Within(x, min, max)
	})
}

// Lt refines n to numbers less than max.
func (n NumberPattern) Lt(max float64) NumberPattern {
	return n.refine("lt", []any{max}, func(x float64) bool { return x < max })
}

// Gt refines n to numbers greater than min.
func (n NumberPattern) Gt(min float64) NumberPattern {
	return n.refine("gt", []any{min}, func(x float64) bool { return x > min })
}

// Lte refines n to numbers less than or equal to max.
func (n NumberPattern) Lte(max float64) NumberPattern {
	return n.refine("lte", []any{max}, func(x float64) bool {
		return values.Within(x, math.Inf(-1), max)
	})
}

// Gte refines n to numbers greater than or equal to min.
func (n NumberPattern) Gte(min float64) NumberPattern {
	return n.refine("gte", []any{min}, func(x float64) bool {
		return values.Within(x, min, math.Inf(1))
	})
}

// Int refines n to integral numbers. Floats without a fractional part qualify.
func (n NumberPattern) Int() NumberPattern {
	return n.refine("int", nil, func(x float64) bool { return values.IsInteger(x) })
}

// Finite refines n to numbers which are neither infinite nor NaN.
func (n NumberPattern) Finite() NumberPattern {
	return n.refine("finite", nil, func(x float64) bool { return values.IsFinite(x) })
}

// Positive refines n to numbers greater than 0.
func (n NumberPattern) Positive() NumberPattern {
	return n.refine("positive", nil, func(x float64) bool { return x > 0 })
}

// Negative refines n to numbers less than 0.
func (n NumberPattern) Negative() NumberPattern {
	return n.refine("negative", nil, func(x float64) bool { return x < 0 })
}
