package pattern

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/fpmatch/values"
	"github.com/pkg/errors"
)

// ErrPattern is the cause of every construction error. Test for it with errors.Is.
var ErrPattern = errors.New("invalid pattern")

// PatternError is raised (by panic) when a pattern is built in a way which cannot
// work, and returned by Validate.
type PatternError struct {
	Pattern any   // the offending pattern
	Err     error // what is wrong with it
}

func newPatternError(p any, format string, args ...any) *PatternError {
	return &PatternError{Pattern: p, Err: errors.Errorf(format, args...)}
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *PatternError) Unwrap() error {
	return e.Err
}

// Is makes every PatternError match ErrPattern.
func (e *PatternError) Is(target error) bool {
	return target == ErrPattern
}

// walker is implemented by the nodes of this package.
type walker interface {
	subpatterns() []any
}

// Validate inspects a complete pattern tree and reports every construction problem
// it finds. The result is nil or a *multierror.Error collecting *PatternErrors.
// Client matchers are opaque to Validate.
func Validate(p any) error {
	var errs *multierror.Error
	validate(p, &errs)
	return errs.ErrorOrNil()
}

func validate(p any, errs **multierror.Error) {
	if w, ok := p.(walker); ok {
		for _, sub := range w.subpatterns() {
			validate(sub, errs)
		}
		return
	}
	if _, ok := p.(Matcher); ok {
		return
	}
	switch {
	case isTuplePattern(p):
		if _, err := segment(p); err != nil {
			*errs = multierror.Append(*errs, err)
		}
		for _, sub := range values.Elements(p) {
			validate(sub, errs)
		}
	case isRecordPattern(p):
		rp := reflect.ValueOf(p)
		for _, k := range values.StringKeys(p) {
			validate(recordSub(rp, k), errs)
		}
	}
}

// MustValidate panics with the first problem Validate reports.
func MustValidate(p any) {
	err := Validate(p)
	if err == nil {
		return
	}
	var merr *multierror.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		err = merr.Errors[0]
	}
	tracer().Errorf("%v", err)
	panic(err)
}
