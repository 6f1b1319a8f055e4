// Package tt supports table-driven tests with little boilerplate.
//
// A typical use of this package looks like this:
//
//	func TestAdd(t *testing.T) {
//		tt.Test(t, add,
//			Args(1, 2).Rets(3),
//			Args(3, 4).Rets(7),
//		)
//	}
//
// See the test case for this package for more examples.
package tt

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Case represents a test case. It is created by the Args function, and offers
// setters that augment and return itself, so those calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, the values are compared with go-cmp, looking into
// unexported fields too.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases. The name of the function is
// derived using reflection.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	name := funcName(fn)
	for _, test := range tests {
		rets := call(fn, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if !match(retsMatcher, rets) {
				t.Errorf("%s(%s) returns (-want +got):\n%s",
					name, sprintCommaDelimited(test.args...),
					cmp.Diff(retsMatcher, rets, cmpOpts...))
			}
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

// ErrorWithMessage returns a Matcher that matches any non-nil error with the
// given message.
func ErrorWithMessage(msg string) Matcher { return errorWithMessage{msg} }

type errorWithMessage struct{ msg string }

func (m errorWithMessage) Match(v RetValue) bool {
	err, ok := v.(error)
	return ok && err.Error() == m.msg
}

// ErrorIs returns a Matcher that matches errors for which errors.Is reports
// true against target.
func ErrorIs(target error) Matcher { return errorIs{target} }

type errorIs struct{ target error }

func (m errorIs) Match(v RetValue) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, m.target)
}

var cmpOpts = []cmp.Option{cmp.Exporter(func(reflect.Type) bool { return true })}

func match(matchers, actual []any) bool {
	if len(matchers) != len(actual) {
		return false
	}
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, cmpOpts...)
}

func funcName(fn any) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "(unknown)"
	}
	name := f.Name()
	// Drop the package path, keeping receiver types of method expressions.
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func sprintCommaDelimited(args ...any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v", arg)
	}
	return b.String()
}

func call(fn any, args []any) []any {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		var paramType reflect.Type
		if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
			paramType = fnType.In(fnType.NumIn() - 1).Elem()
		} else {
			paramType = fnType.In(i)
		}
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value; use the zero value of
			// the parameter type instead.
			argsReflect[i] = reflect.Zero(paramType)
			continue
		}
		v := reflect.ValueOf(arg)
		// Untyped constants arrive as int, rune and so on; convert them to
		// named parameter types.
		if !v.Type().AssignableTo(paramType) && v.Type().ConvertibleTo(paramType) {
			v = v.Convert(paramType)
		}
		argsReflect[i] = v
	}
	retsReflect := fnValue.Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}
