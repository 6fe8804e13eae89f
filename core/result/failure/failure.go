package failure

import (
	"errors"
	"fmt"
	"runtime"

	pkgerrors "github.com/pkg/errors"
)

// Named is an error that you can read a name from
type Named interface {
	Name() string
}

// WithStackTrace is an error that you can read a stack trace from
type WithStackTrace interface {
	Stack() string
}

type Failure interface {
	error
	Named
}

type NamedWithStackTrace interface {
	Named
	WithStackTrace
}

type namedWithStackTrace struct {
	name  string
	stack pkgerrors.StackTrace
}

func (n namedWithStackTrace) Name() string {
	return n.name
}

func (n namedWithStackTrace) Stack() string {
	return fmt.Sprintf("%+v", n.stack)
}

// NamedWithCurrentStackTrace captures the stack of the caller's caller, so
// that error constructors do not show up in the trace.
func NamedWithCurrentStackTrace(name string) NamedWithStackTrace {
	const depth = 32

	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])

	f := make(pkgerrors.StackTrace, n)
	for i := 0; i < n; i++ {
		f[i] = pkgerrors.Frame(pcs[i])
	}

	return namedWithStackTrace{name, f}
}

type failure struct {
	name    string
	message string
	stack   string
	cause   error
}

func (f failure) Name() string {
	return f.name
}

func (f failure) Message() string {
	return f.message
}

func (f failure) Error() string {
	return f.message
}

func (f failure) Stack() string {
	return f.stack
}

func (f failure) Unwrap() error {
	return f.cause
}

// FromError converts any error into a Failure. Errors without a name are
// called "Error".
func FromError(err error) Failure {
	var fail Failure
	if errors.As(err, &fail) {
		return fail
	}
	f := failure{name: "Error", message: err.Error(), cause: err}
	var withStackTrace WithStackTrace
	if errors.As(err, &withStackTrace) {
		f.stack = withStackTrace.Stack()
	}
	return f
}

// NameOf returns the name of a failure in err's chain, or "" when there is
// none.
func NameOf(err error) string {
	var named Failure
	if errors.As(err, &named) {
		return named.Name()
	}
	return ""
}
