package mathutil

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrInvalidArgument is wrapped by every error returned for an input
// outside a function's domain.
var ErrInvalidArgument = errors.New("invalid argument")

type argErr struct {
	panicObj interface{}
	stack    string
}

func (a *argErr) Error() string {
	return fmt.Sprintf("%s: %v", ErrInvalidArgument, a.panicObj)
}

func (a *argErr) Unwrap() error { return ErrInvalidArgument }

// Stack returns the stack trace captured where the argument was rejected.
func (a *argErr) Stack() string { return a.stack }

// catch converts a panic raised by package must into an *argErr.
func catch(err *error) {
	if a := recover(); a != nil {
		*err = &argErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}
