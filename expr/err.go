package expr

import (
	"errors"

	"github.com/coosharp/custom-macro-collection/translate"
)

var f = translate.From

var (
	ErrBusMissing = errors.New(f("no bus attached"))
)

// ErrParseExpression reports an expression that does not yield an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("'%v' is not an integer expression", string(err))
}

// ErrArgument reports a builtin called with an unusable argument.
type ErrArgument struct {
	Func  string
	Index int
	Err   error
}

func (err ErrArgument) Error() string {
	return f("%v: argument %d: %v", err.Func, err.Index+1, err.Err)
}

func (err ErrArgument) Unwrap() error {
	return err.Err
}

var (
	ErrArgCount    = errors.New(f("wrong number of arguments"))
	ErrArgType     = errors.New(f("not an integer"))
	ErrArgNegative = errors.New(f("negative value"))
	ErrArgRange    = errors.New(f("value too wide"))
)
