package bitops

import (
	"errors"

	"github.com/coosharp/custom-macro-collection/translate"
)

var f = translate.From

var (
	ErrAlignZero = errors.New(f("alignment is zero"))
)

// ErrAlignment reports an alignment that is not a power of two.
type ErrAlignment uint64

func (ea ErrAlignment) Error() string {
	return f("alignment %#x is not a power of two", uint64(ea))
}

func (ea ErrAlignment) Is(err error) (ok bool) {
	_, ok = err.(ErrAlignment)
	return
}
