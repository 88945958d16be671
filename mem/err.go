package mem

import (
	"errors"

	"github.com/coosharp/custom-macro-collection/translate"
)

var f = translate.From

var (
	ErrLength = errors.New(f("length exceeds buffer"))
)

// ErrBufferTooSmall reports a destination that cannot hold a string and
// its terminator.
type ErrBufferTooSmall struct {
	Need int
	Have int
}

func (err ErrBufferTooSmall) Error() string {
	return f("buffer too small: need %d bytes, have %d", err.Need, err.Have)
}
