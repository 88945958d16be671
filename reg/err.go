package reg

import (
	"errors"

	"github.com/coosharp/custom-macro-collection/translate"
)

var f = translate.From

var (
	ErrBusMissing = errors.New(f("bus missing"))
	ErrMapSize    = errors.New(f("mapping size is zero"))
	ErrFieldRange = errors.New(f("field exceeds register width"))
)

// ErrWidth reports an unsupported register width.
type ErrWidth int

func (ew ErrWidth) Error() string {
	return f("width %v is not 8, 16 or 32", int(ew))
}

func (ew ErrWidth) Is(err error) (ok bool) {
	_, ok = err.(ErrWidth)
	return
}

// ErrUnaligned reports an address that is not aligned to its access width.
type ErrUnaligned struct {
	Addr  uint32
	Width Width
}

func (err ErrUnaligned) Error() string {
	return f("address %#08x is not aligned for a %v-bit access", err.Addr, err.Width.String())
}

func (err ErrUnaligned) Is(target error) (ok bool) {
	_, ok = target.(ErrUnaligned)
	return
}

// ErrOutOfRange reports an access outside the bus window.
type ErrOutOfRange struct {
	Addr  uint32
	Width Width
	Base  uint32
	Size  uint32
}

func (err ErrOutOfRange) Error() string {
	return f("%v-bit access at %#08x is outside window %#08x+%#x", err.Width.String(), err.Addr, err.Base, err.Size)
}

func (err ErrOutOfRange) Is(target error) (ok bool) {
	_, ok = target.(ErrOutOfRange)
	return
}
