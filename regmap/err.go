package regmap

import (
	"errors"

	"github.com/coosharp/custom-macro-collection/translate"
)

var f = translate.From

var (
	ErrFormat    = errors.New(f("unsupported register map format"))
	ErrLoad      = errors.New(f("register map load failed"))
	ErrParse     = errors.New(f("register map parse failed"))
	ErrName      = errors.New(f("register name missing"))
	ErrDuplicate = errors.New(f("register name duplicated"))
	ErrField     = errors.New(f("field outside register"))
	ErrRange     = errors.New(f("register outside address space or unaligned"))
)

// ErrEntry locates an error to one register of the map.
type ErrEntry struct {
	Name string
	Err  error
}

func (err ErrEntry) Error() string {
	return f("register %v: %v", err.Name, err.Err)
}

func (err ErrEntry) Unwrap() error {
	return err.Err
}
