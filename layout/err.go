package layout

import (
	"errors"

	"github.com/coosharp/custom-macro-collection/translate"
)

var f = translate.From

var (
	ErrFieldPath = errors.New(f("field path empty"))
)

// ErrNotArray reports a value that is not a fixed-size array.
type ErrNotArray string

func (err ErrNotArray) Error() string {
	return f("%v is not a fixed-size array", string(err))
}

// ErrNotStruct reports a field lookup on a type that is not a struct.
type ErrNotStruct string

func (err ErrNotStruct) Error() string {
	return f("%v is not a struct", string(err))
}

// ErrFieldMissing reports a field that does not exist in a struct.
type ErrFieldMissing struct {
	Type  string
	Field string
}

func (err ErrFieldMissing) Error() string {
	return f("%v has no field %v", err.Type, err.Field)
}

// ErrFieldIndirect reports a field path that passes through a pointer,
// which has no fixed offset from the start of the outer struct.
type ErrFieldIndirect struct {
	Type  string
	Field string
}

func (err ErrFieldIndirect) Error() string {
	return f("%v field %v is reached through a pointer", err.Type, err.Field)
}
