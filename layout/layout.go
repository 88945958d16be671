// Package layout answers questions about the memory layout of Go values:
// element counts of arrays, field offsets, and the enclosing struct of a
// member pointer.
//
// When the type and field are known when writing the code, use the forms
// the compiler checks:
//
//	n := len(arr)                             // ARRAY_SIZE, a constant for arrays
//	off := unsafe.Offsetof(pkt.Length)        // OFFSET_OF
//	pkt := ContainerOfOffset[packet](ptr, off) // CONTAINER_OF
//
// A misspelled field in any of these fails to compile. ArraySize, OffsetOf
// and ContainerOf take the type or field path as data, for layouts only
// known at run time (register maps, debugger expressions), and report bad
// paths as errors.
package layout

import (
	"reflect"
	"strings"
	"unsafe"
)

// ArraySize returns the element count of a fixed-size array, given either
// the array or a pointer to it. For an array known at compile time,
// len(arr) is the constant equivalent. Slices and other kinds are rejected, as
// their length is not part of their type.
func ArraySize(v any) (n int, err error) {
	t := reflect.TypeOf(v)
	if t == nil {
		err = ErrNotArray("nil")
		return
	}

	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Array {
		err = ErrNotArray(t.String())
		return
	}

	n = t.Len()
	return
}

// OffsetOf returns the byte offset of a field within the struct type of v.
// It is the run-time form of unsafe.Offsetof, for paths held as text.
//
// v may be a struct value or a pointer to one; a nil pointer is fine.
// path names the field, with dots selecting fields of nested structs.
// Fields promoted from embedded structs are found by their short name.
func OffsetOf(v any, path string) (offset uintptr, err error) {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return offsetOf(t, path)
}

func offsetOf(t reflect.Type, path string) (offset uintptr, err error) {
	if len(path) == 0 {
		err = ErrFieldPath
		return
	}

	if t == nil {
		err = ErrNotStruct("nil")
		return
	}

	var last string
	for _, name := range strings.Split(path, ".") {
		if t.Kind() == reflect.Pointer {
			err = ErrFieldIndirect{Type: t.String(), Field: last}
			return
		}
		if t.Kind() != reflect.Struct {
			err = ErrNotStruct(t.String())
			return
		}

		field, ok := t.FieldByName(name)
		if !ok {
			err = ErrFieldMissing{Type: t.String(), Field: name}
			return
		}

		// Promoted fields carry the index path through each embedded struct.
		for n, index := range field.Index {
			if n > 0 && t.Kind() == reflect.Pointer {
				err = ErrFieldIndirect{Type: t.String(), Field: name}
				return
			}
			step := t.Field(index)
			offset += step.Offset
			t = step.Type
		}
		last = name
	}

	return
}

// ContainerOfOffset returns the struct of type T that holds member at
// offset, as given by unsafe.Offsetof on the member's field. member must
// point into a live T.
func ContainerOfOffset[T any](member unsafe.Pointer, offset uintptr) *T {
	return (*T)(unsafe.Add(member, -int(offset)))
}

// ContainerOf is ContainerOfOffset with the field named by path, resolved
// at run time.
func ContainerOf[T any](member unsafe.Pointer, path string) (container *T, err error) {
	offset, err := offsetOf(reflect.TypeFor[T](), path)
	if err != nil {
		return
	}

	container = ContainerOfOffset[T](member, offset)
	return
}
