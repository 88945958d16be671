package reg

import (
	"strconv"
	"strings"
)

// Width is the size of a register access in bits.
type Width int

//go:generate go tool stringer -linecomment -type=Width
const (
	WIDTH_8  = Width(8)  // 8
	WIDTH_16 = Width(16) // 16
	WIDTH_32 = Width(32) // 32
)

// Valid reports whether the width is one the bus can perform.
func (w Width) Valid() bool {
	switch w {
	case WIDTH_8, WIDTH_16, WIDTH_32:
		return true
	}
	return false
}

// Bytes is the access size in bytes.
func (w Width) Bytes() uint32 {
	return uint32(w) / 8
}

// Mask of the bits the width can hold.
func (w Width) Mask() uint32 {
	if w >= WIDTH_32 {
		return 0xffffffff
	}
	return (uint32(1) << uint(w)) - 1
}

// ParseWidth parses "8", "16" or "32", optionally prefixed by "u" or
// "uint" as in the C type names.
func ParseWidth(text string) (w Width, err error) {
	text = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(text), "uint"), "u")
	n, err := strconv.Atoi(text)
	if err != nil {
		err = ErrWidth(-1)
		return
	}

	w = Width(n)
	if !w.Valid() {
		err = ErrWidth(n)
		w = 0
	}
	return
}
