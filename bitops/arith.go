package bitops

import (
	"cmp"
)

// Unsigned is the set of unsigned integer types the helpers accept.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is the set of types with a sign that Abs accepts.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Max returns the larger of x and y.
func Max[T cmp.Ordered](x, y T) T {
	if x < y {
		return y
	}
	return x
}

// Min returns the smaller of x and y.
func Min[T cmp.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Abs returns d when d is positive, else 0 - d.
// The most negative value of a signed integer type wraps to itself.
func Abs[T Signed](d T) T {
	if d > 0 {
		return d
	}
	return 0 - d
}
