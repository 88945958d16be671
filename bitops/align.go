package bitops

// BitsToBytes returns the number of bytes needed to hold n bits.
func BitsToBytes[T Unsigned](n T) T {
	return (n + 7) >> 3
}

// BytesToBits returns the number of bits in n bytes.
func BytesToBits[T Unsigned](n T) T {
	return n << 3
}

// IsPow2 reports whether x is a non-zero power of two.
func IsPow2[T Unsigned](x T) bool {
	return x != 0 && x&(x-1) == 0
}

// CheckAlign validates an alignment for RoundDown and RoundUp.
func CheckAlign[T Unsigned](align T) (err error) {
	switch {
	case align == 0:
		err = ErrAlignZero
	case !IsPow2(align):
		err = ErrAlignment(align)
	}
	return
}

// RoundDown rounds x down to a multiple of align, a power of two.
func RoundDown[T Unsigned](x, align T) T {
	return x &^ (align - 1)
}

// RoundUp rounds x up to a multiple of align, a power of two.
// The result wraps when x is within align-1 of the top of T.
func RoundUp[T Unsigned](x, align T) T {
	return (x + align - 1) &^ (align - 1)
}

// IsAligned reports whether x is a multiple of align, a power of two.
func IsAligned[T Unsigned](x, align T) bool {
	return x&(align-1) == 0
}

// RoundDown2 rounds x down to a multiple of 2.
func RoundDown2[T Unsigned](x T) T { return RoundDown(x, 2) }

// RoundDown4 rounds x down to a multiple of 4.
func RoundDown4[T Unsigned](x T) T { return RoundDown(x, 4) }

// RoundUp2 rounds x up to a multiple of 2.
func RoundUp2[T Unsigned](x T) T { return RoundUp(x, 2) }

// RoundUp4 rounds x up to a multiple of 4.
func RoundUp4[T Unsigned](x T) T { return RoundUp(x, 4) }
