package bitops

// Bit returns the single-bit mask for bit number n (0 is the LSB).
// Bits beyond the width of T yield 0.
func Bit[T Unsigned](n uint) T {
	return T(1) << n
}

// SetBit sets bit n of *reg and returns the new value.
func SetBit[T Unsigned](reg *T, n uint) T {
	*reg |= Bit[T](n)
	return *reg
}

// ClrBit clears bit n of *reg and returns the new value.
func ClrBit[T Unsigned](reg *T, n uint) T {
	*reg &^= Bit[T](n)
	return *reg
}

// TogBit flips bit n of *reg and returns the new value.
func TogBit[T Unsigned](reg *T, n uint) T {
	*reg ^= Bit[T](n)
	return *reg
}

// BitIsSet reports whether bit n of reg is 1.
func BitIsSet[T Unsigned](reg T, n uint) bool {
	return reg&Bit[T](n) != 0
}

// BitIsClr reports whether bit n of reg is 0.
func BitIsClr[T Unsigned](reg T, n uint) bool {
	return reg&Bit[T](n) == 0
}
