package bitops

const (
	BITS_PER_BYTE = 8    // Bits in a byte.
	BYTE_MASK     = 0xff // Mask of the low byte.
)

// Byte0 returns the least significant byte of x.
func Byte0(x uint32) uint8 {
	return uint8(x & BYTE_MASK)
}

// Byte1 returns bits 8..15 of x.
func Byte1(x uint32) uint8 {
	return uint8((x >> 8) & BYTE_MASK)
}

// Byte2 returns bits 16..23 of x.
func Byte2(x uint32) uint8 {
	return uint8((x >> 16) & BYTE_MASK)
}

// Byte3 returns the most significant byte of x.
func Byte3(x uint32) uint8 {
	return uint8((x >> 24) & BYTE_MASK)
}

// MaskByte returns byte number n of data, where byte 0 is the LSB.
func MaskByte[T Unsigned](data T, n uint) uint8 {
	return uint8((data >> (n << 3)) & BYTE_MASK)
}

// MakeU16 composes a 16-bit value, high byte first.
func MakeU16(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// MakeU32 composes a 32-bit value from b3 (most significant) down to b0.
func MakeU32(b3, b2, b1, b0 uint8) uint32 {
	return uint32(b3)<<24 |
		uint32(b2)<<16 |
		uint32(b1)<<8 |
		uint32(b0)
}

// SplitU16 is the inverse of MakeU16.
func SplitU16(x uint16) (high, low uint8) {
	high = uint8(x >> 8)
	low = uint8(x & BYTE_MASK)
	return
}

// SplitU32 returns the bytes of x, most significant first.
func SplitU32(x uint32) [4]uint8 {
	return [4]uint8{Byte3(x), Byte2(x), Byte1(x), Byte0(x)}
}
