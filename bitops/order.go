package bitops

import (
	"encoding/binary"
	"math/bits"
)

var (
	// HostLittleEndian is true when the host stores the LSB first.
	HostLittleEndian bool

	// HostOrder is the byte order of the host.
	HostOrder binary.ByteOrder = binary.BigEndian
)

func init() {
	var word [2]byte
	binary.NativeEndian.PutUint16(word[:], 0x0102)
	if word[0] == 0x02 {
		HostLittleEndian = true
		HostOrder = binary.LittleEndian
	}
}

// SwapU16 exchanges the two bytes of x.
func SwapU16(x uint16) uint16 {
	return (x&0xff00)>>8 | (x&0x00ff)<<8
}

// SwapU32 reverses the four bytes of x.
func SwapU32(x uint32) uint32 {
	return bits.ReverseBytes32(x)
}

// Htonl converts a host-order 32-bit value to network (big-endian) order.
func Htonl(x uint32) uint32 {
	if HostLittleEndian {
		return SwapU32(x)
	}
	return x
}

// Htons converts a host-order 16-bit value to network order.
func Htons(x uint16) uint16 {
	if HostLittleEndian {
		return SwapU16(x)
	}
	return x
}

// Ntohl converts a network-order 32-bit value to host order.
func Ntohl(x uint32) uint32 {
	return Htonl(x)
}

// Ntohs converts a network-order 16-bit value to host order.
func Ntohs(x uint16) uint16 {
	return Htons(x)
}
