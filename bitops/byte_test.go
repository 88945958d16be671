package bitops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	assert := assert.New(t)

	x := uint32(0x01020304)
	assert.Equal(uint8(0x04), Byte0(x))
	assert.Equal(uint8(0x03), Byte1(x))
	assert.Equal(uint8(0x02), Byte2(x))
	assert.Equal(uint8(0x01), Byte3(x))

	assert.Equal(uint8(0x04), MaskByte(x, 0))
	assert.Equal(uint8(0x01), MaskByte(x, 3))
	assert.Equal(uint8(0x00), MaskByte(x, 4))
	assert.Equal(uint8(0xab), MaskByte(uint64(0xab)<<56, 7))
	assert.Equal(uint8(0xcd), MaskByte(uint16(0xcd12), 1))
}

func TestMake(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(0x01020304), MakeU32(0x01, 0x02, 0x03, 0x04))
	assert.Equal(uint16(0xbeef), MakeU16(0xbe, 0xef))

	high, low := SplitU16(0xbeef)
	assert.Equal(uint8(0xbe), high)
	assert.Equal(uint8(0xef), low)

	assert.Equal([4]uint8{0xde, 0xad, 0xbe, 0xef}, SplitU32(0xdeadbeef))
}

func FuzzBytes(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0xffffffff))
	f.Add(uint32(0x80402010))

	f.Fuzz(func(t *testing.T, x uint32) {
		assert := assert.New(t)

		b0, b1, b2, b3 := Byte0(x), Byte1(x), Byte2(x), Byte3(x)
		assert.Equal(x, uint32(b0)|uint32(b1)<<8|uint32(b2)<<16|uint32(b3)<<24)
		assert.Equal(x, MakeU32(b3, b2, b1, b0))

		h, l := uint8(x>>8), uint8(x)
		u16 := MakeU16(h, l)
		assert.Equal(h, Byte1(uint32(u16)))
		assert.Equal(l, Byte0(uint32(u16)))

		for n := range uint(4) {
			assert.Equal(SplitU32(x)[3-n], MaskByte(x, n))
		}
	})
}
