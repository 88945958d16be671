package bitops

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsBytes(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		bits  uint
		bytes uint
	}){
		{0, 0},
		{1, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
	}

	for _, entry := range table {
		assert.Equal(entry.bytes, BitsToBytes(entry.bits), "%d bits", entry.bits)
	}

	assert.Equal(uint32(8), BytesToBits(uint32(1)))
	assert.Equal(uint32(0), BytesToBits(uint32(0)))
}

func TestRound(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(16), RoundUp[uint32](13, 4))
	assert.Equal(uint32(12), RoundDown[uint32](13, 4))
	assert.Equal(uint32(12), RoundUp[uint32](12, 4))
	assert.Equal(uint32(12), RoundDown[uint32](12, 4))
	assert.Equal(uint32(0), RoundUp[uint32](0, 4096))
	assert.Equal(uint32(4096), RoundUp[uint32](1, 4096))

	assert.Equal(uint16(14), RoundUp2(uint16(13)))
	assert.Equal(uint16(16), RoundUp4(uint16(13)))
	assert.Equal(uint16(12), RoundDown2(uint16(13)))
	assert.Equal(uint16(12), RoundDown4(uint16(13)))

	// The whole computation is one expression.
	assert.Equal(uint32(17), RoundUp[uint32](13, 4)+1)
	assert.Equal(uint32(32), 2*RoundUp[uint32](13, 4))

	assert.True(IsAligned[uint32](0x1000, 0x1000))
	assert.False(IsAligned[uint32](0x1004, 0x1000))
}

func TestCheckAlign(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(CheckAlign(uint32(1)))
	assert.NoError(CheckAlign(uint32(4)))
	assert.NoError(CheckAlign(uint64(1) << 63))

	assert.ErrorIs(CheckAlign(uint32(0)), ErrAlignZero)

	err := CheckAlign(uint32(12))
	assert.ErrorIs(err, ErrAlignment(0))
	var ea ErrAlignment
	assert.True(errors.As(err, &ea))
	assert.Equal(ErrAlignment(12), ea)
	assert.Contains(err.Error(), "0xc")
}

func TestIsPow2(t *testing.T) {
	assert := assert.New(t)

	for n := range uint(32) {
		assert.True(IsPow2(uint32(1)<<n), "1<<%d", n)
	}
	assert.False(IsPow2(uint32(0)))
	assert.False(IsPow2(uint32(3)))
	assert.False(IsPow2(uint32(0xffffffff)))
}

func FuzzRound(f *testing.F) {
	f.Add(uint32(13), uint8(2))
	f.Add(uint32(0), uint8(0))
	f.Add(uint32(0x7fffffff), uint8(12))

	f.Fuzz(func(t *testing.T, x uint32, shift uint8) {
		assert := assert.New(t)

		x &= 0x7fffffff // Leave room for RoundUp.
		align := uint32(1) << (shift % 31)

		down := RoundDown(x, align)
		assert.LessOrEqual(down, x)
		assert.Less(x, down+align)
		assert.True(IsAligned(down, align))

		up := RoundUp(x, align)
		assert.GreaterOrEqual(up, x)
		assert.Less(int64(up)-int64(align), int64(x))
		assert.True(IsAligned(up, align))

		assert.Equal(uint64(x), uint64(BitsToBytes(BytesToBits(uint64(x)))))
	})
}
