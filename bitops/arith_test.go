package bitops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxMin(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(5, Max(3, 5))
	assert.Equal(5, Max(5, 3))
	assert.Equal(3, Min(3, 5))
	assert.Equal(3, Min(5, 3))
	assert.Equal(uint8(0xff), Max[uint8](0x7f, 0xff))
	assert.Equal("abc", Min("abd", "abc"))
	assert.Equal(-1.5, Min(-1.5, 2.0))
}

func TestMax_SingleEvaluation(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	next := func() int {
		calls++
		return calls
	}

	assert.Equal(2, Max(next(), next()))
	assert.Equal(2, calls)
}

func TestAbs(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		in   int32
		want int32
	}){
		{-7, 7},
		{7, 7},
		{0, 0},
		{-1, 1},
		{math.MaxInt32, math.MaxInt32},
		{math.MinInt32, math.MinInt32}, // Wraps in two's complement.
	}

	for _, entry := range table {
		assert.Equal(entry.want, Abs(entry.in), "Abs(%d)", entry.in)
	}

	assert.Equal(2.5, Abs(-2.5))
	assert.Equal(int8(127), Abs(int8(-127)))
}
