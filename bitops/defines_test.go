package bitops

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := maps.Collect(Defines())
	assert.Equal("8", defines["BITS_PER_BYTE"])
	assert.Equal("0xff", defines["BYTE_MASK"])
	assert.Contains([]string{"0", "1"}, defines["HOST_LITTLE_ENDIAN"])

	// Package table is not modified.
	_, ok := _bitops_defines["HOST_LITTLE_ENDIAN"]
	assert.False(ok)
}
