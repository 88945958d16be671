package bitops

import (
	"fmt"
	"iter"
	"maps"
)

var _bitops_defines = map[string]string{
	"BITS_PER_BYTE": fmt.Sprintf("%d", BITS_PER_BYTE),
	"BYTE_MASK":     fmt.Sprintf("%#x", BYTE_MASK),
}

// Defines for the bit operations, including the detected host byte order.
func Defines() iter.Seq2[string, string] {
	defines := maps.Clone(_bitops_defines)
	defines["HOST_LITTLE_ENDIAN"] = "0"
	if HostLittleEndian {
		defines["HOST_LITTLE_ENDIAN"] = "1"
	}
	return maps.All(defines)
}
