package layout

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type header struct {
	Magic   uint32
	Version uint8
}

type node struct {
	Next *node
	Prev *node
}

type packet struct {
	Flags  uint8
	Header header
	Length uint16
	Link   node
	node
	Extra *header
}

func TestArraySize(t *testing.T) {
	assert := assert.New(t)

	var table [17]uint16
	n, err := ArraySize(table)
	assert.NoError(err)
	assert.Equal(17, n)

	n, err = ArraySize(&table)
	assert.NoError(err)
	assert.Equal(17, n)

	n, err = ArraySize([0]byte{})
	assert.NoError(err)
	assert.Equal(0, n)

	_, err = ArraySize(table[:])
	assert.ErrorIs(err, ErrNotArray("[]uint16"))

	_, err = ArraySize(nil)
	assert.Error(err)

	_, err = ArraySize(map[int]int{})
	assert.Error(err)
}

func TestOffsetOf(t *testing.T) {
	assert := assert.New(t)

	var p packet

	table := [](struct {
		path   string
		offset uintptr
	}){
		{"Flags", unsafe.Offsetof(p.Flags)},
		{"Header", unsafe.Offsetof(p.Header)},
		{"Header.Version", unsafe.Offsetof(p.Header) + unsafe.Offsetof(p.Header.Version)},
		{"Length", unsafe.Offsetof(p.Length)},
		{"Link.Prev", unsafe.Offsetof(p.Link) + unsafe.Offsetof(p.Link.Prev)},
		{"Prev", unsafe.Offsetof(p.node) + unsafe.Offsetof(p.node.Prev)},
		{"node.Next", unsafe.Offsetof(p.node)},
	}

	for _, entry := range table {
		offset, err := OffsetOf(p, entry.path)
		assert.NoError(err, entry.path)
		assert.Equal(entry.offset, offset, entry.path)

		offset, err = OffsetOf((*packet)(nil), entry.path)
		assert.NoError(err, entry.path)
		assert.Equal(entry.offset, offset, entry.path)
	}
}

func TestOffsetOf_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := OffsetOf(packet{}, "")
	assert.ErrorIs(err, ErrFieldPath)

	_, err = OffsetOf(packet{}, "Missing")
	var missing ErrFieldMissing
	assert.True(errors.As(err, &missing))
	assert.Equal("Missing", missing.Field)

	_, err = OffsetOf(packet{}, "Flags.Bit")
	assert.ErrorIs(err, ErrNotStruct("uint8"))

	_, err = OffsetOf(packet{}, "Extra.Magic")
	var indirect ErrFieldIndirect
	assert.True(errors.As(err, &indirect))
	assert.Equal("Extra", indirect.Field)

	_, err = OffsetOf(42, "Field")
	assert.ErrorIs(err, ErrNotStruct("int"))

	_, err = OffsetOf(nil, "Field")
	assert.Error(err)
}

func TestContainerOf(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p := &packet{Length: 0x55}

	got, err := ContainerOf[packet](unsafe.Pointer(&p.Length), "Length")
	require.NoError(err)
	assert.Same(p, got)

	got, err = ContainerOf[packet](unsafe.Pointer(&p.Header.Version), "Header.Version")
	require.NoError(err)
	assert.Same(p, got)

	got, err = ContainerOf[packet](unsafe.Pointer(&p.node.Prev), "Prev")
	require.NoError(err)
	assert.Same(p, got)

	_, err = ContainerOf[packet](unsafe.Pointer(&p.Length), "Nope")
	assert.Error(err)
}

func TestContainerOfOffset(t *testing.T) {
	assert := assert.New(t)

	p := &packet{}

	assert.Same(p, ContainerOfOffset[packet](unsafe.Pointer(&p.Flags), unsafe.Offsetof(p.Flags)))
	assert.Same(p, ContainerOfOffset[packet](unsafe.Pointer(&p.Length), unsafe.Offsetof(p.Length)))
	assert.Same(p, ContainerOfOffset[packet](unsafe.Pointer(&p.Link), unsafe.Offsetof(p.Link)))

	// Nested members add the offsets of each enclosing field.
	h := ContainerOfOffset[header](unsafe.Pointer(&p.Header.Version), unsafe.Offsetof(p.Header.Version))
	assert.Same(&p.Header, h)
	assert.Same(p, ContainerOfOffset[packet](unsafe.Pointer(h), unsafe.Offsetof(p.Header)))

	// Both forms agree.
	offset, err := OffsetOf(p, "Length")
	assert.NoError(err)
	assert.Equal(unsafe.Offsetof(p.Length), offset)

	var table [17]uint16
	n, err := ArraySize(table)
	assert.NoError(err)
	assert.Equal(len(table), n)
}
