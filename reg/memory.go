// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package reg

import (
	"encoding/binary"
	"log"
	"sync"
)

// Memory is a Bus backed by a byte slice, stored little-endian.
//
// Reads outside the window return 0 and writes outside it are dropped,
// as on an unmapped bus. The mutex keeps each single access whole; it does
// not make read-modify-write sequences atomic.
type Memory struct {
	Verbose bool // Set to log every access.

	base  uint32
	mutex sync.RWMutex
	data  []byte
}

var _ Bus = (*Memory)(nil)

// NewMemory creates a zeroed memory window of size bytes starting at base.
func NewMemory(base, size uint32) (mem *Memory) {
	mem = &Memory{
		base: base,
		data: make([]byte, size),
	}

	return
}

// Window returns the base address and size of the memory.
func (mem *Memory) Window() (base, size uint32) {
	return mem.base, uint32(len(mem.data))
}

// Reset zeroes the memory.
func (mem *Memory) Reset() {
	mem.mutex.Lock()
	defer mem.mutex.Unlock()

	clear(mem.data)
}

// Bytes returns a copy of the memory contents.
func (mem *Memory) Bytes() (data []byte) {
	mem.mutex.RLock()
	defer mem.mutex.RUnlock()

	data = make([]byte, len(mem.data))
	copy(data, mem.data)
	return
}

// Load copies data into the memory at addr, clipped to the window.
func (mem *Memory) Load(addr uint32, data []byte) (n int) {
	mem.mutex.Lock()
	defer mem.mutex.Unlock()

	if addr < mem.base || addr-mem.base >= uint32(len(mem.data)) {
		return
	}

	n = copy(mem.data[addr-mem.base:], data)
	return
}

// slot returns the backing bytes for an access, or nil when it is outside
// the window.
func (mem *Memory) slot(addr uint32, w Width) (buf []byte) {
	if addr < mem.base {
		return
	}
	offset := uint64(addr - mem.base)
	end := offset + uint64(w.Bytes())
	if end > uint64(len(mem.data)) {
		return
	}

	buf = mem.data[offset:end]
	return
}

func (mem *Memory) trace(op string, w Width, addr uint32, value uint32, mapped bool) {
	if !mem.Verbose {
		return
	}

	if !mapped {
		log.Printf("memory: %v%v %#08x unmapped", op, w, addr)
		return
	}
	log.Printf("memory: %v%v %#08x = %#x", op, w, addr, value)
}

func (mem *Memory) Read8(addr uint32) (value uint8) {
	mem.mutex.RLock()
	defer mem.mutex.RUnlock()

	buf := mem.slot(addr, WIDTH_8)
	if buf != nil {
		value = buf[0]
	}
	mem.trace("read", WIDTH_8, addr, uint32(value), buf != nil)
	return
}

func (mem *Memory) Read16(addr uint32) (value uint16) {
	mem.mutex.RLock()
	defer mem.mutex.RUnlock()

	buf := mem.slot(addr, WIDTH_16)
	if buf != nil {
		value = binary.LittleEndian.Uint16(buf)
	}
	mem.trace("read", WIDTH_16, addr, uint32(value), buf != nil)
	return
}

func (mem *Memory) Read32(addr uint32) (value uint32) {
	mem.mutex.RLock()
	defer mem.mutex.RUnlock()

	buf := mem.slot(addr, WIDTH_32)
	if buf != nil {
		value = binary.LittleEndian.Uint32(buf)
	}
	mem.trace("read", WIDTH_32, addr, value, buf != nil)
	return
}

func (mem *Memory) Write8(addr uint32, value uint8) {
	mem.mutex.Lock()
	defer mem.mutex.Unlock()

	buf := mem.slot(addr, WIDTH_8)
	if buf != nil {
		buf[0] = value
	}
	mem.trace("write", WIDTH_8, addr, uint32(value), buf != nil)
}

func (mem *Memory) Write16(addr uint32, value uint16) {
	mem.mutex.Lock()
	defer mem.mutex.Unlock()

	buf := mem.slot(addr, WIDTH_16)
	if buf != nil {
		binary.LittleEndian.PutUint16(buf, value)
	}
	mem.trace("write", WIDTH_16, addr, uint32(value), buf != nil)
}

func (mem *Memory) Write32(addr uint32, value uint32) {
	mem.mutex.Lock()
	defer mem.mutex.Unlock()

	buf := mem.slot(addr, WIDTH_32)
	if buf != nil {
		binary.LittleEndian.PutUint32(buf, value)
	}
	mem.trace("write", WIDTH_32, addr, value, buf != nil)
}
