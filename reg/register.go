// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package reg

import (
	"fmt"
	"log"
)

// Register is a handle for one memory-mapped location of a fixed width.
type Register struct {
	Verbose bool // Set to log each read-modify-write.

	bus   Bus
	addr  uint32
	width Width
}

// NewRegister creates a register handle after checking that addr is aligned
// for width and lies inside the bus window.
func NewRegister(bus Bus, addr uint32, width Width) (reg *Register, err error) {
	err = Check(bus, addr, width)
	if err != nil {
		return
	}

	reg = &Register{
		bus:   bus,
		addr:  addr,
		width: width,
	}

	return
}

// Addr of the register.
func (reg *Register) Addr() uint32 {
	return reg.addr
}

// Width of the register.
func (reg *Register) Width() Width {
	return reg.width
}

// String returns the register location as text.
func (reg *Register) String() string {
	return fmt.Sprintf("%#08x/%v", reg.addr, reg.width)
}

// Read returns the current register value.
func (reg *Register) Read() (value uint32) {
	switch reg.width {
	case WIDTH_8:
		value = uint32(reg.bus.Read8(reg.addr))
	case WIDTH_16:
		value = uint32(reg.bus.Read16(reg.addr))
	case WIDTH_32:
		value = reg.bus.Read32(reg.addr)
	}
	return
}

// Write stores value, truncated to the register width.
func (reg *Register) Write(value uint32) {
	switch reg.width {
	case WIDTH_8:
		reg.bus.Write8(reg.addr, uint8(value))
	case WIDTH_16:
		reg.bus.Write16(reg.addr, uint16(value))
	case WIDTH_32:
		reg.bus.Write32(reg.addr, value)
	}
}

// Modify replaces the bits selected by mask with those of value, and
// returns the value written. Not atomic.
func (reg *Register) Modify(mask, value uint32) (result uint32) {
	old := reg.Read()
	result = ((old &^ mask) | (value & mask)) & reg.width.Mask()
	reg.Write(result)

	if reg.Verbose {
		log.Printf("reg: %v %#x -> %#x (mask %#x)", reg, old, result, mask)
	}
	return
}

// SetBits ORs mask into the register. Not atomic.
func (reg *Register) SetBits(mask uint32) uint32 {
	return reg.Modify(mask, mask)
}

// ClearBits clears the bits of mask in the register. Not atomic.
func (reg *Register) ClearBits(mask uint32) uint32 {
	return reg.Modify(mask, 0)
}

// Toggle flips the bits of mask in the register. Not atomic.
func (reg *Register) Toggle(mask uint32) (result uint32) {
	old := reg.Read()
	result = (old ^ mask) & reg.width.Mask()
	reg.Write(result)

	if reg.Verbose {
		log.Printf("reg: %v %#x -> %#x (toggle %#x)", reg, old, result, mask)
	}
	return
}

func (reg *Register) fieldMask(shift, bits uint) (mask uint32, err error) {
	if bits == 0 || shift+bits > uint(reg.width) {
		err = ErrFieldRange
		return
	}

	mask = uint32((uint64(1)<<bits)-1) << shift
	return
}

// Field returns the bits-wide field starting at bit shift.
func (reg *Register) Field(shift, bits uint) (value uint32, err error) {
	mask, err := reg.fieldMask(shift, bits)
	if err != nil {
		return
	}

	value = (reg.Read() & mask) >> shift
	return
}

// SetField writes value into the bits-wide field starting at bit shift,
// keeping the other bits. Not atomic.
func (reg *Register) SetField(shift, bits uint, value uint32) (err error) {
	mask, err := reg.fieldMask(shift, bits)
	if err != nil {
		return
	}

	reg.Modify(mask, value<<shift)
	return
}
