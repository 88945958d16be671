package reg

// Width-specific accessors, one call per access, for code that does not
// keep Register handles. Each validates the address first.

// Read8 reads the byte register at addr.
func Read8(bus Bus, addr uint32) (value uint8, err error) {
	r, err := NewRegister(bus, addr, WIDTH_8)
	if err == nil {
		value = uint8(r.Read())
	}
	return
}

// Read16 reads the 16-bit register at addr.
func Read16(bus Bus, addr uint32) (value uint16, err error) {
	r, err := NewRegister(bus, addr, WIDTH_16)
	if err == nil {
		value = uint16(r.Read())
	}
	return
}

// Read32 reads the 32-bit register at addr.
func Read32(bus Bus, addr uint32) (value uint32, err error) {
	r, err := NewRegister(bus, addr, WIDTH_32)
	if err == nil {
		value = r.Read()
	}
	return
}

// Write8 writes the byte register at addr.
func Write8(bus Bus, addr uint32, value uint8) (err error) {
	return write(bus, addr, WIDTH_8, uint32(value))
}

// Write16 writes the 16-bit register at addr.
func Write16(bus Bus, addr uint32, value uint16) (err error) {
	return write(bus, addr, WIDTH_16, uint32(value))
}

// Write32 writes the 32-bit register at addr.
func Write32(bus Bus, addr uint32, value uint32) (err error) {
	return write(bus, addr, WIDTH_32, value)
}

// Set8Bits ORs mask into the byte register at addr. Not atomic.
func Set8Bits(bus Bus, addr uint32, mask uint8) (err error) {
	return modify(bus, addr, WIDTH_8, uint32(mask), uint32(mask))
}

// Set16Bits ORs mask into the 16-bit register at addr. Not atomic.
func Set16Bits(bus Bus, addr uint32, mask uint16) (err error) {
	return modify(bus, addr, WIDTH_16, uint32(mask), uint32(mask))
}

// Set32Bits ORs mask into the 32-bit register at addr. Not atomic.
func Set32Bits(bus Bus, addr uint32, mask uint32) (err error) {
	return modify(bus, addr, WIDTH_32, mask, mask)
}

// Clear8Bits clears the bits of mask in the byte register at addr. Not atomic.
func Clear8Bits(bus Bus, addr uint32, mask uint8) (err error) {
	return modify(bus, addr, WIDTH_8, uint32(mask), 0)
}

// Clear16Bits clears the bits of mask in the 16-bit register at addr. Not atomic.
func Clear16Bits(bus Bus, addr uint32, mask uint16) (err error) {
	return modify(bus, addr, WIDTH_16, uint32(mask), 0)
}

// Clear32Bits clears the bits of mask in the 32-bit register at addr. Not atomic.
func Clear32Bits(bus Bus, addr uint32, mask uint32) (err error) {
	return modify(bus, addr, WIDTH_32, mask, 0)
}

func write(bus Bus, addr uint32, w Width, value uint32) (err error) {
	r, err := NewRegister(bus, addr, w)
	if err == nil {
		r.Write(value)
	}
	return
}

func modify(bus Bus, addr uint32, w Width, mask, value uint32) (err error) {
	r, err := NewRegister(bus, addr, w)
	if err == nil {
		r.Modify(mask, value)
	}
	return
}
