package reg

// Bus is a window of memory-mapped locations.
//
// Addresses are absolute; Window reports the range the bus answers for.
// Each call performs exactly one access of the named width, and callers
// must keep addr aligned to that width and inside the window. Register
// checks both before it touches the bus.
type Bus interface {
	Read8(addr uint32) uint8
	Read16(addr uint32) uint16
	Read32(addr uint32) uint32
	Write8(addr uint32, value uint8)
	Write16(addr uint32, value uint16)
	Write32(addr uint32, value uint32)

	// Window returns the first address and the size in bytes.
	Window() (base, size uint32)
}

// Check validates an access of width w at addr on bus.
func Check(bus Bus, addr uint32, w Width) (err error) {
	if bus == nil {
		err = ErrBusMissing
		return
	}

	if !w.Valid() {
		err = ErrWidth(w)
		return
	}

	if addr&(w.Bytes()-1) != 0 {
		err = ErrUnaligned{Addr: addr, Width: w}
		return
	}

	base, size := bus.Window()
	// Compare in 64 bits, so windows that end at 4GiB do not wrap.
	if addr < base || uint64(addr)+uint64(w.Bytes()) > uint64(base)+uint64(size) {
		err = ErrOutOfRange{Addr: addr, Width: w, Base: base, Size: size}
		return
	}

	return
}
