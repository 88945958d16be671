//go:build unix

package reg

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/coosharp/custom-macro-collection/bitops"
)

// System calls, replaced in tests.
var (
	mmap     = unix.Mmap
	munmap   = unix.Munmap
	pageSize = unix.Getpagesize
)

// DEFAULT_DEVICE is the physical memory device on Linux.
const DEFAULT_DEVICE = "/dev/mem"

// Mapped is a Bus over a shared mapping of a device or file.
//
// 32-bit accesses are atomic loads and stores. 8 and 16-bit accesses are
// single loads and stores of exactly that width, made through functions
// the compiler may not inline, so they are never merged or elided.
// Accesses that fail Check panic, as a bus fault would.
type Mapped struct {
	Verbose bool // Set to log every access.

	base   uint32 // First address of the window.
	size   uint32 // Size of the window.
	offset uint32 // Offset of base into data.
	data   []byte
	file   *os.File
}

var _ Bus = (*Mapped)(nil)

// OpenMapped maps size bytes of path starting at physical address base.
// The mapping is widened to whole pages; the window is exactly
// base..base+size.
func OpenMapped(path string, base, size uint32) (mp *Mapped, err error) {
	if size == 0 {
		err = ErrMapSize
		return
	}

	file, err := os.OpenFile(path, os.O_RDWR|unix.O_SYNC, 0)
	if err != nil {
		return
	}

	page := uint64(pageSize())
	start := bitops.RoundDown(uint64(base), page)
	end := bitops.RoundUp(uint64(base)+uint64(size), page)

	data, err := mmap(int(file.Fd()), int64(start), int(end-start), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		err = fmt.Errorf("%v: mmap %#x+%#x: %w", path, start, end-start, err)
		return
	}

	mp = &Mapped{
		base:   base,
		size:   size,
		offset: uint32(uint64(base) - start),
		data:   data,
		file:   file,
	}

	return
}

// Close unmaps the window and closes the device.
func (mp *Mapped) Close() (err error) {
	if mp.data != nil {
		err = munmap(mp.data)
		mp.data = nil
	}

	if mp.file != nil {
		cerr := mp.file.Close()
		if err == nil {
			err = cerr
		}
		mp.file = nil
	}

	return
}

// Window returns the base address and size of the mapping.
func (mp *Mapped) Window() (base, size uint32) {
	return mp.base, mp.size
}

func (mp *Mapped) at(addr uint32, w Width) unsafe.Pointer {
	if err := Check(mp, addr, w); err != nil {
		panic(err)
	}

	return unsafe.Pointer(&mp.data[mp.offset+(addr-mp.base)])
}

func (mp *Mapped) trace(op string, w Width, addr uint32, value uint32) {
	if mp.Verbose {
		log.Printf("mapped: %v%v %#08x = %#x", op, w, addr, value)
	}
}

//go:noinline
func load8(p *uint8) uint8 { return *p }

//go:noinline
func load16(p *uint16) uint16 { return *p }

//go:noinline
func store8(p *uint8, v uint8) { *p = v }

//go:noinline
func store16(p *uint16, v uint16) { *p = v }

func (mp *Mapped) Read8(addr uint32) (value uint8) {
	value = load8((*uint8)(mp.at(addr, WIDTH_8)))
	mp.trace("read", WIDTH_8, addr, uint32(value))
	return
}

func (mp *Mapped) Read16(addr uint32) (value uint16) {
	value = load16((*uint16)(mp.at(addr, WIDTH_16)))
	mp.trace("read", WIDTH_16, addr, uint32(value))
	return
}

func (mp *Mapped) Read32(addr uint32) (value uint32) {
	value = atomic.LoadUint32((*uint32)(mp.at(addr, WIDTH_32)))
	mp.trace("read", WIDTH_32, addr, value)
	return
}

func (mp *Mapped) Write8(addr uint32, value uint8) {
	store8((*uint8)(mp.at(addr, WIDTH_8)), value)
	mp.trace("write", WIDTH_8, addr, uint32(value))
}

func (mp *Mapped) Write16(addr uint32, value uint16) {
	store16((*uint16)(mp.at(addr, WIDTH_16)), value)
	mp.trace("write", WIDTH_16, addr, uint32(value))
}

func (mp *Mapped) Write32(addr uint32, value uint32) {
	atomic.StoreUint32((*uint32)(mp.at(addr, WIDTH_32)), value)
	mp.trace("write", WIDTH_32, addr, value)
}
