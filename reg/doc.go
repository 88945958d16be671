// Package reg provides typed access to memory-mapped registers.
//
// A Bus is a window of addressable memory: a plain byte slice (Memory) for
// simulation and tests, or a device mapping such as /dev/mem (Mapped).
// A Register is a handle for one location of a fixed Width on a Bus, and is
// only created after its address has been checked for alignment and range.
//
// Every Read and Write is a single access of the register width. The
// read-modify-write helpers (SetBits, ClearBits, Toggle, Modify, SetField)
// are a Read followed by a Write and are NOT atomic: an interrupt handler,
// another goroutine, or another core writing the same register between the
// two accesses will have its update lost. Callers that share a register must
// serialize access themselves.
package reg
