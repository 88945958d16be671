// Package bitops implements the low-level integer idioms used by firmware code.
//
// It covers comparison helpers, single-bit manipulation, byte extraction and
// composition, byte order conversion, and power-of-two alignment. Every
// function evaluates its arguments exactly once and, except for the bit
// setters that take a pointer, has no side effects.
//
// Alignment helpers require a power-of-two alignment; use CheckAlign to
// validate one that comes from outside the program.
package bitops
