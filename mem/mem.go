// Package mem wraps the C memory and string primitives for byte buffers.
//
// Strings are NUL-terminated byte sequences, as they appear in firmware
// buffers and register-backed memory. A buffer without a NUL holds a string
// running to the end of the buffer. Lengths that would run past a buffer are
// reported as errors rather than written.
package mem

import (
	"bytes"
)

// Copy copies n bytes from src to dst.
func Copy(dst, src []byte, n int) (err error) {
	if n < 0 || n > len(dst) || n > len(src) {
		err = ErrLength
		return
	}

	copy(dst[:n], src[:n])
	return
}

// Set fills the first n bytes of dst with d.
func Set(dst []byte, d byte, n int) (err error) {
	if n < 0 || n > len(dst) {
		err = ErrLength
		return
	}

	region := dst[:n]
	for i := range region {
		region[i] = d
	}
	return
}

// Compare compares the first n bytes of a and b, returning -1, 0 or +1.
func Compare(a, b []byte, n int) (result int, err error) {
	if n < 0 || n > len(a) || n > len(b) {
		err = ErrLength
		return
	}

	result = bytes.Compare(a[:n], b[:n])
	return
}

// StrLen returns the length of the NUL-terminated string in s.
func StrLen(s []byte) int {
	n := bytes.IndexByte(s, 0)
	if n < 0 {
		return len(s)
	}
	return n
}

// StrCpy copies the string in src, and its terminator, into dst.
// It returns the string length.
func StrCpy(dst, src []byte) (n int, err error) {
	n = StrLen(src)
	if n+1 > len(dst) {
		err = ErrBufferTooSmall{Need: n + 1, Have: len(dst)}
		n = 0
		return
	}

	copy(dst, src[:n])
	dst[n] = 0
	return
}

// StrCmp compares the strings in a and b, returning -1, 0 or +1.
func StrCmp(a, b []byte) int {
	return bytes.Compare(a[:StrLen(a)], b[:StrLen(b)])
}

// StrStr returns the index of the first needle in haystack, or -1.
// An empty needle matches at 0.
func StrStr(haystack, needle []byte) int {
	return bytes.Index(haystack[:StrLen(haystack)], needle[:StrLen(needle)])
}

// CString returns s as a NUL-terminated buffer.
func CString(s string) (buf []byte) {
	buf = make([]byte, len(s)+1)
	copy(buf, s)
	return
}

// GoString returns the string held in b.
func GoString(b []byte) string {
	return string(b[:StrLen(b)])
}
