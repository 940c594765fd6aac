package common

import "unsafe"

// String/byte reinterpretation helpers shared across the module. All unsafe
// conversions live here; every caller must uphold the read-only contract
// stated on each function.

// StringBytes aliases s as a byte slice without copying.
// The result shares memory with s and must never be written to.
func StringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// BytesString aliases b as a string without copying.
// The result shares memory with b; b must not be modified while the string
// is reachable.
func BytesString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// CloneBytes copies b into a fresh allocation the caller owns.
func CloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
