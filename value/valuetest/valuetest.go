// Package valuetest generates and shrinks arbitrary value.Key instances for
// property-based and fuzz tests. It lives outside the value package so that
// ordinary builds never link the testing machinery.
package valuetest

import (
	"math/rand"
	"reflect"
	"testing/quick"
	"unicode/utf8"

	"github.com/snowp/vrl/value"
)

var stringType = reflect.TypeOf("")

// RandomKey returns a key over an arbitrary string, produced by the same
// generator testing/quick applies to plain string arguments. size caps the
// result's byte length; pass a negative size for no cap.
func RandomKey(r *rand.Rand, size int) value.Key {
	v, ok := quick.Value(stringType, r)
	if !ok {
		return value.Key{}
	}
	s := v.String()
	if size >= 0 {
		s = truncate(s, size)
	}
	return value.New(s)
}

// Shrink returns simpler candidates for a failing key: the empty key, the
// two halves, and the key minus its final rune. Every candidate is strictly
// shorter than k, so repeated shrinking terminates. An empty key has no
// simpler form and yields nil.
func Shrink(k value.Key) []value.Key {
	if k.IsEmpty() {
		return nil
	}
	s := k.String()
	out := []value.Key{value.New("")}

	if mid := splitPoint(s); mid > 0 && mid < len(s) {
		out = append(out, value.New(s[:mid]), value.New(s[mid:]))
	}
	_, last := utf8.DecodeLastRuneInString(s)
	if trimmed := s[:len(s)-last]; trimmed != "" {
		out = append(out, value.New(trimmed))
	}
	return out
}

// splitPoint returns the rune boundary nearest the middle of s.
func splitPoint(s string) int {
	mid := len(s) / 2
	for mid < len(s) && !utf8.RuneStart(s[mid]) {
		mid++
	}
	return mid
}

// truncate cuts s down to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
