// Package value holds the primitives shared by keyed containers in the value
// model: currently the Key type used to name object fields and map entries.
package value

import (
	"bytes"
	"hash/maphash"

	"github.com/snowp/vrl/internal/common"
)

// Key is an immutable string-like key for entries in keyed containers. It
// wraps a shared byte buffer that always holds valid UTF-8 text: every
// constructor starts from a Go string, and no write path exists after
// construction. Copying a Key copies the slice header only, so every copy
// shares one backing buffer and cloning is O(1).
//
// Key is not comparable with ==; use Equal. For builtin maps, look up
// through the zero-copy String view: m[k.String()] allocates nothing. For
// custom hash tables, Hash agrees bit-for-bit with hashing the equivalent
// string.
//
// The zero value is the empty key.
type Key struct {
	b []byte
}

// New returns a key over the bytes of s. The buffer is aliased, not copied:
// both sides are immutable, so the key takes over the string's bytes at no
// cost. New never fails; any string produces a valid key.
func New(s string) Key {
	return Key{b: common.StringBytes(s)}
}

// String returns the key's contents. The view is zero-copy and performs no
// validation; the buffer is valid UTF-8 by construction and this is the
// single place the package relies on that. The returned string aliases the
// key's buffer and stays valid as long as any copy of the key is reachable.
func (k Key) String() string {
	return common.BytesString(k.b)
}

// Len returns the length of the key in bytes, not codepoints.
func (k Key) Len() int {
	return len(k.b)
}

// IsEmpty reports whether the key has no contents.
func (k Key) IsEmpty() bool {
	return len(k.b) == 0
}

// ByteSlice returns a copy of the key's bytes that the caller owns and may
// modify freely.
func (k Key) ByteSlice() []byte {
	return common.CloneBytes(k.b)
}

// Bytes returns the shared backing buffer without copying. The buffer is
// shared by every copy of the key and by the string the key was built from;
// the caller must not write to it.
func (k Key) Bytes() []byte {
	return k.b
}

// Equal reports whether k and o hold the same text.
func (k Key) Equal(o Key) bool {
	return bytes.Equal(k.b, o.b)
}

// EqualString reports whether k holds exactly s, for container lookups keyed
// by plain strings.
func (k Key) EqualString(s string) bool {
	return k.String() == s
}

// Compare orders two keys byte-wise, which over UTF-8 text is the same order
// as comparing the equivalent strings.
func (k Key) Compare(o Key) int {
	return bytes.Compare(k.b, o.b)
}

// Less reports whether k orders before o.
func (k Key) Less(o Key) bool {
	return k.Compare(o) < 0
}

// Hash returns the key's hash under seed. Keys hash their text, never the
// raw buffer: for any string s, New(s).Hash(seed) == maphash.String(seed, s),
// so keys and plain strings can share one hash table.
func (k Key) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, k.String())
}
