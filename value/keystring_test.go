package value

import (
	"hash/maphash"
	"sort"
	"strings"
	"testing"
	"testing/quick"
	"unicode/utf8"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyKey(t *testing.T) {
	k := New("")
	require.True(t, k.IsEmpty())
	require.Equal(t, 0, k.Len())
	require.Equal(t, "", k.String())

	var zero Key
	require.True(t, k.Equal(zero))
	require.True(t, zero.IsEmpty())
}

func TestByteLengthNotRuneCount(t *testing.T) {
	k := New("café")
	require.Equal(t, 5, k.Len())
	require.Equal(t, 4, utf8.RuneCountInString(k.String()))
	require.False(t, k.IsEmpty())
}

func TestEqualityAgainstStrings(t *testing.T) {
	condition := func(s string) bool {
		k := New(s)
		return k.EqualString(s) && k.String() == s && k.Equal(New(s))
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestLengthMatchesString(t *testing.T) {
	condition := func(s string) bool {
		k := New(s)
		return k.Len() == len(s) && k.IsEmpty() == (len(s) == 0)
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestOrderingMatchesStrings(t *testing.T) {
	condition := func(a, b string) bool {
		ka, kb := New(a), New(b)
		if ka.Less(kb) != (a < b) {
			return false
		}
		return (ka.Compare(kb) == 0) == (a == b)
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestHashMatchesStringHash(t *testing.T) {
	seed := maphash.MakeSeed()
	condition := func(s string) bool {
		return New(s).Hash(seed) == maphash.String(seed, s)
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestCloneSharesBuffer(t *testing.T) {
	k := New("shared-backing-buffer")
	k2 := k
	require.Same(t, &k.Bytes()[0], &k2.Bytes()[0])
	require.True(t, k.Equal(k2))
}

func TestNewAliasesStringBytes(t *testing.T) {
	s := strings.Repeat("k", 16)
	k := New(s)
	require.Equal(t,
		unsafe.Pointer(unsafe.StringData(s)),
		unsafe.Pointer(unsafe.SliceData(k.Bytes())))
}

func TestByteSliceCopies(t *testing.T) {
	k := New("copy-me")
	out := k.ByteSlice()
	require.Equal(t, []byte("copy-me"), out)
	out[0] = 'X'
	assert.Equal(t, "copy-me", k.String())
}

func TestMapLookupThroughStringView(t *testing.T) {
	m := map[string]int{"host": 1, "message": 2}
	k := New("message")
	v, ok := m[k.String()]
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestSortOrder(t *testing.T) {
	keys := []Key{New("b"), New(""), New("aa"), New("a"), New("é")}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	got := make([]string, len(keys))
	for i, k := range keys {
		got[i] = k.String()
	}
	assert.Equal(t, []string{"", "a", "aa", "b", "é"}, got)
}
