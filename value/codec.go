package value

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// A Key crosses every serialization boundary as exactly one text scalar: on
// the wire it is indistinguishable from an ordinary string, and decoding that
// string yields an equal key back.

// DeserializationError reports an attempt to decode a key from a serialized
// value that is not a text scalar.
type DeserializationError struct {
	Cause error
}

func (e *DeserializationError) Error() string {
	return "key: " + e.Cause.Error()
}

func (e *DeserializationError) Unwrap() error {
	return e.Cause
}

// MarshalJSON encodes the key as a JSON string.
func (k Key) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a JSON string into k. Any other JSON value fails
// with a *DeserializationError.
func (k *Key) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DeserializationError{Cause: err}
	}
	*k = New(s)
	return nil
}

// MarshalText implements encoding.TextMarshaler. The returned bytes are a
// copy the caller may retain or modify.
func (k Key) MarshalText() ([]byte, error) {
	return k.ByteSlice(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike the other decode
// paths, the outer decoder hands over raw bytes here, so this is the one
// place UTF-8 validity is checked rather than inherited.
func (k *Key) UnmarshalText(text []byte) error {
	if off, ok := invalidByteOffset(text); ok {
		return &DeserializationError{Cause: fmt.Errorf("text is not valid UTF-8 at byte %d", off)}
	}
	*k = New(string(text))
	return nil
}

// invalidByteOffset returns the offset of the first byte where b stops being
// valid UTF-8.
func invalidByteOffset(b []byte) (int, bool) {
	off := 0
	for off < len(b) {
		r, size := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && size <= 1 {
			return off, true
		}
		off += size
	}
	return 0, false
}

// MarshalYAML encodes the key as a YAML string scalar.
func (k Key) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// UnmarshalYAML decodes a YAML string scalar into k. Non-string scalars
// (!!int, !!bool, ...) and non-scalar nodes fail with a *DeserializationError.
// The tag is checked explicitly: yaml.v3 stringifies any scalar on request,
// which would let a bare 5 or true through as a key.
func (k *Key) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.Tag != "!!str" {
		return &DeserializationError{
			Cause: fmt.Errorf("line %d: cannot unmarshal %s into a key", node.Line, node.Tag),
		}
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return &DeserializationError{Cause: err}
	}
	*k = New(s)
	return nil
}
