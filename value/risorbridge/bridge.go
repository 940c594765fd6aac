// Package risorbridge converts value.Key to and from Risor script values.
// Keys cross the boundary as the runtime's native string objects; lifting
// anything else reports a type error on the runtime's own error channel.
// The core value package never imports this one, so plain builds carry no
// scripting dependency.
package risorbridge

import (
	"github.com/risor-io/risor/object"

	"github.com/snowp/vrl/value"
)

// ToObject lowers k into the scripting runtime as a string object.
func ToObject(k value.Key) object.Object {
	return object.NewString(k.String())
}

// FromObject lifts a script value into a key. Only string objects are
// representable as keys; any other object yields the runtime's type error.
func FromObject(obj object.Object) (value.Key, *object.Error) {
	switch o := obj.(type) {
	case *object.String:
		return value.New(o.Value()), nil
	default:
		return value.Key{}, object.TypeErrorf("type error: unable to create a key from %s", obj.Type())
	}
}
