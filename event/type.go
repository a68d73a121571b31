package event

import "reflect"

// Key addresses one event on a Bus and fixes its payload type P
// Keys with the same name share subscribers; declaring a name twice with
// different payload types panics at declaration
type Key[P any] struct {
	name string
}

// NewKey declares a typed event key, the name must not be empty
// The zero Key is undeclared and cannot be subscribed to
func NewKey[P any](name string) Key[P] {
	if name == "" {
		panic("event: empty event name")
	}
	register(name, reflect.TypeFor[P]())
	return Key[P]{name: name}
}

// Name returns the event name
func (k Key[P]) Name() string {
	return k.name
}

// String implements fmt.Stringer
func (k Key[P]) String() string {
	return k.name
}

// Named is satisfied by every Key regardless of payload type
type Named interface {
	Name() string
}
