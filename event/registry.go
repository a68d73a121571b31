package event

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

var (
	registryMu    sync.Mutex
	nameToPayload = make(map[string]reflect.Type)
)

// register maps an event name to its payload type
// Panics if the name is already bound to a different payload type
func register(name string, payload reflect.Type) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if existing, ok := nameToPayload[name]; ok {
		if existing != payload {
			panic(fmt.Sprintf("event: %q declared with payload %v, already bound to %v", name, payload, existing))
		}
		return
	}
	nameToPayload[name] = payload
}

// PayloadType returns the payload type bound to an event name
func PayloadType(name string) (reflect.Type, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()

	t, ok := nameToPayload[name]
	return t, ok
}

// Registered returns all declared event names, sorted
func Registered() []string {
	registryMu.Lock()
	defer registryMu.Unlock()

	names := make([]string, 0, len(nameToPayload))
	for name := range nameToPayload {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewPayload returns a pointer to a zero-value payload for the event name
// Returns nil if the name is not declared
func NewPayload(name string) any {
	t, ok := PayloadType(name)
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}
