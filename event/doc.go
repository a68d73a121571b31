// Package event provides a typed, key-addressed publish/subscribe bus
//
// A Key fixes the payload type of an event at declaration, so handlers and
// dispatchers of the same key always agree on the payload shape.
// Handlers run synchronously on the dispatching goroutine, in subscription
// order, and all receive the same payload pointer.
package event
