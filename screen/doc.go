// Package screen owns the terminal session and drives the UI: it keeps the
// root element list and event bus, resolves pointer targets, tracks drags and
// keyboard focus, and runs the poll, dispatch, paint loop
//
// A Screen is single-goroutine. The only call safe from other goroutines is
// Interrupt.
package screen
