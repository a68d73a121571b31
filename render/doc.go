// Package render paints the element tree: a post-order walk stages every
// surface and a single commit per batch pushes the frame to the terminal
package render
