// Package audio provides optional audible feedback for pointer presses
package audio
