// Package terminal is the display-driver boundary of hawktui.
//
// Everything above this package talks to the physical terminal through the
// Driver capability set:
//   - session start/end (raw mode, mouse reporting, cursor visibility)
//   - viewport size queries
//   - staging Surfaces into a frame and committing the frame once
//   - polling input events (key, mouse record, resize signal)
//
// A Surface is a rectangular cell buffer with an absolute origin. Elements
// own their surfaces and draw into them; the driver composes staged surfaces
// into a Frame (cells with rune 0 are transparent) and writes the frame to the
// screen on Commit.
//
// TcellDriver implements Driver on top of tcell. NewSimulation returns the
// same driver over tcell's simulation screen for tests.
package terminal
