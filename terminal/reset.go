package terminal

import (
	"io"
	"os"
	"strings"
	"sync"
)

// session records the terminal modes the live driver switched on
// EmergencyReset undoes exactly these; a finished session leaves nothing to undo
var session struct {
	sync.Mutex
	active       bool
	mouse        MouseMode
	cursorHidden bool
}

// restoreTermios is swapped out in tests
var restoreTermios = resetTerminalMode

func markSessionActive(active bool) {
	session.Lock()
	defer session.Unlock()
	session.active = active
	if !active {
		session.mouse = MouseModeNone
		session.cursorHidden = false
	}
}

func markMouse(mode MouseMode) {
	session.Lock()
	defer session.Unlock()
	session.mouse = mode
}

func markCursorHidden(hidden bool) {
	session.Lock()
	defer session.Unlock()
	session.cursorHidden = hidden
}

// resetSequence returns the escape sequence undoing the recorded modes
// Mouse reporting is switched off before the screen is restored
func resetSequence() (seq string, active bool) {
	session.Lock()
	defer session.Unlock()

	var sb strings.Builder
	if session.mouse&MouseModeMotion != 0 {
		sb.WriteString("\x1b[?1003l")
	}
	if session.mouse&MouseModeDrag != 0 {
		sb.WriteString("\x1b[?1002l")
	}
	if session.mouse != MouseModeNone {
		sb.WriteString("\x1b[?1000l\x1b[?1006l")
	}
	if session.cursorHidden {
		sb.WriteString("\x1b[?25h")
	}
	if session.active {
		sb.WriteString("\x1b[?1049l\x1b[?7h")
	}
	sb.WriteString("\x1b[0m")
	return sb.String(), session.active
}

// EmergencyReset restores the terminal from a crash path where Fini cannot run
// Only the modes of a still active driver session are undone
func EmergencyReset(w io.Writer) {
	seq, active := resetSequence()
	io.WriteString(w, seq)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	if active {
		restoreTermios()
		markSessionActive(false)
	}
}
