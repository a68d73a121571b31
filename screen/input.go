package screen

import (
	"log"

	"github.com/charmbracelet/bubbles/key"

	"github.com/lixenwraith/hawktui/element"
	"github.com/lixenwraith/hawktui/event"
	"github.com/lixenwraith/hawktui/terminal"
)

// HandleEvent processes one driver event without painting
func (s *Screen) HandleEvent(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventResize:
		s.handleResize()
	case terminal.EventMouse:
		s.handleMouse(ev)
	case terminal.EventKey:
		s.handleKey(ev)
	case terminal.EventInterrupt:
		if _, ok := ev.Data.(stopRequest); ok {
			s.running = false
		}
	case terminal.EventClosed:
		s.running = false
	}
}

func (s *Screen) handleResize() {
	s.width, s.height = s.drv.Size()
	log.Printf("screen: resized to %dx%d", s.width, s.height)
	event.Dispatch(s.bus, Resize, &ResizeEvent{Width: s.width, Height: s.height})
}

// handleKey dispatches KeyPress, then feeds the focused editor or checks quit keys
// ctrl+c quits even when a handler marked the key handled
func (s *Screen) handleKey(ev terminal.Event) {
	k := &KeyEvent{Key: ev.Key, Rune: ev.Rune, Modifiers: ev.Modifiers}
	event.Dispatch(s.bus, KeyPress, k)
	if ev.Key == terminal.KeyCtrlC {
		s.running = false
		return
	}
	if k.Handled {
		return
	}

	if ed := s.focusedEditor(); ed != nil {
		switch ev.Key {
		case terminal.KeyRune:
			ed.InsertRune(ev.Rune)
			return
		case terminal.KeyEnter:
			ed.InsertRune('\n')
			return
		case terminal.KeyBackspace:
			ed.DeleteBackward()
			return
		case terminal.KeyEscape:
			s.focus = 0
			return
		}
	}

	if key.Matches(*k, s.quit) {
		s.running = false
	}
}

func (s *Screen) focusedEditor() element.Editor {
	ed, _ := s.Focused().(element.Editor)
	return ed
}
