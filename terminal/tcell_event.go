package terminal

import "github.com/gdamore/tcell/v2"

// tcellKeys maps tcell special keys; checked before the Ctrl+letter range
// so Ctrl+H/I/M keep their Backspace/Tab/Enter meaning
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,

	tcell.KeyUp:     KeyUp,
	tcell.KeyDown:   KeyDown,
	tcell.KeyLeft:   KeyLeft,
	tcell.KeyRight:  KeyRight,
	tcell.KeyHome:   KeyHome,
	tcell.KeyEnd:    KeyEnd,
	tcell.KeyPgUp:   KeyPageUp,
	tcell.KeyPgDn:   KeyPageDown,
	tcell.KeyInsert: KeyInsert,

	tcell.KeyF1:  KeyF1,
	tcell.KeyF2:  KeyF2,
	tcell.KeyF3:  KeyF3,
	tcell.KeyF4:  KeyF4,
	tcell.KeyF5:  KeyF5,
	tcell.KeyF6:  KeyF6,
	tcell.KeyF7:  KeyF7,
	tcell.KeyF8:  KeyF8,
	tcell.KeyF9:  KeyF9,
	tcell.KeyF10: KeyF10,
	tcell.KeyF11: KeyF11,
	tcell.KeyF12: KeyF12,
}

// convertEvent translates a tcell event, ok is false for event kinds hawktui ignores
func convertEvent(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventKey:
		return convertKey(e)

	case *tcell.EventMouse:
		x, y := e.Position()
		return Event{
			Type:      EventMouse,
			MouseX:    x,
			MouseY:    y,
			Buttons:   convertButtons(e.Buttons()),
			Modifiers: convertModifiers(e.Modifiers()),
		}, true

	case *tcell.EventInterrupt:
		// Events posted through PostEvent travel inside the interrupt
		if inner, ok := e.Data().(Event); ok {
			return inner, true
		}
		return Event{Type: EventInterrupt, Data: e.Data()}, true
	}
	return Event{}, false
}

func convertKey(e *tcell.EventKey) (Event, bool) {
	out := Event{Type: EventKey, Modifiers: convertModifiers(e.Modifiers())}

	k := e.Key()
	switch {
	case k == tcell.KeyRune:
		r := e.Rune()
		// Some terminals report Ctrl+letter as a modified rune
		if out.Modifiers&ModCtrl != 0 && r >= 'a' && r <= 'z' {
			out.Key = KeyCtrlA + Key(r-'a')
			break
		}
		out.Key = KeyRune
		out.Rune = r
	default:
		if mapped, ok := tcellKeys[k]; ok {
			out.Key = mapped
		} else if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			out.Key = KeyCtrlA + Key(k-tcell.KeyCtrlA)
		} else {
			return Event{}, false
		}
	}
	return out, true
}

func convertButtons(b tcell.ButtonMask) ButtonMask {
	var m ButtonMask
	if b&tcell.Button1 != 0 {
		m |= ButtonPrimary
	}
	if b&tcell.Button2 != 0 {
		m |= ButtonSecondary
	}
	if b&tcell.Button3 != 0 {
		m |= ButtonMiddle
	}
	if b&tcell.WheelUp != 0 {
		m |= WheelUp
	}
	if b&tcell.WheelDown != 0 {
		m |= WheelDown
	}
	return m
}

func convertModifiers(mod tcell.ModMask) Modifier {
	var m Modifier
	if mod&tcell.ModShift != 0 {
		m |= ModShift
	}
	if mod&(tcell.ModAlt|tcell.ModMeta) != 0 {
		m |= ModAlt
	}
	if mod&tcell.ModCtrl != 0 {
		m |= ModCtrl
	}
	return m
}
