package terminal

import (
	"strings"
	"unicode/utf8"
)

// keyToName maps Key constants to canonical binding names
// Names follow the bubbletea convention so bindings can be shared with charm keymaps
var keyToName = map[Key]string{
	KeyEscape:    "esc",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "pgup",
	KeyPageDown: "pgdown",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	for k := KeyCtrlA; k <= KeyCtrlZ; k++ {
		keyToName[k] = "ctrl+" + string(rune('a'+int(k-KeyCtrlA)))
	}
	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["escape"] = KeyEscape
	nameToKey["backtab"] = KeyBacktab
}

// KeyName returns the binding name of a key event
// Printable runes name themselves, space is "space"; Alt prefixes "alt+"
func KeyName(ev Event) string {
	var name string
	switch ev.Key {
	case KeyRune:
		if ev.Rune == ' ' {
			name = "space"
		} else {
			name = string(ev.Rune)
		}
	default:
		name = keyToName[ev.Key]
	}
	if name != "" && ev.Modifiers&ModAlt != 0 {
		name = "alt+" + name
	}
	return name
}

// KeyByName resolves a binding name to a key and rune
// Single characters and "space" resolve to KeyRune; an "alt+" prefix is accepted and ignored
func KeyByName(name string) (Key, rune, bool) {
	if rest, ok := strings.CutPrefix(name, "alt+"); ok && rest != "" {
		name = rest
	}
	if name == "space" {
		return KeyRune, ' ', true
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return KeyRune, r, true
	}
	if k, ok := nameToKey[name]; ok {
		return k, 0, true
	}
	return KeyNone, 0, false
}
