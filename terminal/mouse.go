package terminal

// ButtonMask is the set of mouse buttons held down in a mouse record
type ButtonMask uint8

const (
	ButtonNone      ButtonMask = 0
	ButtonPrimary   ButtonMask = 1 << 0 // Left
	ButtonSecondary ButtonMask = 1 << 1 // Right
	ButtonMiddle    ButtonMask = 1 << 2
	WheelUp         ButtonMask = 1 << 3
	WheelDown       ButtonMask = 1 << 4
)

// Has reports whether every button in b is held
func (m ButtonMask) Has(b ButtonMask) bool {
	return m&b == b
}

// MouseMode controls which mouse events are reported (bitmask)
type MouseMode uint8

const (
	MouseModeNone   MouseMode = 0
	MouseModeClick  MouseMode = 1 << 0 // Press/release events
	MouseModeDrag   MouseMode = 1 << 1 // Drag events (button held + motion)
	MouseModeMotion MouseMode = 1 << 2 // All motion events

	MouseModeAll = MouseModeClick | MouseModeDrag | MouseModeMotion
)

// String returns human-readable button set
func (m ButtonMask) String() string {
	if m == ButtonNone {
		return "None"
	}
	names := [...]string{"Primary", "Secondary", "Middle", "WheelUp", "WheelDown"}
	s := ""
	for i, name := range names {
		if m&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	return s
}
