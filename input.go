package periodic

// MouseButton identifies a mouse button. Only the primary button selects.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonCount
)

// Key is one of the non-text keys the table reacts to. Letters arrive as
// runes in InputState.InputChars.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyBackspace
	KeyV           // with Ctrl: paste
	KeyFreeze      // numpad 1
	KeyToggleDebug // backtick
	KeyCount
)

// Key repeat timing, in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputState is the input of one frame. The host fills it from window
// events; EventsFromInput turns it into Events.
type InputState struct {
	MouseX, MouseY float32
	MouseWheelY    float32
	ModCtrl        bool

	// Runes typed this frame.
	InputChars []rune

	mouseDown [MouseButtonCount]bool

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // set on the frame the key went down

	// Hold time of each key at the end of this and the previous frame.
	holdTime     [KeyCount]float32
	prevHoldTime [KeyCount]float32
}

// NewInputState creates an empty InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears the single-frame events. Held keys and buttons stay down.
func (s *InputState) Reset() {
	clear(s.keyPressed[:])
	s.InputChars = s.InputChars[:0]
	s.MouseWheelY = 0
}

// SetMousePos sets the pointer position in framebuffer pixels.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton records a button press or release.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.mouseDown[button] = down
}

// SetKey records a key press or release. A fresh press restarts the
// repeat timer.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	if down && !s.keyDown[key] {
		s.keyPressed[key] = true
	}
	if down != s.keyDown[key] {
		s.holdTime[key] = 0
		s.prevHoldTime[key] = 0
	}
	s.keyDown[key] = down
}

// UpdateKeyRepeat advances the hold time of every held key by dt seconds.
// Call it once per frame before the input is consumed.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := range s.keyDown {
		s.prevHoldTime[key] = s.holdTime[key]
		if s.keyDown[key] {
			s.holdTime[key] += dt
		}
	}
}

// SetMouseWheel sets the vertical wheel delta of this frame.
func (s *InputState) SetMouseWheel(y float32) {
	s.MouseWheelY = y
}

// AddInputChar appends a typed rune.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown reports whether a mouse button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// KeyPressed reports whether key went down this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyRepeated reports whether a held key should act this frame: on the
// initial press, once KeyRepeatDelay has passed, and then every
// KeyRepeatInterval.
func (s *InputState) KeyRepeated(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}

	hold := s.holdTime[key]
	if hold < KeyRepeatDelay {
		return false
	}
	prev := s.prevHoldTime[key]
	if prev < KeyRepeatDelay {
		return true
	}
	return repeatTicks(hold) > repeatTicks(prev)
}

func repeatTicks(hold float32) int {
	return int((hold - KeyRepeatDelay) / KeyRepeatInterval)
}
