package widget

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key is a non-printing key delivered to the focused element. Printable
// characters arrive through TextInput instead.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PgUp",
	KeyPageDown:  "PgDn",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyInsert:    "Ins",
	KeyDelete:    "Del",
	KeyBackspace: "Backspace",
	KeyEnter:     "Enter",
	KeyEscape:    "Esc",
}

func (k Key) String() string {
	if k < 0 || k >= KeyCount {
		return "?"
	}
	return keyNames[k]
}

// Input is the device state a Screen reads once per frame.
type Input interface {
	// MousePos returns the pointer position in screen space.
	MousePos() (x, y int)
	// MouseDown returns true while the button is held.
	MouseDown(button MouseButton) bool
	// KeyDown returns true while the key is held.
	KeyDown(key Key) bool
}

// WheelInput is implemented by inputs that report scroll wheel movement.
type WheelInput interface {
	// WheelDelta returns the vertical wheel movement since the last frame.
	WheelDelta() int
}

// TextInput is implemented by inputs that report typed characters.
type TextInput interface {
	// TypedChars returns the characters typed since the last frame.
	TypedChars() []rune
}

// InputState is a plain Input filled in by a backend or a test. Held
// buttons and keys persist across frames; wheel movement and typed
// characters are cleared by Reset. Press and release edges are derived by
// the Screen, not here.
type InputState struct {
	MouseX, MouseY int

	mouseDown [MouseButtonCount]bool
	keyDown   [KeyCount]bool

	wheel float32
	chars []rune
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{chars: make([]rune, 0, 16)}
}

// Reset clears per-frame input. Call it once the Screen has consumed the
// frame. Whole wheel notches are consumed; the fractional remainder carries
// over so small trackpad deltas add up.
func (s *InputState) Reset() {
	s.chars = s.chars[:0]
	s.wheel -= float32(int(s.wheel))
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y int) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state. Unknown buttons are ignored.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	s.mouseDown[button] = down
}

// SetKey sets key state. Unknown keys are ignored.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keyDown[key] = down
}

// AddWheel accumulates vertical wheel movement for this frame.
func (s *InputState) AddWheel(dy float32) {
	s.wheel += dy
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.chars = append(s.chars, ch)
}

// MousePos returns the mouse position.
func (s *InputState) MousePos() (x, y int) {
	return s.MouseX, s.MouseY
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// WheelDelta returns the vertical wheel movement this frame in whole
// notches, truncated towards zero.
func (s *InputState) WheelDelta() int {
	return int(s.wheel)
}

// TypedChars returns the characters typed this frame.
func (s *InputState) TypedChars() []rune {
	return s.chars
}
