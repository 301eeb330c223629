package charmap

// Key represents a keyboard key the demos react to.
type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyCount
)

// InputState holds input state for the current frame.
// It is populated by the window backend from GLFW callbacks.
type InputState struct {
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed or repeated

	// Text input (Unicode characters typed this frame)
	InputChars []rune
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame input state.
// Call this after the frame has consumed its input.
func (s *InputState) Reset() {
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	s.InputChars = s.InputChars[:0]
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
}

// RepeatKey records an auto-repeat event for a held key.
func (s *InputState) RepeatKey(key Key) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	s.keyDown[key] = true
	s.keyPressed[key] = true
}

// AddInputChar adds a typed character.
func (s *InputState) AddInputChar(c rune) {
	s.InputChars = append(s.InputChars, c)
}

// IsKeyDown returns true if the key is currently held.
func (s *InputState) IsKeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// IsKeyPressed returns true if the key was pressed (or repeated) this frame.
func (s *InputState) IsKeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// EditLine applies this frame's typing to text. Characters that have no
// tile on sheet are skipped; Backspace removes the last byte.
// It reports whether text changed.
func EditLine(text string, in *InputState, sheet Sheet) (string, bool) {
	if in == nil {
		return text, false
	}

	changed := false
	if in.IsKeyPressed(KeyBackspace) && len(text) > 0 {
		text = text[:len(text)-1]
		changed = true
	}

	for _, c := range in.InputChars {
		if c > 0x7f || !sheet.Contains(c) {
			continue
		}
		if len(text) >= TextCapacity {
			break
		}
		text += string(c)
		changed = true
	}

	return text, changed
}
