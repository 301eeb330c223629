package charmap

import "testing"

func TestInputKeyPressed(t *testing.T) {
	in := NewInputState()

	in.SetKey(KeyEscape, true)
	if !in.IsKeyDown(KeyEscape) || !in.IsKeyPressed(KeyEscape) {
		t.Fatal("Escape should be down and pressed")
	}

	in.Reset()
	if !in.IsKeyDown(KeyEscape) {
		t.Error("Reset should keep held keys down")
	}
	if in.IsKeyPressed(KeyEscape) {
		t.Error("Reset should clear pressed state")
	}

	// Still held, no new press.
	in.SetKey(KeyEscape, true)
	if in.IsKeyPressed(KeyEscape) {
		t.Error("held key should not report a new press")
	}

	in.RepeatKey(KeyEscape)
	if !in.IsKeyPressed(KeyEscape) {
		t.Error("repeat should report a press")
	}

	in.SetKey(KeyEscape, false)
	if in.IsKeyDown(KeyEscape) {
		t.Error("released key should not be down")
	}
}

func TestInputInvalidKey(t *testing.T) {
	in := NewInputState()
	in.SetKey(KeyNone, true)
	in.SetKey(KeyCount, true)
	in.RepeatKey(Key(-1))

	if in.IsKeyDown(KeyNone) || in.IsKeyPressed(KeyCount) {
		t.Error("out-of-range keys should be ignored")
	}
}

func TestEditLine(t *testing.T) {
	in := NewInputState()
	in.AddInputChar('a')
	in.AddInputChar('é') // not on the sheet
	in.AddInputChar('b')

	text, changed := EditLine("x", in, OldschoolSheet)
	if !changed || text != "xab" {
		t.Errorf("EditLine = %q, %v; want \"xab\", true", text, changed)
	}

	in.Reset()
	in.SetKey(KeyBackspace, true)
	text, changed = EditLine(text, in, OldschoolSheet)
	if !changed || text != "xa" {
		t.Errorf("backspace: EditLine = %q, %v; want \"xa\", true", text, changed)
	}

	in.Reset()
	text, changed = EditLine(text, in, OldschoolSheet)
	if changed || text != "xa" {
		t.Errorf("no input: EditLine = %q, %v", text, changed)
	}
}

func TestEditLineBackspaceEmpty(t *testing.T) {
	in := NewInputState()
	in.SetKey(KeyBackspace, true)

	text, changed := EditLine("", in, OldschoolSheet)
	if changed || text != "" {
		t.Errorf("EditLine on empty = %q, %v", text, changed)
	}

	if _, changed := EditLine("abc", nil, OldschoolSheet); changed {
		t.Error("nil input should not change text")
	}
}
