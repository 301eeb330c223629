package charmap

import "testing"

func TestSheetCell(t *testing.T) {
	s := OldschoolSheet

	tests := []struct {
		code     int32
		col, row int32
	}{
		{' ', 0, 0},
		{'!', 1, 0},
		{'1', 17, 0}, // '1' - ' ' = 17, last column of the first row
		{'2', 0, 1},
		{'A', 15, 1},
		{'a', 11, 3},
		{'~', 4, 5},
		{32 + 125, 17, 6}, // last tile
	}

	for _, tt := range tests {
		col, row := s.Cell(tt.code)
		if col != tt.col || row != tt.row {
			t.Errorf("Cell(%q) = (%d, %d), want (%d, %d)", tt.code, col, row, tt.col, tt.row)
		}
	}
}

func TestSheetUV(t *testing.T) {
	s := OldschoolSheet

	uv := s.UV(' ')
	if uv != (UVRect{U0: 0, V0: 0, U1: 1.0 / 18, V1: 1.0 / 7}) {
		t.Errorf("UV(' ') = %+v", uv)
	}

	uv = s.UV('A') // col 15, row 1
	want := UVRect{U0: 15.0 / 18, V0: 1.0 / 7, U1: 16.0 / 18, V1: 2.0 / 7}
	if uv != want {
		t.Errorf("UV('A') = %+v, want %+v", uv, want)
	}

	// Last tile touches the bottom-right corner of the sheet.
	uv = s.UV(32 + 125)
	if uv.U1 != 1 || uv.V1 != 1 {
		t.Errorf("last tile UV = %+v, want U1=V1=1", uv)
	}
}

func TestSheetContains(t *testing.T) {
	s := OldschoolSheet

	if !s.Contains(' ') || !s.Contains('~') {
		t.Error("printable ASCII should be on the sheet")
	}
	if s.Contains('\n') {
		t.Error("control characters should not be on the sheet")
	}
	if !s.Contains(32 + 125) {
		t.Error("last tile should be on the sheet")
	}
	if s.Contains(32 + 126) {
		t.Error("code past the last tile should not be on the sheet")
	}
	if s.Tiles() != 126 {
		t.Errorf("Tiles() = %d, want 126", s.Tiles())
	}
}

func TestSheetGlyphSize(t *testing.T) {
	w, h := OldschoolSheet.GlyphSize(126, 63)
	if w != 7 || h != 9 {
		t.Errorf("GlyphSize(126, 63) = (%g, %g), want (7, 9)", w, h)
	}

	w, h = Sheet{}.GlyphSize(126, 63)
	if w != 0 || h != 0 {
		t.Errorf("empty sheet GlyphSize = (%g, %g), want (0, 0)", w, h)
	}
}
