package charmap

// Sheet describes a monospace font sheet: a grid of equally sized glyph tiles
// laid out row by row, starting with FirstChar in the top-left corner.
type Sheet struct {
	Columns   int
	Rows      int
	FirstChar int32 // Character code of the top-left tile
}

// OldschoolSheet is the layout of charmap-oldschool_white.png:
// 18 columns x 7 rows beginning at the space character.
var OldschoolSheet = Sheet{Columns: 18, Rows: 7, FirstChar: ' '}

// UVRect is a tile rectangle in normalized texture coordinates.
// (U0, V0) is the top-left corner, (U1, V1) the bottom-right.
type UVRect struct {
	U0, V0 float32
	U1, V1 float32
}

// Tiles returns the number of glyph tiles on the sheet.
func (s Sheet) Tiles() int {
	return s.Columns * s.Rows
}

// Index returns the tile index for a character code.
func (s Sheet) Index(code int32) int32 {
	return code - s.FirstChar
}

// Contains reports whether code maps to a tile on the sheet.
func (s Sheet) Contains(code int32) bool {
	idx := s.Index(code)
	return idx >= 0 && int(idx) < s.Tiles()
}

// Cell returns the column and row of the tile for code.
// This mirrors the arithmetic in the text vertex shader.
func (s Sheet) Cell(code int32) (col, row int32) {
	idx := s.Index(code)
	cols := int32(s.Columns)
	return idx % cols, idx / cols
}

// UV returns the texture-space rectangle of the tile for code.
func (s Sheet) UV(code int32) UVRect {
	col, row := s.Cell(code)
	cols := float32(s.Columns)
	rows := float32(s.Rows)
	return UVRect{
		U0: float32(col) / cols,
		V0: float32(row) / rows,
		U1: float32(col+1) / cols,
		V1: float32(row+1) / rows,
	}
}

// GlyphSize returns the pixel size of one tile for a sheet image of the
// given dimensions.
func (s Sheet) GlyphSize(texWidth, texHeight int) (w, h float32) {
	if s.Columns <= 0 || s.Rows <= 0 {
		return 0, 0
	}
	return float32(texWidth) / float32(s.Columns), float32(texHeight) / float32(s.Rows)
}

func (s Sheet) valid() bool {
	return s.Columns > 0 && s.Rows > 0 && s.FirstChar >= 0
}
