/*
Package charmap renders text from a monospace bitmap font sheet with OpenGL.

The package itself holds the GL-free parts: the sheet layout, the text
payload streamed to the GPU, per-frame input, configuration and PNG
loading. The backend/opengl package owns the window, shaders and draw
calls, and the example/quad and example/text commands tie them together.

# Font sheet

A sheet is a grid of equally sized tiles read row by row. OldschoolSheet
has 18 columns and 7 rows starting at the space character, so a
character code maps to its tile as

	index := code - ' '
	col, row := index % 18, index / 18

and the tile covers [col/18, (col+1)/18] x [row/7, (row+1)/7] in texture
space. The text vertex shader performs the same arithmetic on the GPU.

# Text buffer

TextBuffer holds one int32 code per glyph with a fixed capacity of
TextCapacity codes. Setting a string stores min(TextCapacity, len(s))
codes, and only those bytes are uploaded:

	var buf charmap.TextBuffer
	buf.SetString("Hello")
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, buf.ByteSize(), gl.Ptr(buf.Codes()))
*/
package charmap
