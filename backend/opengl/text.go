package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/charmap"
)

// One instance per glyph. The instance supplies the character code, the
// vertex ID picks the quad corner and the instance ID the glyph slot.
const textVertexShaderSource = `
#version 410 core

layout (location = 0) in int code;

uniform mat4 projection;
uniform vec2 origin;
uniform vec2 glyph_size;
uniform int font_cols;
uniform int font_rows;
uniform int first_char;

out vec2 uv;

void main() {
    vec2 corner = vec2(float(gl_VertexID & 1), float((gl_VertexID >> 1) & 1));
    vec2 position = origin + (vec2(float(gl_InstanceID), 0.0) + corner) * glyph_size;
    gl_Position = projection * vec4(position, 0.0, 1.0);

    int index = code - first_char;
    vec2 cell = vec2(float(index % font_cols), float(index / font_cols));
    uv = (cell + corner) / vec2(float(font_cols), float(font_rows));
}
` + "\x00"

// The sheet is white on black, so red doubles as coverage.
const textFragmentShaderSource = `
#version 410 core

uniform sampler2D font;
uniform vec4 text_color;

in vec2 uv;
out vec4 color;

void main() {
    float coverage = texture(font, uv).r;
    color = vec4(text_color.rgb, text_color.a * coverage);
}
` + "\x00"

// TextRenderer draws a single line of monospace text with one instanced
// draw call. The text lives in a fixed-size instance buffer that is
// updated in place.
type TextRenderer struct {
	program uint32
	vao     uint32
	vbo     uint32

	projLoc      int32
	originLoc    int32
	glyphSizeLoc int32
	colsLoc      int32
	rowsLoc      int32
	firstLoc     int32
	fontLoc      int32
	colorLoc     int32

	sheet      charmap.Sheet
	buf        charmap.TextBuffer
	projection mgl32.Mat4
	origin     mgl32.Vec2
	scale      float32
	color      mgl32.Vec4
}

// NewTextRenderer builds the text program and allocates the instance
// buffer for a viewport of the given size.
func NewTextRenderer(sheet charmap.Sheet, width, height int) (*TextRenderer, error) {
	program, err := NewProgram(textVertexShaderSource, textFragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("text program: %w", err)
	}

	r := &TextRenderer{
		program:      program,
		projLoc:      uniform(program, "projection"),
		originLoc:    uniform(program, "origin"),
		glyphSizeLoc: uniform(program, "glyph_size"),
		colsLoc:      uniform(program, "font_cols"),
		rowsLoc:      uniform(program, "font_rows"),
		firstLoc:     uniform(program, "first_char"),
		fontLoc:      uniform(program, "font"),
		colorLoc:     uniform(program, "text_color"),
		sheet:        sheet,
		projection:   mgl32.Ortho2D(0, float32(width), float32(height), 0),
		scale:        1,
		color:        mgl32.Vec4{1, 1, 1, 1},
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, r.buf.Capacity(), nil, gl.DYNAMIC_DRAW)

	// Integer attribute: must go through the I variant to stay an int.
	gl.VertexAttribIPointer(0, 1, gl.INT, charmap.CodeSize, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribDivisor(0, 1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return r, nil
}

// SetText replaces the displayed text and uploads only the bytes it
// occupies. Text beyond charmap.TextCapacity bytes is dropped.
func (r *TextRenderer) SetText(s string) {
	n := r.buf.SetString(s)
	if n < len(s) {
		charmap.Logger().Warn("text truncated", "length", len(s), "capacity", charmap.TextCapacity)
	}
	if n == 0 {
		return
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, r.buf.ByteSize(), gl.Ptr(r.buf.Codes()))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Len returns the number of glyphs that will be drawn.
func (r *TextRenderer) Len() int {
	return r.buf.Len()
}

// SetOrigin sets the top-left pixel position of the first glyph.
func (r *TextRenderer) SetOrigin(origin mgl32.Vec2) {
	r.origin = origin
}

// SetScale sets the glyph magnification relative to the sheet's tile size.
func (r *TextRenderer) SetScale(scale float32) {
	r.scale = scale
}

// SetColor sets the RGBA text tint.
func (r *TextRenderer) SetColor(color mgl32.Vec4) {
	r.color = color
}

// Draw renders the current text using font.
func (r *TextRenderer) Draw(font *Texture) {
	n := r.buf.Len()
	if n == 0 {
		return
	}

	gw, gh := r.sheet.GlyphSize(font.Width, font.Height)
	glyph := mgl32.Vec2{gw, gh}.Mul(r.scale)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &r.projection[0])
	gl.Uniform2f(r.originLoc, r.origin.X(), r.origin.Y())
	gl.Uniform2f(r.glyphSizeLoc, glyph.X(), glyph.Y())
	gl.Uniform1i(r.colsLoc, int32(r.sheet.Columns))
	gl.Uniform1i(r.rowsLoc, int32(r.sheet.Rows))
	gl.Uniform1i(r.firstLoc, r.sheet.FirstChar)
	gl.Uniform4f(r.colorLoc, r.color[0], r.color[1], r.color[2], r.color[3])

	font.Bind(0)
	gl.Uniform1i(r.fontLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.DrawArraysInstanced(gl.TRIANGLE_STRIP, 0, 4, int32(n))
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
}

// Delete releases OpenGL resources.
func (r *TextRenderer) Delete() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
