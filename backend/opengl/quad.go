package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// The quad has no vertex buffer: corners come from gl_VertexID
// (0,1,2,3 -> (-1,-1), (1,-1), (-1,1), (1,1)) drawn as a triangle strip.
const quadVertexShaderSource = `
#version 410 core

out vec2 uv;

void main() {
    vec2 position = vec2(
        2.0 * float(gl_VertexID & 1) - 1.0,
        2.0 * float((gl_VertexID >> 1) & 1) - 1.0);
    gl_Position = vec4(position, 0.0, 1.0);
    uv = (position + vec2(1.0, 1.0)) * 0.5;
}
` + "\x00"

// The image's first row sits at v=0, so v is flipped to show it upright.
const quadFragmentShaderSource = `
#version 410 core

uniform float time;
uniform sampler2D font;

in vec2 uv;
out vec4 color;

void main() {
    color = texture(font, vec2(uv.x, 1.0 - uv.y));
}
` + "\x00"

// QuadRenderer draws a texture stretched over the whole viewport.
type QuadRenderer struct {
	program uint32
	vao     uint32
	timeLoc int32
	fontLoc int32
}

// NewQuadRenderer builds the full-screen quad program.
func NewQuadRenderer() (*QuadRenderer, error) {
	program, err := NewProgram(quadVertexShaderSource, quadFragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}

	r := &QuadRenderer{
		program: program,
		timeLoc: uniform(program, "time"),
		fontLoc: uniform(program, "font"),
	}

	// Core profile refuses to draw without a bound VAO, even an empty one.
	gl.GenVertexArrays(1, &r.vao)

	return r, nil
}

// Draw renders font over the viewport. t is the time in seconds.
func (r *QuadRenderer) Draw(font *Texture, t float64) {
	gl.UseProgram(r.program)
	gl.Uniform1f(r.timeLoc, float32(t))

	font.Bind(0)
	gl.Uniform1i(r.fontLoc, 0)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// Delete releases OpenGL resources.
func (r *QuadRenderer) Delete() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
