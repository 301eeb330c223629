package opengl

import (
	"errors"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/charmap"
)

func TestShaderErrorMessage(t *testing.T) {
	var err error = &ShaderError{Stage: "fragment", Log: "0:3: syntax error"}

	if got := err.Error(); got != "fragment shader: 0:3: syntax error" {
		t.Errorf("Error() = %q", got)
	}

	var se *ShaderError
	if !errors.As(err, &se) || se.Stage != "fragment" {
		t.Errorf("errors.As failed for %v", err)
	}
}

func TestStageName(t *testing.T) {
	if got := stageName(gl.VERTEX_SHADER); got != "vertex" {
		t.Errorf("stageName(VERTEX_SHADER) = %q", got)
	}
	if got := stageName(gl.FRAGMENT_SHADER); got != "fragment" {
		t.Errorf("stageName(FRAGMENT_SHADER) = %q", got)
	}
}

func TestTrimLog(t *testing.T) {
	if got := trimLog([]byte("bad token\n\x00")); got != "bad token" {
		t.Errorf("trimLog = %q", got)
	}
}

func TestGLFWKeyMapping(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want charmap.Key
	}{
		{glfw.KeyEscape, charmap.KeyEscape},
		{glfw.KeyBackspace, charmap.KeyBackspace},
		{glfw.KeyEnter, charmap.KeyEnter},
		{glfw.KeyQ, charmap.KeyNone},
	}
	for _, tt := range tests {
		if got := glfwKeyToKey(tt.key); got != tt.want {
			t.Errorf("glfwKeyToKey(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestGLFWInputAdapterCallbacks(t *testing.T) {
	a := &GLFWInputAdapter{input: charmap.NewInputState()}

	a.keyCallback(nil, glfw.KeyBackspace, 0, glfw.Press, 0)
	a.charCallback(nil, 'x')
	in := a.Input()
	if !in.IsKeyPressed(charmap.KeyBackspace) {
		t.Error("Backspace press not recorded")
	}
	if len(in.InputChars) != 1 || in.InputChars[0] != 'x' {
		t.Errorf("InputChars = %q", in.InputChars)
	}

	a.EndFrame()
	a.keyCallback(nil, glfw.KeyBackspace, 0, glfw.Repeat, 0)
	if !in.IsKeyPressed(charmap.KeyBackspace) {
		t.Error("repeat not recorded as a press")
	}

	a.keyCallback(nil, glfw.KeyBackspace, 0, glfw.Release, 0)
	if in.IsKeyDown(charmap.KeyBackspace) {
		t.Error("release not recorded")
	}
}
