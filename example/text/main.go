// Command text renders a line of text from the font sheet with a single
// instanced draw call. Typing edits the line; Backspace deletes; Escape quits.
//
// Prerequisites:
//
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/text/ -font ./charmap-oldschool_white.png -text "Hello, World"
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/charmap"
	"github.com/go-theft-auto/charmap/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := charmap.NewConfig(charmap.WithTitle("charmap text"))
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg charmap.Config) error {
	charmap.SetVerbose(cfg.Verbose)
	log := charmap.Logger()

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	width, height := window.Size()
	text, err := opengl.NewTextRenderer(cfg.Sheet, width, height)
	if err != nil {
		return err
	}
	defer text.Delete()

	font, err := opengl.LoadFontTexture(cfg.FontPath)
	if err != nil {
		return err
	}
	defer font.Delete()

	text.SetOrigin(mgl32.Vec2(cfg.Origin))
	text.SetScale(cfg.Scale)
	text.SetColor(mgl32.Vec4(cfg.Color))

	line := cfg.Text
	text.SetText(line)
	log.Debug("text uploaded", "glyphs", text.Len())

	return window.Run(func(_ float64, in *charmap.InputState) error {
		if edited, changed := charmap.EditLine(line, in, cfg.Sheet); changed {
			line = edited
			text.SetText(line)
			log.Debug("text edited", "glyphs", text.Len())
		}
		text.Draw(font)
		return nil
	})
}
