// Command quad shows the whole font sheet stretched over a window.
//
// Prerequisites:
//
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/quad/ -font ./charmap-oldschool_white.png
//
// Press Escape to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/charmap"
	"github.com/go-theft-auto/charmap/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := charmap.NewConfig(charmap.WithTitle("charmap quad"))
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg charmap.Config) error {
	charmap.SetVerbose(cfg.Verbose)

	window, err := opengl.OpenWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	quad, err := opengl.NewQuadRenderer()
	if err != nil {
		return err
	}
	defer quad.Delete()

	font, err := opengl.LoadFontTexture(cfg.FontPath)
	if err != nil {
		return err
	}
	defer font.Delete()

	return window.Run(func(t float64, _ *charmap.InputState) error {
		quad.Draw(font, t)
		return nil
	})
}
