package charmap

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// LoadPNG reads a PNG file and returns its pixels as RGBA.
func LoadPNG(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open font image: %w", err)
	}
	defer f.Close()

	img, err := DecodePNG(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("font image loaded", "path", path, "width", img.Rect.Dx(), "height", img.Rect.Dy())
	return img, nil
}

// DecodePNG decodes a PNG stream and converts it to RGBA so it can be
// uploaded as GL_RGBA regardless of the file's color model.
func DecodePNG(r io.Reader) (*image.RGBA, error) {
	src, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, nil
	}

	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	return rgba, nil
}
