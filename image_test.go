package charmap

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecodePNGGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 18, 7))
	src.SetGray(3, 2, color.Gray{Y: 255})

	img, err := DecodePNG(bytes.NewReader(encodePNG(t, src)))
	if err != nil {
		t.Fatalf("DecodePNG: %v", err)
	}

	if img.Rect.Dx() != 18 || img.Rect.Dy() != 7 {
		t.Fatalf("size = %v, want 18x7", img.Rect)
	}
	if got := img.RGBAAt(3, 2); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("pixel (3,2) = %v, want white", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("pixel (0,0) = %v, want opaque black", got)
	}
}

func TestDecodePNGInvalid(t *testing.T) {
	if _, err := DecodePNG(bytes.NewReader([]byte("not a png"))); err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestLoadPNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "font.png")
	if err := os.WriteFile(path, encodePNG(t, src), 0o644); err != nil {
		t.Fatal(err)
	}

	img, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG: %v", err)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel (1,1) = %v, want red", got)
	}
}

func TestLoadPNGMissing(t *testing.T) {
	_, err := LoadPNG(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadPNG missing file: %v, want fs.ErrNotExist", err)
	}
}
