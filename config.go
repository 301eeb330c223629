package charmap

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultFontPath is where the demos look for the font sheet.
const DefaultFontPath = "./charmap-oldschool_white.png"

// Config holds window and rendering settings shared by the demos.
type Config struct {
	Width    int
	Height   int
	Title    string
	FontPath string
	Sheet    Sheet

	// Text demo
	Text    string
	Scale   float32    // Glyph magnification
	Origin  [2]float32 // Top-left pen position in pixels
	Color   [4]float32 // RGBA tint
	VSync   bool
	Verbose bool
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns the settings the demos start from.
func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   600,
		Title:    "charmap",
		FontPath: DefaultFontPath,
		Sheet:    OldschoolSheet,
		Text:     "Hello, World",
		Scale:    2,
		Origin:   [2]float32{16, 16},
		Color:    [4]float32{1, 1, 1, 1},
		VSync:    true,
	}
}

// NewConfig returns DefaultConfig with opts applied.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSize sets the window size.
func WithSize(width, height int) Option {
	return func(c *Config) { c.Width, c.Height = width, height }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithFontPath sets the font sheet PNG.
func WithFontPath(path string) Option {
	return func(c *Config) { c.FontPath = path }
}

// WithSheet sets the font sheet layout.
func WithSheet(sheet Sheet) Option {
	return func(c *Config) { c.Sheet = sheet }
}

// WithText sets the initial text of the text demo.
func WithText(text string) Option {
	return func(c *Config) { c.Text = text }
}

// WithScale sets the glyph magnification.
func WithScale(scale float32) Option {
	return func(c *Config) { c.Scale = scale }
}

// WithOrigin sets the pen position of the first glyph.
func WithOrigin(x, y float32) Option {
	return func(c *Config) { c.Origin = [2]float32{x, y} }
}

// WithColor sets the text tint.
func WithColor(r, g, b, a float32) Option {
	return func(c *Config) { c.Color = [4]float32{r, g, b, a} }
}

// WithVSync enables or disables vertical sync.
func WithVSync(on bool) Option {
	return func(c *Config) { c.VSync = on }
}

// WithVerbose enables debug logging.
func WithVerbose(on bool) Option {
	return func(c *Config) { c.Verbose = on }
}

// Validate checks the settings for values the renderer cannot use.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FontPath == "" {
		return fmt.Errorf("%w: empty font path", ErrInvalidConfig)
	}
	if !c.Sheet.valid() {
		return fmt.Errorf("%w: sheet %dx%d from %d", ErrInvalidConfig, c.Sheet.Columns, c.Sheet.Rows, c.Sheet.FirstChar)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale %g", ErrInvalidConfig, c.Scale)
	}
	return nil
}

// RegisterFlags binds the command-line flags of the demos to c.
// Values already in c become the flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.StringVar(&c.FontPath, "font", c.FontPath, "font sheet PNG")
	fs.StringVar(&c.Text, "text", c.Text, "initial text")
	fs.Func("scale", fmt.Sprintf("glyph magnification (default %g)", c.Scale), func(v string) error {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return err
		}
		c.Scale = float32(f)
		return nil
	})
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "enable vertical sync")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose logging")
}
