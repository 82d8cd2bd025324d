package icongen

import (
	"io"
	"path/filepath"
)

// Defaults used when no option overrides them.
const (
	// DefaultSize is the icon edge length in pixels.
	DefaultSize = 32

	// DefaultFontPath is the preferred bold sans-serif font.
	DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"

	// DefaultFontSize is the preferred font size in points (pixels at 72 DPI).
	DefaultFontSize = 12

	// DefaultExt is the extension appended to destination names.
	DefaultExt = ".png"
)

// DefaultOutputDir is the icon directory of the media player tree.
var DefaultOutputDir = filepath.Join("src", "gfx", "icons")

// Option configures a Generator during creation.
//
// Example:
//
//	g := icongen.New(
//	    icongen.WithOutputDir(dir),
//	    icongen.WithFontPath("/opt/fonts/Inter-Bold.ttf"),
//	)
type Option func(*config)

// config holds Generator configuration.
type config struct {
	outputDir  string
	fontPath   string
	fontSize   float64
	size       int
	background RGBA
	foreground RGBA
	border     bool
	workers    int
	report     io.Writer
}

// defaultConfig returns the default generator configuration.
func defaultConfig() config {
	return config{
		outputDir:  DefaultOutputDir,
		fontPath:   DefaultFontPath,
		fontSize:   DefaultFontSize,
		size:       DefaultSize,
		background: Background,
		foreground: Foreground,
		workers:    1,
		report:     io.Discard,
	}
}

// WithOutputDir sets the directory icons are written to.
// It is created with any missing parents on GenerateAll.
func WithOutputDir(dir string) Option {
	return func(c *config) {
		c.outputDir = dir
	}
}

// WithFontPath sets the preferred font file.
// An unusable file silently selects the built-in fallback face.
func WithFontPath(path string) Option {
	return func(c *config) {
		c.fontPath = path
	}
}

// WithFontSize sets the preferred font size in points.
// It has no effect on the fallback face.
func WithFontSize(size float64) Option {
	return func(c *config) {
		c.fontSize = size
	}
}

// WithSize sets the canvas edge length in pixels.
func WithSize(px int) Option {
	return func(c *config) {
		c.size = px
	}
}

// WithBackground sets the canvas fill color.
func WithBackground(col RGBA) Option {
	return func(c *config) {
		c.background = col
	}
}

// WithForeground sets the label color.
func WithForeground(col RGBA) Option {
	return func(c *config) {
		c.foreground = col
	}
}

// WithBorder enables a 1px BorderColor frame around each icon.
func WithBorder(enabled bool) Option {
	return func(c *config) {
		c.border = enabled
	}
}

// WithWorkers sets how many icons GenerateAll renders at once.
// Values below 2 keep the batch sequential.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithReport sets where GenerateAll prints one confirmation line per icon.
// The default discards them.
func WithReport(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}
		c.report = w
	}
}
