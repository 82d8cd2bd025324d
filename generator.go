package icongen

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/icongen/text"
)

// Generator renders icons with a fixed set of parameters.
// A Generator is safe for concurrent use; every call resolves its own font.
type Generator struct {
	cfg config
}

// Result describes one written icon.
type Result struct {
	Icon Icon

	// Path is the file the icon was written to.
	Path string

	// Font is the kind of font that drew the label.
	Font text.Kind

	// FontName is the family name of that font.
	FontName string

	// Origin is the top-left corner of the label's bounding box.
	Origin image.Point

	// Bounds is the measured label box relative to the baseline origin.
	Bounds text.Bounds

	// Missing lists label runes the font has no glyph for. They were
	// drawn with the font's replacement glyph.
	Missing []rune
}

// New creates a Generator. Without options it reproduces the stock
// media-player icons: 32×32, DejaVu Sans Bold 12pt, src/gfx/icons.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{cfg: cfg}
}

// Path returns the file an icon named name is written to.
func (g *Generator) Path(name string) string {
	return filepath.Join(g.cfg.outputDir, name+DefaultExt)
}

// OutputDir returns the directory icons are written to.
func (g *Generator) OutputDir() string {
	return g.cfg.outputDir
}

// Render draws label onto a new canvas without touching the filesystem.
func (g *Generator) Render(label string) (*Canvas, Result, error) {
	c, err := NewCanvas(g.cfg.size, g.cfg.size)
	if err != nil {
		return nil, Result{}, err
	}
	c.Clear(g.cfg.background)
	if g.cfg.border {
		c.StrokeBorder(BorderColor)
	}

	res := text.Resolve(g.cfg.fontPath, g.cfg.fontSize)
	defer func() {
		_ = res.Close()
	}()

	log := Logger()
	if res.Kind == text.KindFallback {
		log.Debug("icongen: font fallback", "path", res.Path, "reason", res.Err)
	} else {
		log.Debug("icongen: font resolved", "path", res.Path, "family", res.Name, "size", g.cfg.fontSize)
	}

	label = text.Normalize(label)
	b := text.Measure(res.Face, label)
	origin := text.CenterOrigin(c.Width(), c.Height(), b)
	text.Draw(c.Image(), res.Face, label, origin, b, g.cfg.foreground.Color())

	r := Result{
		Icon:     Icon{Label: label},
		Font:     res.Kind,
		FontName: res.Name,
		Origin:   origin,
		Bounds:   b,
		Missing:  res.Missing(label),
	}
	if len(r.Missing) > 0 {
		log.Debug("icongen: glyphs missing", "label", label, "runes", string(r.Missing), "font", res.Name)
	}
	return c, r, nil
}

// Generate renders one icon and writes it to Path(icon.Name), overwriting
// any existing file. The output directory must already exist.
func (g *Generator) Generate(icon Icon) (Result, error) {
	c, r, err := g.Render(icon.Label)
	if err != nil {
		return Result{}, &IconError{Name: icon.Name, Op: "render", Err: err}
	}
	r.Icon = icon
	r.Path = g.Path(icon.Name)

	if err := c.SavePNG(r.Path); err != nil {
		return Result{}, &IconError{Name: icon.Name, Op: "write", Err: err}
	}

	Logger().Info("icongen: icon written", "icon", r)
	return r, nil
}

// GenerateAll creates the output directory and generates every icon of t.
//
// The batch stops at the first error, which is returned; icons already
// written are kept. Results are in table order and cover the icons written
// before the failure. With WithWorkers(n > 1) up to n icons render at once
// and icons not yet started are skipped after a failure.
func (g *Generator) GenerateAll(ctx context.Context, t Table) ([]Result, error) {
	if err := os.MkdirAll(g.cfg.outputDir, 0o755); err != nil {
		return nil, &IconError{Name: g.cfg.outputDir, Op: "mkdir", Err: err}
	}
	if g.cfg.workers > 1 {
		return g.generateParallel(ctx, t)
	}

	results := make([]Result, 0, len(t))
	for _, icon := range t {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r, err := g.Generate(icon)
		if err != nil {
			return results, err
		}
		g.confirm(r)
		results = append(results, r)
	}
	return results, nil
}

func (g *Generator) generateParallel(ctx context.Context, t Table) ([]Result, error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.cfg.workers)

	slots := make([]*Result, len(t))
	for i, icon := range t {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := g.Generate(icon)
			if err != nil {
				return err
			}
			slots[i] = &r
			return nil
		})
	}
	err := eg.Wait()

	results := make([]Result, 0, len(t))
	for _, r := range slots {
		if r == nil {
			continue
		}
		g.confirm(*r)
		results = append(results, *r)
	}
	return results, err
}

func (g *Generator) confirm(r Result) {
	_, _ = fmt.Fprintf(g.cfg.report, "Created %s%s\n", r.Icon.Name, DefaultExt)
}

// GenerateIcon writes one icon with the default generator.
// The output directory must exist.
func GenerateIcon(label, name string) error {
	_, err := New().Generate(Icon{Label: label, Name: name})
	return err
}

// GenerateAllIcons writes the built-in table with the default generator,
// printing one line per icon to stdout.
func GenerateAllIcons() error {
	_, err := New(WithReport(os.Stdout)).GenerateAll(context.Background(), DefaultTable())
	return err
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Icon.Name),
		slog.String("path", r.Path),
		slog.String("font", r.Font.String()),
		slog.Int("x", r.Origin.X),
		slog.Int("y", r.Origin.Y),
	)
}
