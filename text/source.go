package text

import (
	"bytes"
	"fmt"
	"os"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource is a parsed TTF/OTF font file.
// One FontSource can create faces at several sizes.
//
// Faces created from a FontSource are not safe for concurrent use;
// the FontSource itself is read-only after creation.
type FontSource struct {
	font *opentype.Font

	// cmap is the go-text view of the same data, used for coverage lookups.
	// Nil when go-text cannot parse a font that x/image accepted.
	cmap *gotext.Font

	name string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	s := &FontSource{font: f}
	s.name = extractFontName(f)

	if face, err := gotext.ParseTTF(bytes.NewReader(data)); err == nil {
		s.cmap = face.Font
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- font path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

// Face creates a face at the given size in points, at 72 DPI,
// so one point is one pixel.
func (s *FontSource) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, ErrInvalidFontSize
	}
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return face, nil
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// HasGlyph reports whether the font's cmap maps r to a real glyph.
func (s *FontSource) HasGlyph(r rune) bool {
	if s.cmap != nil {
		_, ok := s.cmap.NominalGlyph(r)
		return ok
	}
	var buf sfnt.Buffer
	idx, err := s.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// extractFontName extracts the font family name, then the full name.
func extractFontName(f *opentype.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}
