package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Kind tells which font a Resolution ended up with.
type Kind int

const (
	// KindPrimary means the requested font file was loaded.
	KindPrimary Kind = iota
	// KindFallback means the built-in bitmap face is in use.
	KindFallback
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindFallback:
		return "fallback"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// FallbackName is the family name reported for the built-in face.
const FallbackName = "basicfont 7x13"

// fallbackFace is the built-in face used when the primary font is unusable.
// It has a fixed pixel size.
var fallbackFace = basicfont.Face7x13

// Resolution is the outcome of resolving a font for one rendering call.
type Resolution struct {
	// Kind is KindPrimary or KindFallback.
	Kind Kind

	// Face is the face to measure and draw with. Never nil.
	Face font.Face

	// Name is the family name of the face in use.
	Name string

	// Path is the font path that was tried.
	Path string

	// Err is why the primary font was not used. Nil for KindPrimary.
	Err error

	source *FontSource
}

// Resolve loads the font at path at the given size in points.
// Any failure to read, parse or instantiate it yields the built-in fallback
// face; Resolve itself never fails.
func Resolve(path string, size float64) *Resolution {
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		return fallback(path, err)
	}
	face, err := src.Face(size)
	if err != nil {
		return fallback(path, err)
	}
	return &Resolution{
		Kind:   KindPrimary,
		Face:   face,
		Name:   src.Name(),
		Path:   path,
		source: src,
	}
}

func fallback(path string, err error) *Resolution {
	return &Resolution{
		Kind: KindFallback,
		Face: fallbackFace,
		Name: FallbackName,
		Path: path,
		Err:  err,
	}
}

// HasGlyph reports whether the resolved face has its own glyph for r.
func (r *Resolution) HasGlyph(c rune) bool {
	if r.source != nil {
		return r.source.HasGlyph(c)
	}
	for _, rng := range fallbackFace.Ranges {
		if rng.Low <= c && c < rng.High {
			return true
		}
	}
	return false
}

// Missing returns the distinct runes of s that the face has no glyph for,
// in order of first appearance.
func (r *Resolution) Missing(s string) []rune {
	var missing []rune
	seen := make(map[rune]bool)
	for _, c := range s {
		if seen[c] {
			continue
		}
		seen[c] = true
		if !r.HasGlyph(c) {
			missing = append(missing, c)
		}
	}
	return missing
}

// Close releases the face. The shared fallback face is left alone.
func (r *Resolution) Close() error {
	if r.Kind == KindFallback || r.Face == nil {
		return nil
	}
	return r.Face.Close()
}
