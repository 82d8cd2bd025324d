package text

import "golang.org/x/text/unicode/norm"

// Normalize returns s in Unicode NFC, so a base letter and combining mark
// are looked up as one precomposed glyph where the font has it.
func Normalize(s string) string {
	return norm.NFC.String(s)
}
