package domain

import (
	"fmt"
	"strings"
)

// AlphabetSize is the radix of every wheel residue and symbol value.
const AlphabetSize = 26

// Symbol is a letter index in 0..25, or Unknown for an underived position.
type Symbol int8

// Unknown marks a position whose plaintext the wheel bank does not determine.
const Unknown Symbol = -1

// Known reports whether s holds a real letter.
func (s Symbol) Known() bool { return s >= 0 && s < AlphabetSize }

// Rune renders s as an upper-case letter, or '?' when unknown.
func (s Symbol) Rune() rune {
	if !s.Known() {
		return '?'
	}
	return rune('A' + s)
}

// ParseText converts an upper- or lower-case letter string into symbols.
// Whitespace is skipped; any other rune is rejected.
func ParseText(text string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(text))
	for i, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, Symbol(r-'A'))
		case r >= 'a' && r <= 'z':
			out = append(out, Symbol(r-'a'))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			// skip
		default:
			return nil, fmt.Errorf("position %d: %q is not a letter", i, r)
		}
	}
	return out, nil
}

// TextString renders symbols as letters, with '?' for unknowns.
func TextString(symbols []Symbol) string {
	var b strings.Builder
	b.Grow(len(symbols))
	for _, s := range symbols {
		b.WriteRune(s.Rune())
	}
	return b.String()
}
