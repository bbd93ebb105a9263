// Package whitespace normalizes heterogeneous whitespace
//
// The suite uses two classifications:
// SpaceNormalizer and Trimmer use the Unicode White_Space property while
// ConsecutiveRemover only collapses ASCII whitespace (space, \t, \n, \f, \r).
// A non-ASCII space that was not normalized first survives the collapse stage
package whitespace

import (
	"unicode"

	"txdc/internal/core/rewrite"
	"txdc/internal/core/textbuf"
)

// IsSpace reports Unicode whitespace
func IsSpace(r rune) bool { return unicode.IsSpace(r) }

// IsASCIISpace reports ASCII whitespace: space, \t, \n, \f and \r (not \v)
func IsASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// SpaceNormalizer replaces every whitespace rune with U+0020
type SpaceNormalizer struct{}

// Kind implements rewrite.Kinded
func (SpaceNormalizer) Kind() rewrite.Kind { return rewrite.KindNormalize }

// Transform scans from the end and rewrites each whitespace rune
func (SpaceNormalizer) Transform(b *textbuf.Buffer) {
	limit := b.End()
	for {
		p, ok := b.LastIndexFunc(IsSpace, limit)
		if !ok {
			return
		}
		if r, _, _ := b.RuneAt(p); r != ' ' {
			b.ReplaceRune(p, " ")
		}
		limit = p
	}
}

// ConsecutiveRemover drops an ASCII whitespace rune that directly follows another one
type ConsecutiveRemover struct{}

// Kind implements rewrite.Kinded
func (ConsecutiveRemover) Kind() rewrite.Kind { return rewrite.KindClean }

// Transform keeps the first rune of every ASCII whitespace run
func (ConsecutiveRemover) Transform(b *textbuf.Buffer) {
	var (
		prev    rune
		hasPrev bool
	)
	b.Retain(func(r rune) bool {
		keep := !(hasPrev && IsASCIISpace(prev) && IsASCIISpace(r))
		prev, hasPrev = r, true
		return keep
	})
}

// Trimmer removes trailing then leading whitespace
type Trimmer struct{}

// Kind implements rewrite.Kinded
func (Trimmer) Kind() rewrite.Kind { return rewrite.KindClean }

// Transform trims both edges
func (Trimmer) Transform(b *textbuf.Buffer) {
	b.TrimRightFunc(IsSpace)
	b.TrimLeftFunc(IsSpace)
}

// Normalizer canonicalizes, collapses and trims whitespace in that order
// The collapse stage only sees ASCII spaces once SpaceNormalizer ran
type Normalizer struct{}

// Kind implements rewrite.Kinded
func (Normalizer) Kind() rewrite.Kind { return rewrite.KindClean }

// Transform runs the three stages
func (Normalizer) Transform(b *textbuf.Buffer) {
	SpaceNormalizer{}.Transform(b)
	ConsecutiveRemover{}.Transform(b)
	Trimmer{}.Transform(b)
}

var (
	_ rewrite.Transformer[textbuf.Buffer] = SpaceNormalizer{}
	_ rewrite.Transformer[textbuf.Buffer] = ConsecutiveRemover{}
	_ rewrite.Transformer[textbuf.Buffer] = Trimmer{}
	_ rewrite.Transformer[textbuf.Buffer] = Normalizer{}
)
