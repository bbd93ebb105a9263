// Package normalize hosts the stages that surround the rewriting core
// Canonicalizer runs Unicode normalization (NFKC by default) and optional width folding
// through pooled x/text transformer chains. ControlStripper removes control characters
// once locale substitutions ran and before whitespace is collapsed
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"txdc/internal/core/rewrite"
	"txdc/internal/core/textbuf"
	perr "txdc/internal/platform/errors"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Form selects the Unicode normalization form
type Form uint8

const (
	// FormNone leaves text as is
	FormNone Form = iota
	// FormNFC is canonical composition
	FormNFC
	// FormNFD is canonical decomposition
	FormNFD
	// FormNFKC is compatibility composition, folds ligatures such as ﬃ
	FormNFKC
	// FormNFKD is compatibility decomposition
	FormNFKD
)

var formNames = map[Form]string{
	FormNone: "none",
	FormNFC:  "nfc",
	FormNFD:  "nfd",
	FormNFKC: "nfkc",
	FormNFKD: "nfkd",
}

func (f Form) String() string {
	if s, ok := formNames[f]; ok {
		return s
	}
	return "unknown"
}

// ParseForm parses a form name, case insensitive; empty means none
func ParseForm(s string) (Form, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormNone, nil
	}
	for f, name := range formNames {
		if name == s {
			return f, nil
		}
	}
	return FormNone, perr.InvalidArgf("unknown normalization form %q (want none, nfc, nfd, nfkc or nfkd)", s)
}

func (f Form) transformer() transform.Transformer {
	switch f {
	case FormNFC:
		return norm.NFC
	case FormNFD:
		return norm.NFD
	case FormNFKC:
		return norm.NFKC
	case FormNFKD:
		return norm.NFKD
	default:
		return nil
	}
}

// Canonicalizer is concurrency safe; each call borrows a chain from its pool
type Canonicalizer struct {
	form      Form
	foldWidth bool
	pool      *sync.Pool
}

// NewCanonicalizer builds a canonicalizer for form, optionally folding fullwidth forms
func NewCanonicalizer(form Form, foldWidth bool) *Canonicalizer {
	var steps []transform.Transformer
	if t := form.transformer(); t != nil {
		steps = append(steps, t)
	}
	if foldWidth {
		steps = append(steps, width.Fold)
	}
	c := &Canonicalizer{form: form, foldWidth: foldWidth}
	if len(steps) > 0 {
		c.pool = &sync.Pool{
			New: func() any { return transform.Chain(steps...) },
		}
	}
	return c
}

// Form returns the configured form
func (c *Canonicalizer) Form() Form { return c.form }

// Kind implements rewrite.Kinded
func (c *Canonicalizer) Kind() rewrite.Kind { return rewrite.KindNormalize }

// Transform rewrites b into the configured form
func (c *Canonicalizer) Transform(b *textbuf.Buffer) {
	if c.pool == nil || b.Len() == 0 {
		return
	}
	s := b.String()

	// fast path for text already in the requested form
	if !c.foldWidth {
		if f := c.form.transformer(); f != nil && f.(norm.Form).IsNormalString(s) {
			return
		}
	}

	tr := c.pool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	c.pool.Put(tr)
	if err != nil {
		// norm and width never fail on valid UTF-8, keep the input untouched if they do
		return
	}
	b.Reset(ns)
}

// ControlStripper removes Unicode control characters (category Cc)
// With KeepWhitespace set, control characters that are whitespace (\t, \n, \r, ...)
// are kept so the whitespace stage can turn them into spaces
type ControlStripper struct {
	KeepWhitespace bool
}

// Kind implements rewrite.Kinded
func (ControlStripper) Kind() rewrite.Kind { return rewrite.KindClean }

// Transform drops control runes in place
func (s ControlStripper) Transform(b *textbuf.Buffer) {
	b.Retain(func(r rune) bool {
		if !unicode.Is(unicode.Cc, r) {
			return true
		}
		return s.KeepWhitespace && unicode.IsSpace(r)
	})
}

var (
	_ rewrite.Transformer[textbuf.Buffer] = (*Canonicalizer)(nil)
	_ rewrite.Transformer[textbuf.Buffer] = ControlStripper{}
)
