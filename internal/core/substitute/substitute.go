// Package substitute rewrites every rune falling in a declared range to a fixed
// replacement string
//
// Rules run in insertion order. Inside a rule the range is walked in ascending rune
// order and, for each value, the buffer is scanned from the end toward the start:
// each hit is replaced and the scan resumes strictly before it, so a replacement
// that contains the matched rune is never matched again by the same value
package substitute

import (
	"fmt"

	"txdc/internal/core/rewrite"
	"txdc/internal/core/textbuf"
)

// Rule maps every rune in [Lo, Hi] to Replacement
// Lo > Hi is an empty range
type Rule struct {
	Lo, Hi      rune
	Replacement string
}

// Char returns a rule for a single rune
func Char(r rune, repl string) Rule { return Rule{Lo: r, Hi: r, Replacement: repl} }

// Range returns a rule for an inclusive rune range
func Range(lo, hi rune, repl string) Rule { return Rule{Lo: lo, Hi: hi, Replacement: repl} }

// Contains reports whether r is inside the rule range
func (r Rule) Contains(c rune) bool { return c >= r.Lo && c <= r.Hi }

func (r Rule) String() string {
	if r.Lo == r.Hi {
		return fmt.Sprintf("%q => %q", r.Lo, r.Replacement)
	}
	return fmt.Sprintf("%q..=%q => %q", r.Lo, r.Hi, r.Replacement)
}

// RuleSet is an ordered list of rules, order is significant
type RuleSet []Rule

// Builder assembles a RuleSet
type Builder struct{ rules RuleSet }

// NewBuilder returns an empty builder
func NewBuilder() *Builder { return &Builder{} }

// Char appends a single rune rule
func (b *Builder) Char(r rune, repl string) *Builder {
	b.rules = append(b.rules, Char(r, repl))
	return b
}

// Chars appends one rule per rune, all sharing repl
func (b *Builder) Chars(repl string, rs ...rune) *Builder {
	for _, r := range rs {
		b.rules = append(b.rules, Char(r, repl))
	}
	return b
}

// Range appends an inclusive range rule
func (b *Builder) Range(lo, hi rune, repl string) *Builder {
	b.rules = append(b.rules, Range(lo, hi, repl))
	return b
}

// Build returns a copy of the accumulated rules
func (b *Builder) Build() RuleSet {
	return append(RuleSet(nil), b.rules...)
}

// Engine applies a RuleSet to buffers
// It holds no per-call state and is safe for concurrent use
type Engine struct {
	rules RuleSet
}

// New returns an engine over a private copy of rules
func New(rules RuleSet) *Engine {
	return &Engine{rules: append(RuleSet(nil), rules...)}
}

// Rules returns a copy of the engine rules
func (e *Engine) Rules() RuleSet { return append(RuleSet(nil), e.rules...) }

// Kind implements rewrite.Kinded
func (e *Engine) Kind() rewrite.Kind { return rewrite.KindClean }

// Transform applies every rule to b
func (e *Engine) Transform(b *textbuf.Buffer) {
	for _, rule := range e.rules {
		applyRule(b, rule)
	}
}

func applyRule(b *textbuf.Buffer, rule Rule) {
	v := rule.Lo
	for v <= rule.Hi {
		// jump straight to the next value that is actually present
		next, ok := b.MinRuneIn(v, rule.Hi)
		if !ok {
			return
		}
		replaceAll(b, next, rule.Replacement)
		if next == rule.Hi {
			return
		}
		v = next + 1
	}
}

// replaceAll replaces every occurrence of r, rightmost first
func replaceAll(b *textbuf.Buffer, r rune, repl string) {
	limit := b.End()
	for {
		p, ok := b.LastIndexRune(r, limit)
		if !ok {
			return
		}
		limit = b.ReplaceRune(p, repl)
	}
}

var _ rewrite.Transformer[textbuf.Buffer] = (*Engine)(nil)
