// Package typography composes substitution and insertion rules into locale profiles
//
// A profile runs, in this order: its substitution rules, a prepend-if-different
// space before every leading-space rune, a conditional space after every
// trailing-space rune, and a final trim of both edges. Insertion only fixes the
// rightmost occurrence of each rune per call
package typography

import (
	"unicode"

	"txdc/internal/core/insert"
	"txdc/internal/core/rewrite"
	"txdc/internal/core/substitute"
	"txdc/internal/core/textbuf"
	"txdc/internal/core/whitespace"

	"golang.org/x/text/language"
)

// Profile is an immutable bundle of typography rules for one locale
type Profile struct {
	name     string
	tag      language.Tag
	rules    substitute.RuleSet
	leading  []rune
	trailing []rune
	terminal []rune

	subst *substitute.Engine
	typo  rewrite.Chain[textbuf.Buffer]
}

// Config is the data needed to build a Profile
type Config struct {
	Name          string
	Tag           language.Tag
	Substitutions substitute.RuleSet
	// Leading runes get a space inserted before them
	Leading []rune
	// Trailing runes get a space inserted after them
	Trailing []rune
	// Terminal marks suppress the trailing space when they directly follow
	Terminal []rune
}

// NewProfile builds a profile and precomputes its transform chain
func NewProfile(c Config) *Profile {
	p := &Profile{
		name:     c.Name,
		tag:      c.Tag,
		rules:    append(substitute.RuleSet(nil), c.Substitutions...),
		leading:  append([]rune(nil), c.Leading...),
		trailing: append([]rune(nil), c.Trailing...),
		terminal: append([]rune(nil), c.Terminal...),
	}
	if p.name == "" {
		p.name = p.tag.String()
	}
	p.subst = substitute.New(p.rules)

	afterPunct := spaceUnlessSpaceOr(p.terminal)
	chain := make(rewrite.Chain[textbuf.Buffer], 0, len(p.leading)+len(p.trailing)+1)
	for _, r := range p.leading {
		chain = append(chain, insert.PrependBeforeIfDifferent(r, ' '))
	}
	for _, r := range p.trailing {
		chain = append(chain, insert.AppendAfterIf(r, ' ', afterPunct))
	}
	chain = append(chain, whitespace.Trimmer{})
	p.typo = chain
	return p
}

// spaceUnlessSpaceOr allows a space unless the next rune is whitespace or one of marks
func spaceUnlessSpaceOr(marks []rune) insert.Predicate {
	return insert.PredicateFunc(func(next insert.Neighbor, _, _ rune) bool {
		if !next.OK {
			return true
		}
		if unicode.IsSpace(next.Rune) {
			return false
		}
		for _, m := range marks {
			if next.Rune == m {
				return false
			}
		}
		return true
	})
}

// Name returns the profile name
func (p *Profile) Name() string { return p.name }

// Tag returns the profile language tag
func (p *Profile) Tag() language.Tag { return p.tag }

// Rules returns a copy of the substitution rules
func (p *Profile) Rules() substitute.RuleSet { return append(substitute.RuleSet(nil), p.rules...) }

// Leading returns a copy of the runes that need a space before them
func (p *Profile) Leading() []rune { return append([]rune(nil), p.leading...) }

// Trailing returns a copy of the runes that need a space after them
func (p *Profile) Trailing() []rune { return append([]rune(nil), p.trailing...) }

// Terminal returns a copy of the marks that suppress a trailing space
func (p *Profile) Terminal() []rune { return append([]rune(nil), p.terminal...) }

// Substitutions returns the substitution stage alone
func (p *Profile) Substitutions() rewrite.Transformer[textbuf.Buffer] { return p.subst }

// Typography returns the spacing stage alone: insertions then trim
func (p *Profile) Typography() rewrite.Transformer[textbuf.Buffer] { return p.typo }

// Kind implements rewrite.Kinded
func (p *Profile) Kind() rewrite.Kind { return rewrite.KindNormalize }

// Transform runs substitutions then the spacing stage
func (p *Profile) Transform(b *textbuf.Buffer) {
	p.subst.Transform(b)
	p.typo.Transform(b)
}

var _ rewrite.Transformer[textbuf.Buffer] = (*Profile)(nil)
