// Package pipeline wires the rewriting stages into the driver order:
// canonicalize, locale substitutions, control stripping, typography, whitespace
package pipeline

import (
	"txdc/internal/core/normalize"
	"txdc/internal/core/rewrite"
	"txdc/internal/core/textbuf"
	"txdc/internal/core/typography"
	"txdc/internal/core/whitespace"
)

// Options selects the stages of a Pipeline
// The zero value builds an identity pipeline
type Options struct {
	// Form is the Unicode normalization applied first
	Form normalize.Form
	// FoldWidth folds fullwidth and halfwidth forms during canonicalization
	FoldWidth bool
	// Profile supplies substitutions and, with Typography, punctuation spacing
	Profile *typography.Profile
	// StripControl removes control characters after substitutions
	StripControl bool
	// KeepWhitespaceControls keeps \t, \n and friends when stripping controls
	KeepWhitespaceControls bool
	// Typography runs the profile spacing rules; ignored without a Profile
	Typography bool
	// Whitespace runs the full whitespace normalizer last
	Whitespace bool
}

type stage struct {
	name string
	t    rewrite.Transformer[textbuf.Buffer]
}

// Pipeline is immutable and safe for concurrent use on distinct buffers
type Pipeline struct {
	opts   Options
	stages []stage
}

// New builds a pipeline from o
func New(o Options) *Pipeline {
	p := &Pipeline{opts: o}
	if o.Form != normalize.FormNone || o.FoldWidth {
		name := "canonicalize:" + o.Form.String()
		if o.FoldWidth {
			name += "+width"
		}
		p.add(name, normalize.NewCanonicalizer(o.Form, o.FoldWidth))
	}
	if o.Profile != nil {
		p.add("substitute:"+o.Profile.Name(), o.Profile.Substitutions())
	}
	if o.StripControl {
		p.add("strip-control", normalize.ControlStripper{KeepWhitespace: o.KeepWhitespaceControls})
	}
	if o.Profile != nil && o.Typography {
		p.add("typography:"+o.Profile.Name(), o.Profile.Typography())
	}
	if o.Whitespace {
		p.add("whitespace", whitespace.Normalizer{})
	}
	return p
}

// Default is NFKC, the profile substitutions and typography, control stripping and whitespace
func Default(profile *typography.Profile) *Pipeline {
	return New(Options{
		Form:         normalize.FormNFKC,
		Profile:      profile,
		StripControl: true,
		Typography:   true,
		Whitespace:   true,
	})
}

func (p *Pipeline) add(name string, t rewrite.Transformer[textbuf.Buffer]) {
	p.stages = append(p.stages, stage{name: name, t: t})
}

// Options returns the options the pipeline was built with
func (p *Pipeline) Options() Options { return p.opts }

// Profile returns the locale profile, nil when none is set
func (p *Pipeline) Profile() *typography.Profile { return p.opts.Profile }

// Stages lists stage names in execution order
func (p *Pipeline) Stages() []string {
	out := make([]string, len(p.stages))
	for i, s := range p.stages {
		out[i] = s.name
	}
	return out
}

// Kind implements rewrite.Kinded
func (p *Pipeline) Kind() rewrite.Kind { return rewrite.KindNormalize }

// Transform runs every stage on b
func (p *Pipeline) Transform(b *textbuf.Buffer) {
	for _, s := range p.stages {
		s.t.Transform(b)
	}
}

// String runs the pipeline over s
func (p *Pipeline) String(s string) string { return rewrite.String(p, s) }

var _ rewrite.Transformer[textbuf.Buffer] = (*Pipeline)(nil)
