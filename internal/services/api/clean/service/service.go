// Package service contains the text cleaning workflows
package service

import (
	"context"
	"sync"

	"txdc/internal/core/langhint"
	"txdc/internal/core/normalize"
	"txdc/internal/core/pipeline"
	"txdc/internal/core/rewrite"
	"txdc/internal/core/typography"
	"txdc/internal/core/whitespace"
	"txdc/internal/platform/logger"
	pstrings "txdc/internal/platform/strings"
	"txdc/internal/services/api/clean/domain"

	"github.com/rivo/uniseg"
	"golang.org/x/text/language"
)

// Service defines the service contract for text cleaning
type Service interface{ domain.ServicePort }

// Defaults are applied when a request leaves a switch unset
type Defaults struct {
	Locale                 string
	Form                   normalize.Form
	FoldWidth              bool
	KeepWhitespaceControls bool
}

// Svc implements the Service interface
type Svc struct {
	reg  *typography.Registry
	def  Defaults
	pipe sync.Map // pipeline.Options -> *pipeline.Pipeline
}

// New creates a clean service over the given profile registry
func New(reg *typography.Registry, def Defaults) *Svc {
	if reg == nil {
		panic("clean.Service requires a non nil profile registry")
	}
	def.Locale = pstrings.OrDefault(def.Locale, "fr")
	return &Svc{reg: reg, def: def}
}

// Trim strips leading and trailing whitespace only
func (s *Svc) Trim(_ context.Context, in domain.TrimInput) (domain.TextOutput, error) {
	return domain.TextOutput{Text: rewrite.String(whitespace.Trimmer{}, in.Text)}, nil
}

// Clean runs the driver pipeline for the requested locale and switches
func (s *Svc) Clean(ctx context.Context, in domain.CleanInput) (domain.CleanOutput, error) {
	hint := langhint.Detect(in.Text)
	locale := pstrings.OrDefault(in.Locale, s.def.Locale)
	if locale == "auto" {
		locale = s.guess(hint)
	}
	profile, err := s.reg.Lookup(locale)
	if err != nil {
		return domain.CleanOutput{}, err
	}
	form := s.def.Form
	if in.Form != "" {
		if form, err = normalize.ParseForm(in.Form); err != nil {
			return domain.CleanOutput{}, err
		}
	}

	p := s.pipeline(pipeline.Options{
		Form:                   form,
		FoldWidth:              or(in.FoldWidth, s.def.FoldWidth),
		Profile:                profile,
		StripControl:           or(in.StripControl, true),
		KeepWhitespaceControls: or(in.KeepWhitespaceControls, s.def.KeepWhitespaceControls),
		Typography:             or(in.Typography, true),
		Whitespace:             or(in.Whitespace, true),
	})
	out := p.String(in.Text)

	logger.C(logger.WithLocale(ctx, profile.Tag().String())).Debug().
		Str("profile", profile.Name()).
		Str("script", hint.Script).
		Strs("stages", p.Stages()).
		Int("in_bytes", len(in.Text)).
		Int("out_bytes", len(out)).
		Msg("text cleaned")

	return domain.CleanOutput{
		Text:      out,
		Graphemes: uniseg.GraphemeClusterCount(out),
		Script:    hint.Script,
		Locale:    profile.Tag().String(),
		Form:      form.String(),
		Stages:    p.Stages(),
	}, nil
}

// Typography applies a locale profile: substitutions, punctuation spacing and trim
func (s *Svc) Typography(_ context.Context, in domain.TypographyInput) (domain.TextOutput, error) {
	profile, err := s.reg.Lookup(pstrings.OrDefault(in.Locale, s.def.Locale))
	if err != nil {
		return domain.TextOutput{}, err
	}
	return domain.TextOutput{Text: rewrite.String(profile, in.Text)}, nil
}

// Profiles lists the registered typography profiles
func (s *Svc) Profiles(_ context.Context) ([]domain.Profile, error) {
	ps := s.reg.Profiles()
	out := make([]domain.Profile, 0, len(ps))
	for _, p := range ps {
		out = append(out, domain.Profile{
			Name:     p.Name(),
			Locale:   p.Tag().String(),
			Rules:    len(p.Rules()),
			Leading:  pstrings.Runes(p.Leading()),
			Trailing: pstrings.Runes(p.Trailing()),
			Terminal: pstrings.Runes(p.Terminal()),
		})
	}
	return out, nil
}

// guess picks the profile for a detected language, falling back to the default locale
func (s *Svc) guess(h langhint.Hint) string {
	if h.Lang == language.Und {
		return s.def.Locale
	}
	if p, err := s.reg.Lookup(h.Lang.String()); err == nil {
		return p.Name()
	}
	return s.def.Locale
}

// pipeline returns the cached pipeline for o, building it on first use
func (s *Svc) pipeline(o pipeline.Options) *pipeline.Pipeline {
	if v, ok := s.pipe.Load(o); ok {
		return v.(*pipeline.Pipeline)
	}
	v, _ := s.pipe.LoadOrStore(o, pipeline.New(o))
	return v.(*pipeline.Pipeline)
}

func or(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
