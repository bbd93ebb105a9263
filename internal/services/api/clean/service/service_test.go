package service

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"txdc/internal/core/normalize"
	"txdc/internal/core/typography"
	perr "txdc/internal/platform/errors"
	kit "txdc/internal/platform/testkit"
	"txdc/internal/services/api/clean/domain"

	"golang.org/x/text/language"
)

func newSvc() *Svc {
	return New(typography.Builtin(), Defaults{Form: normalize.FormNFKC})
}

func ptr(b bool) *bool { return &b }

func TestNew_NilRegistryPanics(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, Defaults{}) })
}

func TestTrim(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  bonjour \t\n", "bonjour"},
		{"  a  b  ", "a  b"},
		{"", ""},
	}
	for _, c := range cases {
		got, err := newSvc().Trim(context.Background(), domain.TrimInput{Text: c.in})
		if err != nil || got.Text != c.want {
			t.Fatalf("Trim(%q) = %q, %v; want %q", c.in, got.Text, err, c.want)
		}
	}
}

func TestClean(t *testing.T) {
	cases := []struct {
		name   string
		in     domain.CleanInput
		text   string
		form   string
		stages []string
	}{
		{
			name:   "defaults",
			in:     domain.CleanInput{Text: "  “Bonjour” ,  l’œuvre ﬁnale  "},
			text:   "\"Bonjour\" , l'oeuvre finale",
			form:   "nfkc",
			stages: []string{"canonicalize:nfkc", "substitute:french", "strip-control", "typography:french", "whitespace"},
		},
		{
			name:   "regional tag resolves to french",
			in:     domain.CleanInput{Text: "voici:la suite", Locale: "fr-CA"},
			text:   "voici : la suite",
			form:   "nfkc",
			stages: []string{"canonicalize:nfkc", "substitute:french", "strip-control", "typography:french", "whitespace"},
		},
		{
			name:   "switches off",
			in:     domain.CleanInput{Text: " a ﬁ:b ", Form: "none", StripControl: ptr(false), Typography: ptr(false), Whitespace: ptr(false)},
			text:   " a ﬁ:b ",
			form:   "none",
			stages: []string{"substitute:french"},
		},
		{
			name:   "keep whitespace controls",
			in:     domain.CleanInput{Text: "a\tb\x00c", Form: "nfc", KeepWhitespaceControls: ptr(true), Typography: ptr(false)},
			text:   "a bc",
			form:   "nfc",
			stages: []string{"canonicalize:nfc", "substitute:french", "strip-control", "whitespace"},
		},
		{
			name:   "width folding",
			in:     domain.CleanInput{Text: "ＡＢ", Form: "nfc", FoldWidth: ptr(true)},
			text:   "AB",
			form:   "nfc",
			stages: []string{"canonicalize:nfc+width", "substitute:french", "strip-control", "typography:french", "whitespace"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := newSvc().Clean(context.Background(), c.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			kit.MustEqualText(t, "text", got.Text, c.text)
			if got.Locale != "fr" || got.Form != c.form {
				t.Fatalf("locale=%q form=%q, want fr %q", got.Locale, got.Form, c.form)
			}
			if !reflect.DeepEqual(got.Stages, c.stages) {
				t.Fatalf("stages = %v, want %v", got.Stages, c.stages)
			}
		})
	}
}

func TestClean_Graphemes(t *testing.T) {
	cases := []struct {
		form  string
		text  string
		bytes int
	}{
		{"nfd", "cafe\u0301", 6},
		{"nfc", "caf\u00e9", 5},
	}
	for _, c := range cases {
		got, err := newSvc().Clean(context.Background(), domain.CleanInput{Text: "caf\u00e9", Form: c.form})
		if err != nil {
			t.Fatal(err)
		}
		if got.Text != c.text || len(got.Text) != c.bytes || got.Graphemes != 4 {
			t.Fatalf("%s: text=%q graphemes=%d", c.form, got.Text, got.Graphemes)
		}
	}
}

func TestClean_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   domain.CleanInput
		code perr.ErrorCode
	}{
		{"unknown locale", domain.CleanInput{Text: "x", Locale: "ja"}, perr.ErrorCodeNotFound},
		{"bad locale", domain.CleanInput{Text: "x", Locale: "!!"}, perr.ErrorCodeInvalidArgument},
		{"bad form", domain.CleanInput{Text: "x", Form: "nfx"}, perr.ErrorCodeInvalidArgument},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := newSvc().Clean(context.Background(), c.in)
			if perr.CodeOf(err) != c.code {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), c.code, err)
			}
		})
	}
}

func TestClean_AutoLocale(t *testing.T) {
	reg := typography.Builtin()
	reg.Register(typography.NewProfile(typography.Config{Name: "greek", Tag: language.Greek}))
	s := New(reg, Defaults{})
	greek := strings.Repeat("αβγδ ", 6)

	cases := []struct {
		name, text, locale, script string
	}{
		{"latin falls back to default", "voici la suite", "fr", "Latin"},
		{"greek finds its profile", greek, "el", "Greek"},
		{"one greek letter in french text", "La surface du cercle vaut pi fois r au carré, soit π r² pour tous", "fr", "Latin"},
		{"short greek keeps the default", "αβγ", "fr", "Greek"},
		{"no letters", "123 !", "fr", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := s.Clean(context.Background(), domain.CleanInput{Text: c.text, Locale: "auto"})
			if err != nil {
				t.Fatal(err)
			}
			if got.Locale != c.locale || got.Script != c.script {
				t.Fatalf("locale=%q script=%q, want %q %q", got.Locale, got.Script, c.locale, c.script)
			}
		})
	}
}

func TestClean_ReusesPipelines(t *testing.T) {
	s := newSvc()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := s.Clean(ctx, domain.CleanInput{Text: "a"}); err != nil {
			t.Fatal(err)
		}
	}
	n := 0
	s.pipe.Range(func(_, _ any) bool { n++; return true })
	if n != 1 {
		t.Fatalf("expected one cached pipeline, got %d", n)
	}
}

func TestTypography(t *testing.T) {
	got, err := newSvc().Typography(context.Background(), domain.TypographyInput{Text: " l’œuvre:fin "})
	if err != nil {
		t.Fatal(err)
	}
	kit.MustEqualText(t, "typography", got.Text, "l'oeuvre : fin")

	if _, err := newSvc().Typography(context.Background(), domain.TypographyInput{Text: "x", Locale: "de"}); perr.CodeOf(err) != perr.ErrorCodeNotFound {
		t.Fatalf("expected not found for de, got %v", err)
	}
}

func TestProfiles(t *testing.T) {
	got, err := newSvc().Profiles(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := []domain.Profile{{
		Name:     "french",
		Locale:   "fr",
		Rules:    len(typography.FrenchRules()),
		Leading:  []string{"»", "(", ":", ";", "!", "?", "«"},
		Trailing: []string{".", "«", ",", ")", ":", ";"},
		Terminal: []string{"."},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Profiles() = %+v, want %+v", got, want)
	}
}
