package typography

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"txdc/internal/core/substitute"
	perr "txdc/internal/platform/errors"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// fileProfile is the on-disk shape of a profile, YAML or JSON
//
//	name: french-strict
//	locale: fr
//	substitutions:
//	  - {from: "œ", to: "oe"}
//	  - {from: "0", through: "9", to: ""}
//	leading_space: "»(:;!?«"
//	trailing_space: ".«,):;"
//	terminal: "."
type fileProfile struct {
	Name          string     `yaml:"name"`
	Locale        string     `yaml:"locale"`
	Substitutions []fileRule `yaml:"substitutions"`
	LeadingSpace  string     `yaml:"leading_space"`
	TrailingSpace string     `yaml:"trailing_space"`
	Terminal      string     `yaml:"terminal"`
}

type fileRule struct {
	From    string `yaml:"from"`
	Through string `yaml:"through"`
	To      string `yaml:"to"`
}

// Decode parses a YAML or JSON profile document
func Decode(data []byte) (*Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fp fileProfile
	if err := dec.Decode(&fp); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, perr.InvalidArgf("empty profile document")
		}
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "invalid profile document")
	}

	if strings.TrimSpace(fp.Locale) == "" {
		return nil, perr.WithField(perr.InvalidArgf("profile locale is required"), "locale")
	}
	tag, err := language.Parse(fp.Locale)
	if err != nil {
		return nil, perr.WithField(perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "invalid locale %q", fp.Locale), "locale")
	}

	rules := make(substitute.RuleSet, 0, len(fp.Substitutions))
	for i, fr := range fp.Substitutions {
		lo, ok := singleRune(fr.From)
		if !ok {
			return nil, perr.WithField(perr.InvalidArgf("substitution %d: from must be exactly one character, got %q", i, fr.From), "substitutions")
		}
		hi := lo
		if fr.Through != "" {
			if hi, ok = singleRune(fr.Through); !ok {
				return nil, perr.WithField(perr.InvalidArgf("substitution %d: through must be exactly one character, got %q", i, fr.Through), "substitutions")
			}
			if hi < lo {
				return nil, perr.WithField(perr.InvalidArgf("substitution %d: range %q..%q is reversed", i, lo, hi), "substitutions")
			}
		}
		rules = append(rules, substitute.Range(lo, hi, fr.To))
	}

	return NewProfile(Config{
		Name:          strings.TrimSpace(fp.Name),
		Tag:           tag,
		Substitutions: rules,
		Leading:       []rune(fp.LeadingSpace),
		Trailing:      []rune(fp.TrailingSpace),
		Terminal:      []rune(fp.Terminal),
	}), nil
}

// LoadFile decodes the profile stored at path
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "read profile %s", path)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, perr.Wrapf(err, perr.CodeOf(err), "profile %s", path)
	}
	return p, nil
}

// LoadDir registers every *.yaml, *.yml and *.json profile found in dir
// Files are loaded in name order; the first failure stops the walk
func LoadDir(reg *Registry, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "read profile dir %s", dir)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var loaded []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		p, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return loaded, err
		}
		reg.Register(p)
		loaded = append(loaded, p.Name())
	}
	return loaded, nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
