package substitute

import (
	"strings"
	"testing"

	"txdc/internal/core/rewrite"
)

func TestBuilder_Order(t *testing.T) {
	got := NewBuilder().
		Char('à', "a").
		Range('a', 'z', "").
		Chars("'", '`', '’').
		Build()

	want := RuleSet{
		{Lo: 'à', Hi: 'à', Replacement: "a"},
		{Lo: 'a', Hi: 'z', Replacement: ""},
		{Lo: '`', Hi: '`', Replacement: "'"},
		{Lo: '’', Hi: '’', Replacement: "'"},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rule %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEngine_Table(t *testing.T) {
	tests := []struct {
		name  string
		rules RuleSet
		in    string
		out   string
	}{
		{
			name:  "ligatures",
			rules: RuleSet{Char('œ', "oe"), Char('æ', "ae")},
			in:    "æ œ",
			out:   "ae oe",
		},
		{
			name:  "every occurrence",
			rules: RuleSet{Char('œ', "oe")},
			in:    "œuf, cœur, sœur",
			out:   "oeuf, coeur, soeur",
		},
		{
			name:  "replacement containing the match is not rescanned",
			rules: RuleSet{Char('a', "aa")},
			in:    "aba",
			out:   "aabaa",
		},
		{
			name:  "range to empty",
			rules: RuleSet{Range('0', '9', "")},
			in:    "r2d2 c3po",
			out:   "rd cpo",
		},
		{
			name:  "multi rune replacement with multibyte neighbours",
			rules: RuleSet{Char('«', "\""), Char('»', "\"")},
			in:    "«été»",
			out:   "\"été\"",
		},
		{
			name:  "earlier rule wins on overlap",
			rules: RuleSet{Char('a', "x"), Range('a', 'c', "y")},
			in:    "abc",
			out:   "xyy",
		},
		{
			name:  "later rule sees text produced by an earlier one",
			rules: RuleSet{Char('a', "b"), Char('b', "c")},
			in:    "a",
			out:   "c",
		},
		{
			name:  "higher value introduced inside a range is processed later in the walk",
			rules: RuleSet{Range('a', 'c', "c")},
			in:    "ab",
			out:   "cc",
		},
		{
			name:  "lower value introduced inside a range is left alone",
			rules: RuleSet{Range('b', 'c', "b")},
			in:    "c",
			out:   "b",
		},
		{
			name:  "empty range is a no-op",
			rules: RuleSet{Range('z', 'a', "")},
			in:    "abc",
			out:   "abc",
		},
		{
			name:  "no matches",
			rules: RuleSet{Char('ß', "ss")},
			in:    "strasse",
			out:   "strasse",
		},
		{
			name:  "empty input",
			rules: RuleSet{Range(0, 0x10FFFF, "x")},
			in:    "",
			out:   "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := rewrite.String(New(tc.rules), tc.in)
			if got != tc.out {
				t.Fatalf("substitute(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestEngine_CopiesRules(t *testing.T) {
	rules := RuleSet{Char('a', "b")}
	e := New(rules)
	rules[0] = Char('a', "z")
	if got := rewrite.String(e, "a"); got != "b" {
		t.Fatalf("engine shares caller slice: got %q", got)
	}
	if e.Kind() != rewrite.KindClean {
		t.Fatalf("engine kind = %v", e.Kind())
	}
}

func TestRule_String(t *testing.T) {
	if s := Char('œ', "oe").String(); !strings.Contains(s, "œ") || !strings.Contains(s, "oe") {
		t.Fatalf("Char rule String = %q", s)
	}
	if s := Range('a', 'z', "").String(); !strings.Contains(s, "..=") {
		t.Fatalf("Range rule String = %q", s)
	}
}

// Disjoint ranges leave none of their runes behind as long as no replacement
// reintroduces one
func FuzzEngine_Completeness(f *testing.F) {
	for _, seed := range []string{"", "æ œ", "Œuvre ÆON œœœ", "«»“”", "aæœb"} {
		f.Add(seed)
	}
	rules := RuleSet{Char('œ', "oe"), Char('Œ', "OE"), Range('æ', 'æ', "ae"), Range('«', '«', "\""), Range('“', '”', "\"")}
	e := New(rules)
	f.Fuzz(func(t *testing.T, in string) {
		got := rewrite.String(e, in)
		for _, r := range got {
			for _, rule := range rules {
				if rule.Contains(r) {
					t.Fatalf("substitute(%q) = %q still contains %q", in, got, r)
				}
			}
		}
	})
}
