package insert

import (
	"strings"
	"testing"
	"unicode"

	"txdc/internal/core/rewrite"
	"txdc/internal/core/textbuf"
)

// notNextTo mirrors the caller supplied predicates used by locale profiles
var notNextTo = PredicateFunc(func(n Neighbor, _, insert rune) bool {
	return !n.Is(insert)
})

var notASCIISpace = PredicateFunc(func(n Neighbor, _, _ rune) bool {
	return !n.OK || !(n.Rune < unicode.MaxASCII && unicode.IsSpace(n.Rune))
})

func TestSpec_Table(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		in   string
		out  string
	}{
		// append
		{"append ascii", AppendAfter('b', 'd'), "abc", "abdc"},
		{"append after multibyte target", AppendAfter('œ', 'd'), "abœc", "abœdc"},
		{"append at end", AppendAfter('c', '!'), "abc", "abc!"},
		{"append missing target", AppendAfter('z', '!'), "abc", "abc"},
		{"append empty", AppendAfter('z', '!'), "", ""},

		// append if
		{"append if blocked by same rune", AppendAfterIf(';', ' ', notNextTo), "; ", "; "},
		{"append if blocked mid text", AppendAfterIf(':', ' ', notNextTo), " : ee", " : ee"},
		{"append if at end", AppendAfterIf(';', ' ', notNextTo), ";", "; "},
		{"append if custom predicate", AppendAfterIf(':', ' ', notASCIISpace), ":eee", ": eee"},

		// append if different
		{"append if different inserts", AppendAfterIfDifferent(';', ' '), ";", "; "},
		{"append if different keeps", AppendAfterIfDifferent(';', ' '), "; ", "; "},
		{"append if different keeps before text", AppendAfterIfDifferent(';', ' '), "; e", "; e"},
		{"append if different keeps spaced colon", AppendAfterIfDifferent(':', ' '), " : eee", " : eee"},

		// prepend
		{"prepend ascii", PrependBefore('b', 'd'), "abc", "adbc"},
		{"prepend before multibyte target", PrependBefore('œ', 'd'), "abœc", "abdœc"},
		{"prepend at start", PrependBefore('a', '¡'), "abc", "¡abc"},

		// prepend if
		{"prepend if blocked", PrependBeforeIf(';', ' ', notNextTo), " ;", " ;"},
		{"prepend if multibyte neighbour equal", PrependBeforeIf(';', 'œ', notNextTo), "œ;", "œ;"},
		{"prepend if multibyte target and insert", PrependBeforeIf('œ', 'œ', notNextTo), "lorœm", "lorœœm"},
		{"prepend if at start", PrependBeforeIf(';', ' ', notNextTo), ";", " ;"},

		// prepend if different
		{"prepend if different at start", PrependBeforeIfDifferent(';', ' '), ";", " ;"},
		{"prepend if different after word", PrependBeforeIfDifferent(';', ' '), "lorem;", "lorem ;"},
		{"prepend if different keeps", PrependBeforeIfDifferent(';', ' '), " ;", " ;"},
		{"prepend if different already spaced", PrependBeforeIfDifferent(';', ' '), " ; ", " ; "},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := rewrite.String(tc.spec, tc.in)
			if got != tc.out {
				t.Fatalf("%s on %q = %q, want %q", tc.spec.Side, tc.in, got, tc.out)
			}
		})
	}
}

func TestSpec_RightmostOnly(t *testing.T) {
	for k := 1; k <= 5; k++ {
		in := strings.Repeat("a;", k)
		want := strings.Repeat("a;", k-1) + "a; "
		if got := rewrite.String(AppendAfter(';', ' '), in); got != want {
			t.Fatalf("k=%d append = %q, want %q", k, got, want)
		}
		want = strings.Repeat("a;", k-1) + "a ;"
		if got := rewrite.String(PrependBefore(';', ' '), in); got != want {
			t.Fatalf("k=%d prepend = %q, want %q", k, got, want)
		}
	}
}

func TestSpec_PredicateSeesNeighbor(t *testing.T) {
	var got []Neighbor
	spy := PredicateFunc(func(n Neighbor, target, insert rune) bool {
		if target != 'é' || insert != '|' {
			t.Fatalf("predicate got target %q insert %q", target, insert)
		}
		got = append(got, n)
		return false
	})

	b := textbuf.New("xéœ")
	AppendAfterIf('é', '|', spy).Transform(b)
	PrependBeforeIf('é', '|', spy).Transform(b)

	e := textbuf.New("é")
	AppendAfterIf('é', '|', spy).Transform(e)
	PrependBeforeIf('é', '|', spy).Transform(e)

	want := []Neighbor{Some('œ'), Some('x'), None, None}
	if len(got) != len(want) {
		t.Fatalf("predicate calls = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d neighbor = %+v, want %+v", i, got[i], want[i])
		}
	}
	if b.String() != "xéœ" || e.String() != "é" {
		t.Fatalf("rejected predicate must not mutate: %q %q", b.String(), e.String())
	}
}

func TestSpec_ApplyReportsChange(t *testing.T) {
	b := textbuf.New("a;")
	if !AppendAfterIfDifferent(';', ' ').Apply(b) {
		t.Fatalf("first apply should change the buffer")
	}
	if AppendAfterIfDifferent(';', ' ').Apply(b) {
		t.Fatalf("second apply should be a no-op")
	}
	if Always.Allow(None, 'a', 'b') != true {
		t.Fatalf("Always must allow")
	}
}
