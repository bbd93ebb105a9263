// Package insert adds a single rune next to the rightmost occurrence of a target rune,
// optionally gated by a predicate over the neighbouring rune
//
// Every call touches at most one location: the last occurrence of the target in the
// whole buffer. Callers that want every occurrence handled loop themselves
package insert

import (
	"txdc/internal/core/rewrite"
	"txdc/internal/core/textbuf"
)

// Side selects where the rune is inserted relative to the target
type Side uint8

const (
	// After inserts right after the target and inspects the following rune
	After Side = iota
	// Before inserts right before the target and inspects the preceding rune
	Before
)

func (s Side) String() string {
	if s == Before {
		return "before"
	}
	return "after"
}

// Neighbor is the rune adjacent to a found target, absent at the buffer edge
type Neighbor struct {
	Rune rune
	OK   bool
}

// None is the neighbor of a target sitting at the buffer edge
var None = Neighbor{}

// Some wraps a present neighbor rune
func Some(r rune) Neighbor { return Neighbor{Rune: r, OK: true} }

// Is reports whether the neighbor is present and equal to r
func (n Neighbor) Is(r rune) bool { return n.OK && n.Rune == r }

// Predicate decides whether to insert
type Predicate interface {
	Allow(neighbor Neighbor, target, insert rune) bool
}

// PredicateFunc adapts a function to Predicate
type PredicateFunc func(neighbor Neighbor, target, insert rune) bool

// Allow calls f
func (f PredicateFunc) Allow(neighbor Neighbor, target, insert rune) bool {
	return f(neighbor, target, insert)
}

// Always allows every insertion
var Always Predicate = PredicateFunc(func(Neighbor, rune, rune) bool { return true })

// IfDifferent allows the insertion unless the neighbor already equals the inserted rune
// A missing neighbor counts as different
var IfDifferent Predicate = PredicateFunc(func(n Neighbor, _, insert rune) bool {
	return !n.Is(insert)
})

// Spec configures one insertion
// A nil Predicate inserts unconditionally
type Spec struct {
	Target    rune
	Insert    rune
	Side      Side
	Predicate Predicate
}

// AppendAfter inserts ins after the rightmost target
func AppendAfter(target, ins rune) Spec {
	return Spec{Target: target, Insert: ins, Side: After}
}

// AppendAfterIf inserts ins after the rightmost target when pred allows it
// pred receives the rune following the target
func AppendAfterIf(target, ins rune, pred Predicate) Spec {
	return Spec{Target: target, Insert: ins, Side: After, Predicate: pred}
}

// AppendAfterIfDifferent inserts ins after the rightmost target unless it is already there
func AppendAfterIfDifferent(target, ins rune) Spec {
	return AppendAfterIf(target, ins, IfDifferent)
}

// PrependBefore inserts ins before the rightmost target
func PrependBefore(target, ins rune) Spec {
	return Spec{Target: target, Insert: ins, Side: Before}
}

// PrependBeforeIf inserts ins before the rightmost target when pred allows it
// pred receives the rune preceding the target
func PrependBeforeIf(target, ins rune, pred Predicate) Spec {
	return Spec{Target: target, Insert: ins, Side: Before, Predicate: pred}
}

// PrependBeforeIfDifferent inserts ins before the rightmost target unless it is already there
func PrependBeforeIfDifferent(target, ins rune) Spec {
	return PrependBeforeIf(target, ins, IfDifferent)
}

// Kind implements rewrite.Kinded
func (s Spec) Kind() rewrite.Kind { return rewrite.KindNormalize }

// Transform applies the insertion once, at the rightmost target
func (s Spec) Transform(b *textbuf.Buffer) {
	s.Apply(b)
}

// Apply is Transform that also reports whether the buffer changed
func (s Spec) Apply(b *textbuf.Buffer) bool {
	at, ok := b.LastIndexRune(s.Target, b.End())
	if !ok {
		return false
	}

	var (
		neighbor Neighbor
		where    textbuf.Pos
	)
	switch s.Side {
	case Before:
		where = at
		if r, _, ok := b.RuneBefore(at); ok {
			neighbor = Some(r)
		}
	default:
		_, where, _ = b.RuneAt(at)
		if r, _, ok := b.RuneAt(where); ok {
			neighbor = Some(r)
		}
	}

	if s.Predicate != nil && !s.Predicate.Allow(neighbor, s.Target, s.Insert) {
		return false
	}
	b.InsertRune(where, s.Insert)
	return true
}

var _ rewrite.Transformer[textbuf.Buffer] = Spec{}
