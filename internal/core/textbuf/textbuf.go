// Package textbuf provides the mutable UTF-8 buffer every rewriting primitive works on.
// Positions are handed out as opaque Pos cursors that always sit on a rune boundary,
// so callers never see or compute raw byte offsets
package textbuf

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Buffer is an owned, growable UTF-8 string edited in place
// The zero value is an empty buffer ready to use
type Buffer struct {
	b []byte
}

// Pos is a cursor between two runes of a Buffer
// Only a Buffer creates positions; a Pos stays valid until the next mutation
type Pos struct{ off int }

// New returns a buffer holding s. Invalid UTF-8 bytes are dropped
func New(s string) *Buffer {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	return &Buffer{b: []byte(s)}
}

// String returns the current contents
func (b *Buffer) String() string { return string(b.b) }

// Len returns the length in bytes
func (b *Buffer) Len() int { return len(b.b) }

// RuneCount returns the number of scalar values
func (b *Buffer) RuneCount() int { return utf8.RuneCount(b.b) }

// Reset replaces the whole contents with s, repairing invalid UTF-8
func (b *Buffer) Reset(s string) {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	b.b = append(b.b[:0], s...)
}

// Start is the cursor before the first rune
func (b *Buffer) Start() Pos { return Pos{} }

// End is the cursor after the last rune
func (b *Buffer) End() Pos { return Pos{off: len(b.b)} }

// Before reports whether p comes strictly before q
func (p Pos) Before(q Pos) bool { return p.off < q.off }

// LastIndexRune finds the rightmost r that ends at or before limit
func (b *Buffer) LastIndexRune(r rune, limit Pos) (Pos, bool) {
	b.mustBoundary(limit)
	if !utf8.ValidRune(r) {
		return Pos{}, false
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	i := bytes.LastIndex(b.b[:limit.off], enc[:n])
	if i < 0 {
		return Pos{}, false
	}
	return Pos{off: i}, true
}

// LastIndexFunc finds the rightmost rune before limit satisfying f
func (b *Buffer) LastIndexFunc(f func(rune) bool, limit Pos) (Pos, bool) {
	b.mustBoundary(limit)
	for i := limit.off; i > 0; {
		r, size := utf8.DecodeLastRune(b.b[:i])
		i -= size
		if f(r) {
			return Pos{off: i}, true
		}
	}
	return Pos{}, false
}

// RuneAt returns the rune starting at p and the cursor just after it
// ok is false when p is the end of the buffer
func (b *Buffer) RuneAt(p Pos) (r rune, next Pos, ok bool) {
	b.mustBoundary(p)
	if p.off >= len(b.b) {
		return 0, p, false
	}
	r, size := utf8.DecodeRune(b.b[p.off:])
	return r, Pos{off: p.off + size}, true
}

// RuneBefore returns the rune ending at p and the cursor at its start
// ok is false when p is the start of the buffer
func (b *Buffer) RuneBefore(p Pos) (r rune, prev Pos, ok bool) {
	b.mustBoundary(p)
	if p.off == 0 {
		return 0, p, false
	}
	r, size := utf8.DecodeLastRune(b.b[:p.off])
	return r, Pos{off: p.off - size}, true
}

// ContainsRune reports whether r occurs anywhere in the buffer
func (b *Buffer) ContainsRune(r rune) bool {
	_, ok := b.LastIndexRune(r, b.End())
	return ok
}

// MinRuneIn returns the smallest rune in [lo, hi] present in the buffer
func (b *Buffer) MinRuneIn(lo, hi rune) (rune, bool) {
	found := false
	var best rune
	for i := 0; i < len(b.b); {
		r, size := utf8.DecodeRune(b.b[i:])
		i += size
		if r < lo || r > hi {
			continue
		}
		if !found || r < best {
			best, found = r, true
			if best == lo {
				break
			}
		}
	}
	return best, found
}

// ReplaceRune splices repl over the single rune starting at p
// It returns the cursor at the start of the replacement
func (b *Buffer) ReplaceRune(p Pos, repl string) Pos {
	_, next, ok := b.RuneAt(p)
	if !ok {
		panic("textbuf: ReplaceRune at end of buffer")
	}
	b.splice(p.off, next.off, repl)
	return p
}

// InsertRune inserts r at p and returns the cursor after it
func (b *Buffer) InsertRune(p Pos, r rune) Pos {
	b.mustBoundary(p)
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	b.splice(p.off, p.off, string(enc[:n]))
	return Pos{off: p.off + n}
}

// Retain keeps runes for which keep returns true, in a single left to right pass
// keep sees every rune in input order, including the ones it rejects
func (b *Buffer) Retain(keep func(r rune) bool) {
	w := 0
	for i := 0; i < len(b.b); {
		r, size := utf8.DecodeRune(b.b[i:])
		if keep(r) {
			w += copy(b.b[w:], b.b[i:i+size])
		}
		i += size
	}
	b.b = b.b[:w]
}

// TrimRightFunc removes trailing runes one at a time while f holds
func (b *Buffer) TrimRightFunc(f func(rune) bool) {
	for len(b.b) > 0 {
		r, size := utf8.DecodeLastRune(b.b)
		if !f(r) {
			return
		}
		b.b = b.b[:len(b.b)-size]
	}
}

// TrimLeftFunc removes leading runes while f holds
func (b *Buffer) TrimLeftFunc(f func(rune) bool) {
	i := 0
	for i < len(b.b) {
		r, size := utf8.DecodeRune(b.b[i:])
		if !f(r) {
			break
		}
		i += size
	}
	if i > 0 {
		b.b = b.b[:copy(b.b, b.b[i:])]
	}
}

// splice replaces b[from:to] with s, growing or shrinking in place
func (b *Buffer) splice(from, to int, s string) {
	delta := len(s) - (to - from)
	switch {
	case delta > 0:
		b.b = append(b.b, make([]byte, delta)...)
		copy(b.b[to+delta:], b.b[to:len(b.b)-delta])
	case delta < 0:
		copy(b.b[to+delta:], b.b[to:])
		b.b = b.b[:len(b.b)+delta]
	}
	copy(b.b[from:], s)
}

// mustBoundary panics when p does not fall on a rune boundary of b
func (b *Buffer) mustBoundary(p Pos) {
	if p.off < 0 || p.off > len(b.b) {
		panic(fmt.Sprintf("textbuf: position %d outside buffer of %d bytes", p.off, len(b.b)))
	}
	if p.off < len(b.b) && !utf8.RuneStart(b.b[p.off]) {
		panic(fmt.Sprintf("textbuf: position %d splits a rune", p.off))
	}
}
