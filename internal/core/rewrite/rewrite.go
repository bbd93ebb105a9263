// Package rewrite defines the single in-place transform capability shared by every
// rewriting primitive. Cleaning and normalizing are the same contract and only differ
// by the Kind tag a transform reports
package rewrite

import "txdc/internal/core/textbuf"

// Kind tags a transform for documentation and logs
type Kind uint8

const (
	// KindUnknown is reported by transforms that do not tag themselves
	KindUnknown Kind = iota
	// KindClean removes or replaces unwanted content
	KindClean
	// KindNormalize rewrites content into a canonical shape
	KindNormalize
)

func (k Kind) String() string {
	switch k {
	case KindClean:
		return "clean"
	case KindNormalize:
		return "normalize"
	default:
		return "unknown"
	}
}

// Transformer mutates data in place
type Transformer[T any] interface {
	Transform(data *T)
}

// Kinded is implemented by transforms that tag themselves
type Kinded interface {
	Kind() Kind
}

// KindOf returns the tag of t, KindUnknown when it has none
func KindOf(t any) Kind {
	if k, ok := t.(Kinded); ok {
		return k.Kind()
	}
	return KindUnknown
}

// Func adapts a plain function to Transformer
type Func[T any] func(data *T)

// Transform calls f(data)
func (f Func[T]) Transform(data *T) { f(data) }

// Chain applies transforms in order
type Chain[T any] []Transformer[T]

// Transform runs every transform of the chain on data
func (c Chain[T]) Transform(data *T) {
	for _, t := range c {
		t.Transform(data)
	}
}

// String runs t over a fresh buffer holding s and returns the result
func String(t Transformer[textbuf.Buffer], s string) string {
	b := textbuf.New(s)
	t.Transform(b)
	return b.String()
}
