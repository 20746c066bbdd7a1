// core/window/window.go
package window

import (
	"errors"

	"github.com/kjemmett/TARGet/core/sites"
)

var (
	// ErrCardinality indicates a maximum window cardinality below 2.
	ErrCardinality = errors.New("window: max cardinality must be at least 2")
	// ErrWidth indicates a window width smaller than the cardinality bound.
	ErrWidth = errors.New("window: width must be at least the max cardinality")
)

// Window is one strictly increasing tuple of segregating-site indices plus
// the induced haplotype strings, already collapsed to unique representatives
// in first-seen order.
type Window struct {
	Sites      []int
	Haplotypes [][]byte
}

// Range returns the site-index interval [min, max] the window spans.
func (w Window) Range() (int, int) { return w.Sites[0], w.Sites[len(w.Sites)-1] }

// Enumerator generates every contiguous-in-rank subset of segregating sites
// with 2 <= cardinality <= S and positional span < W, each exactly once.
type Enumerator struct {
	set *sites.Set
	s   int // max cardinality
	w   int // max width (site-index units)
}

// NewEnumerator validates the bounds and returns an enumerator over set.
func NewEnumerator(set *sites.Set, maxCardinality, width int) (*Enumerator, error) {
	if maxCardinality < 2 {
		return nil, ErrCardinality
	}
	if width < maxCardinality {
		return nil, ErrWidth
	}
	return &Enumerator{set: set, s: maxCardinality, w: width}, nil
}

// Each slides a width-W frame across the site range one site at a time and
// emits, per frame, only the subsets newly entering it: the first frame
// yields every subset, every later frame only those containing its rightmost
// (new) index. Subsets already seen in the previous frame are never
// re-emitted, so each tuple appears exactly once. Purely generative;
// restartable only by calling Each again.
func (e *Enumerator) Each(emit func(Window) error) error {
	m := e.set.Len()
	if m < 2 {
		return nil
	}
	w := e.w
	if w > m {
		w = m
	}
	// First frame: all subsets of [0, w).
	if err := e.combinations(0, w, -1, emit); err != nil {
		return err
	}
	// Sliding frames: subsets of [f, f+w) that include the new index f+w-1.
	for f := 1; f+w <= m; f++ {
		if err := e.combinations(f, f+w, f+w-1, emit); err != nil {
			return err
		}
	}
	return nil
}

// combinations emits subsets of size 2..s drawn from [lo, hi); when must >= 0
// every subset must contain that index.
func (e *Enumerator) combinations(lo, hi, must int, emit func(Window) error) error {
	idx := make([]int, 0, e.s)
	var rec func(next int) error
	rec = func(next int) error {
		if len(idx) >= 2 && (must < 0 || contains(idx, must)) {
			if err := emit(e.build(idx)); err != nil {
				return err
			}
		}
		if len(idx) == e.s {
			return nil
		}
		for i := next; i < hi; i++ {
			idx = append(idx, i)
			if err := rec(i + 1); err != nil {
				return err
			}
			idx = idx[:len(idx)-1]
		}
		return nil
	}
	return rec(lo)
}

func (e *Enumerator) build(idx []int) Window {
	tuple := append([]int(nil), idx...)
	haps := collapse(e.set.Project(tuple))
	return Window{Sites: tuple, Haplotypes: haps}
}

// collapse keeps the first occurrence of each distinct haplotype string.
func collapse(rows [][]byte) [][]byte {
	seen := make(map[string]struct{}, len(rows))
	out := make([][]byte, 0, len(rows))
	for _, r := range rows {
		k := string(r)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

func contains(idx []int, v int) bool {
	for _, i := range idx {
		if i == v {
			return true
		}
	}
	return false
}
