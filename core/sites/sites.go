// core/sites/sites.go
package sites

import (
	"errors"

	"github.com/kjemmett/TARGet/core/alignment"
)

// ErrNoSegregating indicates the alignment carries no polymorphic position,
// so there is nothing to analyze.
var ErrNoSegregating = errors.New("sites: no segregating sites in alignment")

// Set is an alignment reduced to its segregating sites. All downstream
// indices are in this site-index space; Positions maps back to original
// alignment coordinates. Built once, immutable.
type Set struct {
	Labels    []string // sample identifiers, input order
	Positions []int    // original alignment coordinate per site, increasing
	Reduced   [][]byte // one row per input sequence, len(Positions) columns
}

// Len returns the number of segregating sites.
func (s *Set) Len() int { return len(s.Positions) }

// Reduce collapses an alignment to its segregating sites: positions where at
// least two sequences disagree. Gap characters count as symbols.
func Reduce(a *alignment.Alignment) (*Set, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	n, w := a.Len(), a.Width()
	set := &Set{Labels: a.Labels()}
	for col := 0; col < w; col++ {
		first := a.Records[0].Seq[col]
		seg := false
		for row := 1; row < n; row++ {
			if a.Records[row].Seq[col] != first {
				seg = true
				break
			}
		}
		if seg {
			set.Positions = append(set.Positions, col)
		}
	}
	if len(set.Positions) == 0 {
		return nil, ErrNoSegregating
	}
	set.Reduced = make([][]byte, n)
	for row := 0; row < n; row++ {
		proj := make([]byte, len(set.Positions))
		for k, col := range set.Positions {
			proj[k] = a.Records[row].Seq[col]
		}
		set.Reduced[row] = proj
	}
	return set, nil
}

// Project returns each reduced sequence restricted to the given site
// indices, in input order. Indices must be valid for the set.
func (s *Set) Project(idx []int) [][]byte {
	out := make([][]byte, len(s.Reduced))
	for row, seq := range s.Reduced {
		p := make([]byte, len(idx))
		for k, i := range idx {
			p[k] = seq[i]
		}
		out[row] = p
	}
	return out
}
