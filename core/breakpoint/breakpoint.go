// core/breakpoint/breakpoint.go

// Package breakpoint derives the recombination summary from the final
// composed barcode: the refined-b1 interval matrix, a minimal pivot set,
// the rate-block partition, and discrete breakpoint positions.
package breakpoint

import "github.com/kjemmett/TARGet/core/barcode"

// Pivot is a candidate recombination interval [Start, End] in site-index
// space, tagged with its refined-b1 count.
type Pivot struct {
	Start, End int
	B1         int
}

// RateBlock is one maximal breakpoint-free interval of the partition. The
// blocks are ordered, non-overlapping, and together cover [0, m-1] exactly.
type RateBlock struct {
	Start, End int
	B1         int
}

// Analysis holds every derived view of the final barcode. Computed once,
// read-only afterwards.
type Analysis struct {
	KR          [][]int     // refined-b1 count per interval [i][j], i < j
	Pivots      []Pivot     // minimal non-overlapping pivot set
	Blocks      []RateBlock // rate partition covering the full site range
	Breakpoints []int       // site indices i with KR[i][i+1] == 1
}

// Empty reports the no-recombination outcome: no positive-length b1 signal
// anywhere. A first-class result, not an error.
func (a *Analysis) Empty() bool {
	m := len(a.KR)
	return m == 0 || a.KR[0][m-1] == 0
}

// Extract runs the full derivation over the final barcode of an m-site
// composition.
func Extract(final barcode.Barcode, m int) *Analysis {
	a := &Analysis{KR: refinedB1(final, m)}
	a.Pivots = mergePivots(scanPivots(a.KR))
	a.Pivots = ratePartition(a.Pivots, a.KR)
	a.Blocks = cutBlocks(a.Pivots, a.KR, m)
	for i := 0; i+1 < m; i++ {
		if a.KR[i][i+1] == 1 {
			a.Breakpoints = append(a.Breakpoints, i)
		}
	}
	return a
}

// refinedB1 counts, for every interval [i, j], the positive-length
// dimension-1 bars whose recorded span lies within it. Each provenance
// group of the final barcode carries one span; its bars are attributed to
// every enclosing interval.
func refinedB1(final barcode.Barcode, m int) [][]int {
	kr := make([][]int, m)
	for i := range kr {
		kr[i] = make([]int, m)
	}
	for _, g := range final.Groups() {
		b1 := g.B1()
		if b1 == 0 {
			continue
		}
		s := g.Spans[0]
		for i := 0; i <= s.Start; i++ {
			for j := s.End; j < m; j++ {
				kr[i][j] += b1
			}
		}
	}
	return kr
}

// scanPivots records, per row, the first column with signal; a later row's
// pivot in the same column replaces an earlier one only when its count is
// not smaller, keeping the most informative pivot per column.
func scanPivots(kr [][]int) []Pivot {
	m := len(kr)
	byCol := make(map[int]int) // column -> index into pivots
	var pivots []Pivot
	for i := 0; i < m; i++ {
		for j := i + 1; j < m; j++ {
			if kr[i][j] == 0 {
				continue
			}
			p := Pivot{Start: i, End: j, B1: kr[i][j]}
			if prev, ok := byCol[j]; ok {
				if p.B1 >= pivots[prev].B1 {
					pivots[prev] = p
				}
			} else {
				byCol[j] = len(pivots)
				pivots = append(pivots, p)
			}
			break
		}
	}
	return pivots
}

// mergePivots fuses overlapping adjacent pivots left to right until a fixed
// point: the result is a minimal, monotone, non-overlapping covering
// sequence. Explicit iteration over the slice, no recursive copies.
func mergePivots(pivots []Pivot) []Pivot {
	for changed := true; changed; {
		changed = false
		for i := 0; i+1 < len(pivots); i++ {
			p, q := pivots[i], pivots[i+1]
			if q.Start > p.End {
				continue
			}
			pivots[i] = Pivot{Start: p.Start, End: q.End}
			pivots = append(pivots[:i+1], pivots[i+2:]...)
			changed = true
			break
		}
	}
	return pivots
}

// ratePartition greedily fuses adjacent pivots whenever the interval
// spanning both carries strictly more refined b1 than the parts combined:
// the extra bars straddle the junction, so the junction is not a real
// breakpoint and the wider interval is the more parsimonious reading. The
// scan restarts after every fuse and stops at a fixed point. Counts are
// re-read from kr so fused pivots stay consistent.
func ratePartition(pivots []Pivot, kr [][]int) []Pivot {
	for i := range pivots {
		pivots[i].B1 = kr[pivots[i].Start][pivots[i].End]
	}
	for i := 0; i+1 < len(pivots); {
		p, q := pivots[i], pivots[i+1]
		if kr[p.Start][q.End] > p.B1+q.B1 {
			pivots[i] = Pivot{Start: p.Start, End: q.End, B1: kr[p.Start][q.End]}
			pivots = append(pivots[:i+1], pivots[i+2:]...)
			i = 0
			continue
		}
		i++
	}
	return pivots
}

// cutBlocks converts the pivot set into the covering partition: one cut
// after each pivot's first site, so no block contains a pivot interval
// whole. Each block is tagged with its own refined-b1 count.
func cutBlocks(pivots []Pivot, kr [][]int, m int) []RateBlock {
	var blocks []RateBlock
	start := 0
	for _, p := range pivots {
		if p.Start < start {
			continue
		}
		blocks = append(blocks, RateBlock{Start: start, End: p.Start, B1: at(kr, start, p.Start)})
		start = p.Start + 1
	}
	blocks = append(blocks, RateBlock{Start: start, End: m - 1, B1: at(kr, start, m-1)})
	return blocks
}

func at(kr [][]int, i, j int) int {
	if i >= j {
		return 0
	}
	return kr[i][j]
}
