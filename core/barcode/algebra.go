// core/barcode/algebra.go
package barcode

// Concat joins two barcodes over adjacent intervals. One separator entry is
// inserted between a's and b's bar-aligned fields; Spans are appended with
// no separator. An empty side contributes nothing and emits no separator,
// which keeps the group/span alignment exact.
func Concat(a, b Barcode) Barcode {
	if a.Empty() {
		return b.Clone()
	}
	if b.Empty() {
		return a.Clone()
	}
	out := a.Clone()
	out.Dims = append(out.Dims, SeparatorDim)
	out.Births = append(out.Births, 0)
	out.Lengths = append(out.Lengths, 0)
	out.BirthChains = append(out.BirthChains, nil)
	out.DeathCycles = append(out.DeathCycles, nil)
	out.DeathChains = append(out.DeathChains, nil)

	out.Dims = append(out.Dims, b.Dims...)
	out.Births = append(out.Births, b.Births...)
	out.Lengths = append(out.Lengths, b.Lengths...)
	out.BirthChains = append(out.BirthChains, b.BirthChains...)
	out.DeathCycles = append(out.DeathCycles, b.DeathCycles...)
	out.DeathChains = append(out.DeathChains, b.DeathChains...)
	out.Spans = append(out.Spans, b.Spans...)
	return out
}

// Dominance reports whether a beats b. Ranking: more positive-length
// dimension-1 bars wins; on a tie, larger span coverage wins; on a full tie
// the first argument wins. Total for any pair of well-formed barcodes;
// an empty barcode loses to anything with recorded coverage.
func Dominance(a, b Barcode) bool {
	ab1, bb1 := a.B1(), b.B1()
	if ab1 != bb1 {
		return ab1 > bb1
	}
	return a.Coverage() >= b.Coverage()
}

// BestOf folds Dominance over candidates and returns the single winner.
// It selects, never merges: losing candidates are discarded whole. An
// empty candidate list yields the empty barcode.
func BestOf(candidates []Barcode) Barcode {
	if len(candidates) == 0 {
		return Barcode{}
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if !Dominance(best, c) {
			best = c
		}
	}
	return best
}
