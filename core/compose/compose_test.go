// core/compose/compose_test.go
package compose

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kjemmett/TARGet/core/alignment"
	"github.com/kjemmett/TARGet/core/barcode"
	"github.com/kjemmett/TARGet/core/dist"
	"github.com/kjemmett/TARGet/core/rips"
	"github.com/kjemmett/TARGet/core/sites"
)

func siteSet(t *testing.T, seqs ...string) *sites.Set {
	t.Helper()
	a := &alignment.Alignment{}
	for i, s := range seqs {
		a.Records = append(a.Records, alignment.Record{ID: fmt.Sprintf("s%d", i), Seq: []byte(s)})
	}
	set, err := sites.Reduce(a)
	require.NoError(t, err)
	return set
}

// seed builds a one-group barcode with b1 dim-1 bars, already tagged.
func seed(b1, i, j int) barcode.Barcode {
	b := barcode.Barcode{Spans: []barcode.Span{{Start: i, End: j}}}
	for k := 0; k < b1; k++ {
		b.Dims = append(b.Dims, 1)
		b.Births = append(b.Births, 1)
		b.Lengths = append(b.Lengths, 1)
		b.BirthChains = append(b.BirthChains, nil)
		b.DeathCycles = append(b.DeathCycles, nil)
		b.DeathChains = append(b.DeathChains, nil)
	}
	return b
}

func TestTableBounds(t *testing.T) {
	tb := NewTable(3)
	tb.Set(0, 2, seed(1, 0, 2))
	require.Equal(t, 1, tb.At(0, 2).B1())
	require.True(t, tb.At(2, 0).Empty())
	require.True(t, tb.At(1, 1).Empty())
	require.True(t, tb.At(-1, 5).Empty())
}

func TestMergeKeepsWinner(t *testing.T) {
	tb := NewTable(3)
	tb.Merge(0, 1, seed(1, 0, 1))
	tb.Merge(0, 1, seed(3, 0, 1))
	tb.Merge(0, 1, seed(2, 0, 1))
	require.Equal(t, 3, tb.At(0, 1).B1())
}

// Composition must chain adjacent evidence: with signal only in small
// intervals, the full-range cell accumulates all of it.
func TestComposeChainsAdjacentIntervals(t *testing.T) {
	raw := NewTable(4)
	raw.Set(0, 1, seed(1, 0, 1))
	raw.Set(1, 2, seed(2, 1, 2))
	raw.Set(2, 3, seed(1, 2, 3))

	tb := Compose(raw)
	final := tb.Final()
	require.Equal(t, 4, final.B1())
	require.Equal(t, []barcode.Span{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 3}}, final.Spans)
	require.Len(t, final.Groups(), 3)
}

// The recurrence never loses direct evidence: every cell dominates its own
// raw seed.
func TestComposeNeverBelowRaw(t *testing.T) {
	raw := NewTable(4)
	raw.Set(0, 1, seed(1, 0, 1))
	raw.Set(0, 3, seed(5, 0, 3))
	raw.Set(1, 3, seed(1, 1, 3))
	raw.Set(2, 3, seed(2, 2, 3))

	tb := Compose(raw)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			require.GreaterOrEqual(t, tb.At(i, j).B1(), raw.At(i, j).B1(),
				"cell [%d,%d]", i, j)
		}
	}
	// The wide direct window beats the 1+2 chain here.
	require.Equal(t, 5, tb.Final().B1())
	require.Equal(t, []barcode.Span{{Start: 0, End: 3}}, tb.Final().Spans)
}

func TestComposeEmptyStaysEmpty(t *testing.T) {
	tb := Compose(NewTable(5))
	require.True(t, tb.Final().Empty())
}

// End to end over a real engine: a mosaic of two incompatible site pairs
// yields one cycle in the junction-spanning window.
func TestSeedRawWithRipsEngine(t *testing.T) {
	// Sites 0,1 split {s0,s1} vs {s2,s3}; sites 2,3 split {s0,s2} vs {s1,s3}.
	set := siteSet(t,
		"AAGG",
		"AACC",
		"TTGG",
		"TTCC",
	)
	require.Equal(t, 4, set.Len())

	cfg := Config{MaxCardinality: 2, WindowWidth: 2, SkeletonDim: 2, Threads: 2}
	var calls int
	raw, stats, err := SeedRaw(context.Background(), cfg, set, rips.ComputeBarcode,
		func(done, total int) { calls++ })
	require.NoError(t, err)
	require.Equal(t, 3, stats.Windows) // pairs (0,1), (1,2), (2,3)
	require.Equal(t, 0, stats.Failed)
	require.Equal(t, stats.Unique, calls)

	require.Equal(t, 0, raw.At(0, 1).B1(), "compatible pair, two haplotypes")
	require.Equal(t, 1, raw.At(1, 2).B1(), "junction pair forms a square")
	require.Equal(t, 0, raw.At(2, 3).B1())
	require.Equal(t, []barcode.Span{{Start: 1, End: 2}}, raw.At(1, 2).Spans)

	final := Compose(raw).Final()
	require.Equal(t, 1, final.B1())
}

// Identical point clouds share one engine invocation.
func TestSeedRawDeduplicates(t *testing.T) {
	// All four sites carry the same split, so every pair induces the same
	// two haplotypes.
	set := siteSet(t, "AAAA", "AAAA", "TTTT")
	cfg := Config{MaxCardinality: 2, WindowWidth: 4, SkeletonDim: 2, Threads: 1}
	_, stats, err := SeedRaw(context.Background(), cfg, set, rips.ComputeBarcode, nil)
	require.NoError(t, err)
	require.Greater(t, stats.Windows, stats.Unique)
	require.Equal(t, 1, stats.Unique)
}

// A failing engine drops its windows and the run continues.
func TestSeedRawAbsorbsEngineFailures(t *testing.T) {
	set := siteSet(t,
		"AAGG",
		"AACC",
		"TTGG",
		"TTCC",
	)
	boom := func(m dist.Matrix, skel int) (barcode.Barcode, error) {
		if m.N() == 4 {
			return barcode.Barcode{}, errors.New("solver exploded")
		}
		return rips.ComputeBarcode(m, skel)
	}
	cfg := Config{MaxCardinality: 2, WindowWidth: 2, SkeletonDim: 2, Threads: 2}
	raw, stats, err := SeedRaw(context.Background(), cfg, set, boom, nil)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Failed, "the four-haplotype junction window")
	require.True(t, raw.At(1, 2).Empty())
	require.False(t, raw.At(0, 1).Empty(), "surviving windows still recorded")
}

func TestSeedRawCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	set := siteSet(t, "AAGG", "AACC", "TTGG", "TTCC")
	cfg := Config{MaxCardinality: 2, WindowWidth: 2, SkeletonDim: 2, Threads: 1}
	_, _, err := SeedRaw(ctx, cfg, set, rips.ComputeBarcode, nil)
	require.ErrorIs(t, err, context.Canceled)
}
