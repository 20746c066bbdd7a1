// core/compose/compose.go

// Package compose implements the interval dynamic program generalizing the
// Myers–Griffiths recombination-detection recurrence: per-window barcodes
// are combined, bottom-up over interval length, into one best-supported
// barcode per segregating-site interval.
package compose

import (
	"context"

	"github.com/kjemmett/TARGet/core/barcode"
	"github.com/kjemmett/TARGet/core/rips"
	"github.com/kjemmett/TARGet/core/sites"
)

// Compose fills the composition table from the seeded raw table. For every
// interval [j, k] in increasing length order it takes the best choice, over
// each split point i, of the already-solved answer for [j, i] concatenated
// with the direct window evidence for [i, k]; i == j contributes the direct
// evidence alone. BestOf selects, never merges, so the table is a greedy
// interval cover by locally strongest evidence rather than a global optimum.
//
// Cells with no contributing window anywhere resolve to the empty barcode,
// which is "no detectable signal", not an error.
//
// The pass is strictly sequential: cell [j][k] needs every [j][i] with
// i < k already resolved.
func Compose(raw *Table) *Table {
	m := raw.Len()
	table := NewTable(m)
	cands := make([]barcode.Barcode, 0, m)
	for length := 1; length < m; length++ {
		for j := 0; j+length < m; j++ {
			k := j + length
			cands = cands[:0]
			for i := j; i < k; i++ {
				cands = append(cands, barcode.Concat(table.At(j, i), raw.At(i, k)))
			}
			table.Set(j, k, barcode.BestOf(cands))
		}
	}
	return table
}

// Result bundles the composed table with the seeding statistics.
type Result struct {
	Table *Table
	Stats Stats
}

// Run performs the full composition: window fan-out (parallel), then the
// sequential DP.
func Run(ctx context.Context, cfg Config, set *sites.Set, engine rips.Engine, progress func(done, total int)) (Result, error) {
	raw, stats, err := SeedRaw(ctx, cfg, set, engine, progress)
	if err != nil {
		return Result{Stats: stats}, err
	}
	return Result{Table: Compose(raw), Stats: stats}, nil
}
