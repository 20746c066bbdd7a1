// core/rips/engine.go

// Package rips computes persistent homology of the Vietoris–Rips filtration
// over a distance matrix. It backs the black-box ComputeBarcode collaborator
// the rest of the system depends on: callers only ever see the Engine
// function type and the barcode it returns, so the implementation can be
// swapped for an external solver without touching the composer.
package rips

import (
	"errors"

	"github.com/kjemmett/TARGet/core/barcode"
	"github.com/kjemmett/TARGet/core/dist"
)

var (
	// ErrDegenerate indicates fewer than two points, which carries no
	// topological signal.
	ErrDegenerate = errors.New("rips: degenerate point cloud (need at least two points)")
	// ErrSkeleton indicates a non-positive skeleton dimension.
	ErrSkeleton = errors.New("rips: skeleton dimension must be positive")
)

// Engine is the barcode-computation contract: every returned bar has
// positive persistence and dimension < maxSkeletonDim, and unpaired
// (infinite) features are excluded. Bars are in no particular order.
type Engine func(m dist.Matrix, maxSkeletonDim int) (barcode.Barcode, error)

// ComputeBarcode is the built-in Engine. It builds the filtration up to
// maxSkeletonDim-simplices (enough to pair every bar of lower dimension),
// reduces the GF(2) boundary matrix, and emits bars with their generating
// chains and cycles.
func ComputeBarcode(m dist.Matrix, maxSkeletonDim int) (barcode.Barcode, error) {
	if m.N() < 2 {
		return barcode.Barcode{}, ErrDegenerate
	}
	if maxSkeletonDim < 1 {
		return barcode.Barcode{}, ErrSkeleton
	}

	cells := buildFiltration(m, maxSkeletonDim)
	index := make(map[string]int, len(cells))
	for i, c := range cells {
		index[vertKey(c.verts)] = i
	}
	boundary := make([]column, len(cells))
	for i, c := range cells {
		var col column
		for _, f := range facets(c.verts) {
			col = append(col, index[vertKey(f)])
		}
		sortColumn(col)
		boundary[i] = col
	}

	var bc barcode.Barcode
	for _, p := range reduce(boundary) {
		birth := cells[p.birth]
		death := cells[p.death]
		length := death.weight - birth.weight
		if length <= 0 {
			continue
		}
		var cy barcode.Cycle
		if birth.dim() == 0 {
			// A component merge: the killer edge itself is the cycle.
			cy = barcode.Cycle{{U: death.verts[0], V: death.verts[1], Weight: death.weight}}
		} else {
			cy = toCycle(cells, p.deathCycle)
		}
		bc.Dims = append(bc.Dims, birth.dim())
		bc.Births = append(bc.Births, birth.weight)
		bc.Lengths = append(bc.Lengths, length)
		bc.BirthChains = append(bc.BirthChains, toChain(cells, p.birthChain))
		bc.DeathCycles = append(bc.DeathCycles, cy)
		bc.DeathChains = append(bc.DeathChains, toChain(cells, p.deathChain))
	}
	return bc, nil
}

// toChain maps a GF(2) column to a weighted simplex chain.
func toChain(cells []simplex, col column) barcode.Chain {
	if len(col) == 0 {
		return nil
	}
	ch := make(barcode.Chain, 0, len(col))
	for _, i := range col {
		ch = append(ch, barcode.Simplex{Verts: cells[i].verts, Weight: cells[i].weight})
	}
	return ch
}

// toCycle maps a column of 1-simplices to an edge cycle. Columns holding
// higher-dimensional cells (deaths of b>=2 features) have no edge rendering
// and yield nil; the full chain is still available via DeathChains.
func toCycle(cells []simplex, col column) barcode.Cycle {
	cy := make(barcode.Cycle, 0, len(col))
	for _, i := range col {
		if len(cells[i].verts) != 2 {
			return nil
		}
		cy = append(cy, barcode.Edge{U: cells[i].verts[0], V: cells[i].verts[1], Weight: cells[i].weight})
	}
	return cy
}

func sortColumn(c column) {
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && c[j] < c[j-1]; j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}
}
