// core/rips/filtration.go
package rips

import (
	"sort"

	"github.com/kjemmett/TARGet/core/dist"
)

// simplex is one cell of the Rips filtration. verts are sorted point
// indices; weight is the diameter (the threshold at which the cell enters).
type simplex struct {
	verts  []int
	weight float64
}

func (s simplex) dim() int { return len(s.verts) - 1 }

// buildFiltration enumerates every simplex of dimension <= maxDim over the
// point cloud and returns them in filtration order: by weight, then by
// dimension (a cell never precedes its faces), then lexicographically for
// determinism.
func buildFiltration(m dist.Matrix, maxDim int) []simplex {
	n := m.N()
	var cells []simplex

	var rec func(start int, verts []int, diam float64)
	rec = func(start int, verts []int, diam float64) {
		if len(verts) > 0 {
			cells = append(cells, simplex{verts: append([]int(nil), verts...), weight: diam})
		}
		if len(verts) == maxDim+1 {
			return
		}
		for v := start; v < n; v++ {
			d := diam
			for _, u := range verts {
				if dv := m.At(u, v); dv > d {
					d = dv
				}
			}
			rec(v+1, append(verts, v), d)
		}
	}
	rec(0, nil, 0)

	sort.SliceStable(cells, func(i, j int) bool {
		a, b := cells[i], cells[j]
		if a.weight != b.weight {
			return a.weight < b.weight
		}
		if a.dim() != b.dim() {
			return a.dim() < b.dim()
		}
		for k := range a.verts {
			if a.verts[k] != b.verts[k] {
				return a.verts[k] < b.verts[k]
			}
		}
		return false
	})
	return cells
}

// vertKey encodes a sorted vertex tuple for facet lookup.
func vertKey(verts []int) string {
	b := make([]byte, 0, len(verts)*4)
	for _, v := range verts {
		b = append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return string(b)
}

// facets returns the codimension-1 faces of verts (each with one vertex
// dropped). Returns nil for vertices.
func facets(verts []int) [][]int {
	if len(verts) < 2 {
		return nil
	}
	out := make([][]int, 0, len(verts))
	for drop := range verts {
		f := make([]int, 0, len(verts)-1)
		for k, v := range verts {
			if k != drop {
				f = append(f, v)
			}
		}
		out = append(out, f)
	}
	return out
}
