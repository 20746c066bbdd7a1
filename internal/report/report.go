// internal/report/report.go

// Package report converts core results into the stable wire schema consumed
// by the writers and by downstream analysis.
package report

import (
	"fmt"
	"strings"

	"github.com/kjemmett/TARGet/core/barcode"
	"github.com/kjemmett/TARGet/core/breakpoint"
	"github.com/kjemmett/TARGet/core/compose"
	"github.com/kjemmett/TARGet/core/sites"
	"github.com/kjemmett/TARGet/pkg/api"
)

// Build assembles the full ResultV1 in original alignment coordinates.
func Build(set *sites.Set, final barcode.Barcode, a *breakpoint.Analysis, stats compose.Stats) api.ResultV1 {
	r := api.ResultV1{
		Labels:          set.Labels,
		Sites:           set.Positions,
		Blocks:          Blocks(set, a.Blocks),
		Bars:            Bars(set, final),
		NoRecombination: a.Empty(),
		Windows:         stats.Windows,
		UniqueClouds:    stats.Unique,
		FailedWindows:   stats.Failed,
	}
	for _, i := range a.Breakpoints {
		r.Breakpoints = append(r.Breakpoints, set.Positions[i])
	}
	return r
}

// Blocks maps rate blocks from site-index space to alignment coordinates.
func Blocks(set *sites.Set, blocks []breakpoint.RateBlock) []api.BlockV1 {
	out := make([]api.BlockV1, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, api.BlockV1{
			Start: set.Positions[b.Start],
			End:   set.Positions[b.End],
			B1:    b.B1,
		})
	}
	return out
}

// Bars flattens the final barcode into one record per dimension-1 bar with
// positive persistence, each tagged with its provenance group's interval in
// alignment coordinates. Component merges (dimension 0) carry no
// recombination signal and are not reported.
func Bars(set *sites.Set, final barcode.Barcode) []api.BarV1 {
	var out []api.BarV1
	for _, g := range final.Groups() {
		span := g.Spans[0]
		for k, d := range g.Dims {
			if d != 1 || g.Lengths[k] <= 0 {
				continue
			}
			out = append(out, api.BarV1{
				Dim:        d,
				Birth:      g.Births[k],
				Death:      g.Births[k] + g.Lengths[k],
				Generators: renderCycle(g.DeathCycles[k]),
				Start:      set.Positions[span.Start],
				End:        set.Positions[span.End],
			})
		}
	}
	return out
}

func renderCycle(cy barcode.Cycle) string {
	if len(cy) == 0 {
		return ""
	}
	terms := make([]string, len(cy))
	for i, e := range cy {
		terms[i] = fmt.Sprintf("%d-%d", e.U, e.V)
	}
	return strings.Join(terms, ";")
}
