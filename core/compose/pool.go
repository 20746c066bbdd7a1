// core/compose/pool.go
package compose

import (
	"context"
	"runtime"
	"sync"

	"github.com/kjemmett/TARGet/core/barcode"
	"github.com/kjemmett/TARGet/core/dist"
	"github.com/kjemmett/TARGet/core/rips"
	"github.com/kjemmett/TARGet/core/sites"
	"github.com/kjemmett/TARGet/core/window"
)

// Config controls the window fan-out and the engine.
type Config struct {
	MaxCardinality int // s: max sites per window
	WindowWidth    int // w: max site-index span per window
	SkeletonDim    int // passed through to the barcode engine
	Threads        int // worker goroutines (0 = all CPUs)
}

// Stats summarizes the seeding pass. Advisory only.
type Stats struct {
	Windows int // enumerated windows
	Unique  int // distinct point clouds sent to the engine
	Failed  int // windows dropped because their engine invocation failed
}

// SeedRaw enumerates every bounded window, deduplicates by content key, runs
// the barcode engine once per distinct point cloud across a fixed worker
// pool, and folds each result into the raw table for every window interval
// that shares the point cloud. Engine failures drop their windows (a missing
// contribution is indistinguishable from "no signal") and are counted.
//
// Results are merged in arrival order; BestOf makes that order irrelevant to
// the winner apart from ties between exactly equal candidates. The progress
// callback reports completed engine invocations and must not be relied on
// for anything but display.
func SeedRaw(ctx context.Context, cfg Config, set *sites.Set, engine rips.Engine, progress func(done, total int)) (*Table, Stats, error) {
	enum, err := window.NewEnumerator(set, cfg.MaxCardinality, cfg.WindowWidth)
	if err != nil {
		return nil, Stats{}, err
	}

	// First pass: collect distinct point clouds and the intervals using them.
	type cloud struct {
		haps [][]byte
		uses []barcode.Span
	}
	clouds := make(map[window.Key]*cloud)
	order := make([]window.Key, 0, 1024)
	var stats Stats
	err = enum.Each(func(w window.Window) error {
		stats.Windows++
		lo, hi := w.Range()
		k := w.ContentKey()
		c, ok := clouds[k]
		if !ok {
			c = &cloud{haps: w.Haplotypes}
			clouds[k] = c
			order = append(order, k)
		}
		c.uses = append(c.uses, barcode.Span{Start: lo, End: hi})
		return nil
	})
	if err != nil {
		return nil, stats, err
	}
	stats.Unique = len(order)

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	type result struct {
		key window.Key
		bc  barcode.Barcode
		err error
	}
	jobs := make(chan window.Key, threads*2)
	results := make(chan result, threads*2)

	var wg sync.WaitGroup
	wg.Add(threads)
	for t := 0; t < threads; t++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case k, ok := <-jobs:
					if !ok {
						return
					}
					res := result{key: k}
					m, err := dist.Hamming(clouds[k].haps)
					if err == nil {
						res.bc, err = engine(m, cfg.SkeletonDim)
					}
					res.err = err
					select {
					case results <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	raw := NewTable(set.Len())
	done := 0
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for res := range results {
			done++
			c := clouds[res.key]
			if res.err != nil {
				stats.Failed += len(c.uses)
			} else {
				for _, span := range c.uses {
					raw.Merge(span.Start, span.End, res.bc.WithSpan(span.Start, span.End))
				}
			}
			if progress != nil {
				progress(done, stats.Unique)
			}
		}
	}()

feed:
	for _, k := range order {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- k:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return nil, stats, ctx.Err()
	}
	return raw, stats, nil
}
