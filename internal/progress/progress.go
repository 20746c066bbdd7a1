// internal/progress/progress.go

// Package progress renders an advisory bar for the window fan-out. Purely
// cosmetic: dropping it changes nothing about result aggregation.
package progress

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Bar wraps an mpb bar. The zero value (and a nil *Bar) is a no-op.
type Bar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// New creates a bar over total units writing to out (normally stderr).
func New(out io.Writer, total int) *Bar {
	// AutoRefresh keeps the bar rendering when out is not a terminal.
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(out), mpb.WithAutoRefresh())
	bar := p.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("windows: "),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"),
		),
	)
	return &Bar{p: p, bar: bar}
}

// Increment advances the bar by one unit.
func (b *Bar) Increment() {
	if b == nil || b.bar == nil {
		return
	}
	b.bar.Increment()
}

// Wait blocks until the bar has rendered its final state.
func (b *Bar) Wait() {
	if b == nil || b.p == nil {
		return
	}
	b.p.Wait()
}
