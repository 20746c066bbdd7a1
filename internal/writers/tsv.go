// internal/writers/tsv.go
package writers

import (
	"fmt"
	"io"

	"github.com/kjemmett/TARGet/pkg/api"
)

// StartBlockWriter spins up a writer goroutine for rate-block rows. Close
// the returned channel to finish; the error channel yields exactly one
// value.
func StartBlockWriter(out io.Writer, header bool, bufSize int) (chan<- api.BlockV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.BlockV1, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var err error
		if header {
			_, err = fmt.Fprintln(out, "start\tend\tb1")
		}
		for b := range in {
			if err != nil {
				continue
			}
			_, err = fmt.Fprintf(out, "%d\t%d\t%d\n", b.Start, b.End, b.B1)
		}
		errCh <- err
	}()
	return in, errCh
}

// StartBarWriter spins up a writer goroutine for bar rows.
func StartBarWriter(out io.Writer, header bool, bufSize int) (chan<- api.BarV1, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan api.BarV1, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var err error
		if header {
			_, err = fmt.Fprintln(out, "dim\tbirth\tdeath\tgenerators\tstart\tend")
		}
		for b := range in {
			if err != nil {
				continue
			}
			_, err = fmt.Fprintf(out, "%d\t%g\t%g\t%s\t%d\t%d\n",
				b.Dim, b.Birth, b.Death, b.Generators, b.Start, b.End)
		}
		errCh <- err
	}()
	return in, errCh
}

// WriteBlocks writes every row through a block writer and returns the first
// write error.
func WriteBlocks(out io.Writer, header bool, rows []api.BlockV1) error {
	in, errCh := StartBlockWriter(out, header, len(rows))
	for _, r := range rows {
		in <- r
	}
	close(in)
	return <-errCh
}

// WriteBars writes every row through a bar writer.
func WriteBars(out io.Writer, header bool, rows []api.BarV1) error {
	in, errCh := StartBarWriter(out, header, len(rows))
	for _, r := range rows {
		in <- r
	}
	close(in)
	return <-errCh
}
