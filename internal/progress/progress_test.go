// internal/progress/progress_test.go
package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilBarIsNoOp(t *testing.T) {
	var b *Bar
	b.Increment()
	b.Wait()
}

func TestBarRenders(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, 2)
	b.Increment()
	b.Increment()
	b.Wait()
	require.Contains(t, buf.String(), "windows:")
	require.Contains(t, buf.String(), "2 / 2")
}
