// internal/writers/writers_test.go
package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kjemmett/TARGet/pkg/api"
)

func TestWriteBlocks(t *testing.T) {
	var buf bytes.Buffer
	rows := []api.BlockV1{
		{Start: 1, End: 3, B1: 0},
		{Start: 5, End: 8, B1: 2},
	}
	require.NoError(t, WriteBlocks(&buf, true, rows))
	require.Equal(t, "start\tend\tb1\n1\t3\t0\n5\t8\t2\n", buf.String())
}

func TestWriteBlocksNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBlocks(&buf, false, []api.BlockV1{{Start: 0, End: 9, B1: 1}}))
	require.Equal(t, "0\t9\t1\n", buf.String())
}

func TestWriteBars(t *testing.T) {
	var buf bytes.Buffer
	rows := []api.BarV1{
		{Dim: 1, Birth: 1, Death: 2, Generators: "0-1;1-3;0-2;2-3", Start: 1, End: 3},
		{Dim: 1, Birth: 0.5, Death: 2.5, Generators: "0-1;1-2;0-2", Start: 5, End: 8},
	}
	require.NoError(t, WriteBars(&buf, true, rows))
	require.Equal(t,
		"dim\tbirth\tdeath\tgenerators\tstart\tend\n"+
			"1\t1\t2\t0-1;1-3;0-2;2-3\t1\t3\n"+
			"1\t0.5\t2.5\t0-1;1-2;0-2\t5\t8\n",
		buf.String())
}

type failWriter struct{ err error }

func (w failWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteBlocksPropagatesError(t *testing.T) {
	sentinel := errors.New("disk full")
	err := WriteBlocks(failWriter{sentinel}, true, []api.BlockV1{{Start: 0, End: 1}})
	require.ErrorIs(t, err, sentinel)
}

func TestBlockWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	in, errCh := StartBlockWriter(&buf, true, 0)
	close(in)
	require.NoError(t, <-errCh)
	require.Equal(t, "start\tend\tb1\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	res := api.ResultV1{
		Labels:      []string{"s1", "s2"},
		Sites:       []int{1, 3},
		Breakpoints: []int{3},
	}
	require.NoError(t, WriteJSON(&buf, res))

	var got api.ResultV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, res, got)
	require.Contains(t, buf.String(), "\n  \"labels\"")
}
