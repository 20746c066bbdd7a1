// core/session/session_test.go
package session

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kjemmett/TARGet/core/barcode"
	"github.com/kjemmett/TARGet/core/breakpoint"
)

func sample() *Session {
	return &Session{
		Labels:    []string{"s1", "s2", "s3"},
		Positions: []int{1, 3, 8},
		Reduced:   [][]byte{[]byte("ATG"), []byte("ACG"), []byte("TCG")},
		DistN:     3,
		DistData:  []float64{0, 1, 2, 1, 0, 1, 2, 1, 0},
		Final: barcode.Barcode{
			Dims:        []int{1},
			Births:      []float64{1},
			Lengths:     []float64{1},
			BirthChains: []barcode.Chain{{{Verts: []int{0, 2}, Weight: 2}}},
			DeathCycles: []barcode.Cycle{{{U: 0, V: 1, Weight: 2}}},
			DeathChains: []barcode.Chain{{{Verts: []int{0, 1, 2}, Weight: 2}}},
			Spans:       []barcode.Span{{Start: 0, End: 2}},
		},
		Blocks: []breakpoint.RateBlock{{Start: 0, End: 2, B1: 1}},
	}
}

func TestRoundTrip(t *testing.T) {
	want := sample()
	var buf bytes.Buffer
	require.NoError(t, want.Write(&buf))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, formatVersion, got.Version)
	require.Equal(t, want.Labels, got.Labels)
	require.Equal(t, want.Positions, got.Positions)
	require.Equal(t, want.Reduced, got.Reduced)
	require.Equal(t, want.DistN, got.DistN)
	require.Equal(t, want.DistData, got.DistData)
	require.Equal(t, want.Final, got.Final)
	require.Equal(t, want.Blocks, got.Blocks)
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.session.gz")
	want := sample()
	require.NoError(t, want.WriteFile(path))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want.Final, got.Final)
	require.Equal(t, want.Blocks, got.Blocks)
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not a gzip stream")))
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestReadRejectsTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().Write(&buf))
	_, err := Read(bytes.NewReader(buf.Bytes()[:buf.Len()/2]))
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestReadRejectsVersionMismatch(t *testing.T) {
	s := sample()
	s.Version = formatVersion + 1
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	require.NoError(t, gob.NewEncoder(zw).Encode(s))
	require.NoError(t, zw.Close())

	_, err := Read(&buf)
	require.ErrorIs(t, err, ErrVersion)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.session.gz"))
	require.Error(t, err)
}
