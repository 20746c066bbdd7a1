// internal/cli/options_test.go
package cli

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("target")
	fs.SetOutput(&bytes.Buffer{})
	return ParseArgs(fs, argv)
}

func TestDefaults(t *testing.T) {
	opt, err := parse(t, "--alignment", "aln.fasta")
	require.NoError(t, err)
	require.Equal(t, "aln.fasta", opt.Alignment)
	require.Equal(t, 8, opt.MaxCardinality)
	require.Equal(t, 12, opt.WindowWidth)
	require.Equal(t, 2, opt.SkeletonDim)
	require.Equal(t, 0, opt.Threads)
	require.Equal(t, "target", opt.OutputPrefix)
	require.Equal(t, "text", opt.Output)
	require.True(t, opt.Header)
	require.False(t, opt.Quiet)
	require.False(t, opt.Resume)
}

func TestAllFlags(t *testing.T) {
	opt, err := parse(t,
		"--alignment", "-",
		"--cardinality", "4",
		"--width", "9",
		"--skeleton", "3",
		"--threads", "2",
		"--prefix", "runA",
		"--output", "json",
		"--no-header",
		"--quiet",
	)
	require.NoError(t, err)
	require.Equal(t, "-", opt.Alignment)
	require.Equal(t, 4, opt.MaxCardinality)
	require.Equal(t, 9, opt.WindowWidth)
	require.Equal(t, 3, opt.SkeletonDim)
	require.Equal(t, 2, opt.Threads)
	require.Equal(t, "runA", opt.OutputPrefix)
	require.Equal(t, "json", opt.Output)
	require.False(t, opt.Header)
	require.True(t, opt.Quiet)
}

func TestHelpFlag(t *testing.T) {
	_, err := parse(t, "-h")
	require.ErrorIs(t, err, flag.ErrHelp)
}

func TestVersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "-v")
	require.NoError(t, err)
	require.True(t, opt.Version)
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		argv []string
	}{
		{"no input", nil},
		{"resume with alignment", []string{"--resume", "--alignment", "a.fasta"}},
		{"cardinality too small", []string{"--alignment", "a.fasta", "--cardinality", "1"}},
		{"width below cardinality", []string{"--alignment", "a.fasta", "--cardinality", "6", "--width", "5"}},
		{"skeleton too small", []string{"--alignment", "a.fasta", "--skeleton", "0"}},
		{"negative threads", []string{"--alignment", "a.fasta", "--threads", "-1"}},
		{"bad output format", []string{"--alignment", "a.fasta", "--output", "xml"}},
		{"empty prefix", []string{"--alignment", "a.fasta", "--prefix", ""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parse(t, tc.argv...)
			require.Error(t, err)
		})
	}
}

func TestResumeNeedsNoAlignment(t *testing.T) {
	opt, err := parse(t, "--resume", "--prefix", "runA")
	require.NoError(t, err)
	require.True(t, opt.Resume)
	require.Equal(t, "runA", opt.OutputPrefix)
}
