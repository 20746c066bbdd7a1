// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/kjemmett/TARGet/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Alignment string // aligned FASTA ("-" for stdin)

	// Window bounds
	MaxCardinality int // s: max segregating sites per window
	WindowWidth    int // w: max site-index span per window
	SkeletonDim    int // max skeleton dimension for the barcode engine

	// Performance
	Threads int

	// Output
	OutputPrefix string
	Output       string // text | json
	Header       bool   // true unless --no-header
	Quiet        bool

	// Session
	Resume bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: topological detection of recombination in aligned sequences

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Input
	fs.StringVar(&opt.Alignment, "alignment", "", "aligned FASTA file ('-' for stdin, .gz ok) [*]")

	// Window bounds
	fs.IntVar(&opt.MaxCardinality, "cardinality", 8, "max segregating sites per window [8]")
	fs.IntVar(&opt.WindowWidth, "width", 12, "max window span in site-index units [12]")
	fs.IntVar(&opt.SkeletonDim, "skeleton", 2, "max skeleton dimension for persistence [2]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.OutputPrefix, "prefix", "target", "output file prefix [target]")
	fs.StringVar(&opt.Output, "output", "text", "stdout format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in TSV outputs [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress bar and advisory logging [false]")

	// Session
	fs.BoolVar(&opt.Resume, "resume", false, "resume from <prefix>.session.gz instead of recomputing [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	switch {
	case !opt.Resume && opt.Alignment == "":
		return opt, errors.New("provide --alignment (or --resume with a prior session)")
	case opt.Resume && opt.Alignment != "":
		return opt, errors.New("--resume conflicts with --alignment")
	}
	if opt.MaxCardinality < 2 {
		return opt, errors.New("--cardinality must be ≥ 2")
	}
	if opt.WindowWidth < opt.MaxCardinality {
		return opt, errors.New("--width must be ≥ --cardinality")
	}
	if opt.SkeletonDim < 1 {
		return opt, errors.New("--skeleton must be ≥ 1")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.OutputPrefix == "" {
		return opt, errors.New("--prefix must not be empty")
	}
	return opt, nil
}
