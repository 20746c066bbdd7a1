// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kjemmett/TARGet/core/alignment"
	"github.com/kjemmett/TARGet/core/breakpoint"
	"github.com/kjemmett/TARGet/core/compose"
	"github.com/kjemmett/TARGet/core/dist"
	"github.com/kjemmett/TARGet/core/rips"
	"github.com/kjemmett/TARGet/core/session"
	"github.com/kjemmett/TARGet/core/sites"
	"github.com/kjemmett/TARGet/internal/cli"
	"github.com/kjemmett/TARGet/internal/progress"
	"github.com/kjemmett/TARGet/internal/report"
	"github.com/kjemmett/TARGet/internal/version"
	"github.com/kjemmett/TARGet/internal/writers"
	"github.com/kjemmett/TARGet/pkg/api"
)

// RunContext parses argv and executes the full pipeline. Exit codes follow
// the usual convention: 0 ok (including "no recombination detected"),
// 2 usage/input/session errors, 3 write errors, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("target")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "target version %s\n", version.Version)
		return 0
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if opts.Quiet {
		log.SetLevel(logrus.ErrorLevel)
	}

	var result api.ResultV1
	if opts.Resume {
		result, err = resume(opts, log)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	} else {
		var code int
		result, code = fresh(parent, opts, log, stderr)
		if code != 0 {
			return code
		}
	}

	if err := writeArtifacts(opts, result); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	var werr error
	switch opts.Output {
	case "json":
		werr = writers.WriteJSON(outw, result)
	default:
		werr = writers.WriteBlocks(outw, opts.Header, result.Blocks)
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

// Run is the background-context entry point.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func fresh(ctx context.Context, opts cli.Options, log *logrus.Logger, stderr io.Writer) (api.ResultV1, int) {
	aln, err := alignment.ReadFile(opts.Alignment)
	if err != nil {
		log.Error(err)
		return api.ResultV1{}, 2
	}
	set, err := sites.Reduce(aln)
	if err != nil {
		log.Error(err)
		return api.ResultV1{}, 2
	}
	log.WithFields(logrus.Fields{
		"sequences": aln.Len(),
		"sites":     set.Len(),
	}).Info("alignment reduced")

	cfg := compose.Config{
		MaxCardinality: opts.MaxCardinality,
		WindowWidth:    opts.WindowWidth,
		SkeletonDim:    opts.SkeletonDim,
		Threads:        opts.Threads,
	}
	var bar *progress.Bar
	cb := func(done, total int) {
		if opts.Quiet {
			return
		}
		if bar == nil {
			bar = progress.New(stderr, total)
		}
		bar.Increment()
	}
	res, err := compose.Run(ctx, cfg, set, rips.ComputeBarcode, cb)
	bar.Wait()
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return api.ResultV1{}, 130
		}
		log.Error(err)
		return api.ResultV1{}, 2
	}
	if res.Stats.Failed > 0 {
		log.WithField("windows", res.Stats.Failed).Warn("engine failures, windows dropped")
	}

	final := res.Table.Final()
	analysis := breakpoint.Extract(final, set.Len())
	if analysis.Empty() {
		log.Info("no recombination detected")
	}

	dm, err := dist.Hamming(set.Reduced)
	if err != nil {
		log.Error(err)
		return api.ResultV1{}, 2
	}
	s := &session.Session{
		Labels:    set.Labels,
		Positions: set.Positions,
		Reduced:   set.Reduced,
		DistN:     dm.N(),
		DistData:  dm.Dense(),
		Final:     final,
		Blocks:    analysis.Blocks,
	}
	if err := s.WriteFile(opts.OutputPrefix + ".session.gz"); err != nil {
		log.Error(err)
		return api.ResultV1{}, 3
	}
	return report.Build(set, final, analysis, res.Stats), 0
}

func resume(opts cli.Options, log *logrus.Logger) (api.ResultV1, error) {
	s, err := session.ReadFile(opts.OutputPrefix + ".session.gz")
	if err != nil {
		return api.ResultV1{}, err
	}
	set := &sites.Set{Labels: s.Labels, Positions: s.Positions, Reduced: s.Reduced}
	analysis := breakpoint.Extract(s.Final, set.Len())
	log.WithField("sites", set.Len()).Info("session resumed")
	if analysis.Empty() {
		log.Info("no recombination detected")
	}
	return report.Build(set, s.Final, analysis, compose.Stats{}), nil
}

func writeArtifacts(opts cli.Options, r api.ResultV1) error {
	if err := writeFile(opts.OutputPrefix+".blocks.tsv", func(w io.Writer) error {
		return writers.WriteBlocks(w, opts.Header, r.Blocks)
	}); err != nil {
		return err
	}
	return writeFile(opts.OutputPrefix+".bars.tsv", func(w io.Writer) error {
		return writers.WriteBars(w, opts.Header, r.Bars)
	})
}

func writeFile(path string, fill func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
