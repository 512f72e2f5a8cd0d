// internal/pipeline/pipeline.go

// Package pipeline wires one chromosome scan end to end: open the input,
// optionally trim N padding, run the sliding-window scan into per-strand
// TSV files, merge them into one DIRECTION-tagged file, and clean up the
// intermediates.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"crisprscan-core/fasta"
	"crisprscan-core/scan"

	"crisprscan/internal/merge"
	"crisprscan/internal/writers"
)

// Options configures a single-chromosome run.
type Options struct {
	Input      string // path or "-" for stdin
	OutPrefix  string // defaults to Input minus its extension
	ChromStart int    // genomic coordinate of the first sequence base
	Trim       bool   // strip leading/trailing all-N lines
	Keep       bool   // keep the per-strand intermediates after merging

	LineWidth     int // 0 = scan.DefaultLineWidth
	EvictionLines int // 0 = scan.DefaultEvictionLines
}

// Result reports what a successful run produced.
type Result struct {
	Chrom       string
	MergedPath  string
	ForwardPath string
	ReversePath string
}

// LoadError marks failures that happen before any scanning starts — a bad
// configuration or an unreadable input — so callers can separate them from
// mid-run failures when choosing an exit code.
type LoadError struct{ Err error }

func (e *LoadError) Error() string { return e.Err.Error() }
func (e *LoadError) Unwrap() error { return e.Err }

// Config resolves the scanner configuration implied by the options.
func (o Options) Config() scan.Config {
	cfg := scan.Default()
	if o.LineWidth > 0 {
		cfg.LineWidth = o.LineWidth
		cfg.WindowCapacity = 2 * o.LineWidth
	}
	if o.EvictionLines > 0 {
		cfg.EvictionLines = o.EvictionLines
	}
	cfg.ChromStart = o.ChromStart
	return cfg
}

// Prefix resolves the output prefix for the run.
func (o Options) Prefix() string {
	if o.OutPrefix != "" {
		return o.OutPrefix
	}
	return trimExt(o.Input)
}

// Run executes the whole workflow. Fatal errors abort the run and surface to
// the caller; a cleanup miss on an intermediate file is only reported to
// stderr because the merged result is already complete at that point.
func Run(ctx context.Context, opts Options, stderr io.Writer) (Result, error) {
	sc, err := scan.New(opts.Config())
	if err != nil {
		return Result{}, &LoadError{Err: err}
	}

	src, err := fasta.Open(opts.Input)
	if err != nil {
		return Result{}, &LoadError{Err: err}
	}
	var ls scan.LineSource = src
	if opts.Trim {
		ls = fasta.TrimN(src)
	}
	sc.Open(ls)

	prefix := opts.Prefix()
	res := Result{
		MergedPath:  prefix + "_guides.tsv",
		ForwardPath: prefix + "_F.tsv",
		ReversePath: prefix + "_R.tsv",
	}

	fwd, err := writers.CreateStrandTSV(res.ForwardPath)
	if err != nil {
		_ = ls.Close()
		return Result{}, err
	}
	rev, err := writers.CreateStrandTSV(res.ReversePath)
	if err != nil {
		_ = fwd.Close()
		_ = ls.Close()
		return Result{}, err
	}

	scanErr := sc.Scan(ctx, fwd, rev) // closes the source
	if err := fwd.Close(); scanErr == nil {
		scanErr = err
	}
	if err := rev.Close(); scanErr == nil {
		scanErr = err
	}
	if scanErr != nil {
		return Result{}, scanErr
	}
	res.Chrom = sc.Chrom()

	if err := merge.Files(res.MergedPath, res.ForwardPath, res.ReversePath); err != nil {
		return Result{}, err
	}

	if !opts.Keep {
		for _, p := range []string{res.ForwardPath, res.ReversePath} {
			if err := os.Remove(p); err != nil {
				fmt.Fprintf(stderr, "crisprscan: cleanup: %v\n", err)
			}
		}
	}
	return res, nil
}

// trimExt strips a trailing .gz, then one sequence-file extension, so
// "chr7.txt.gz" becomes "chr7" and the outputs land beside the input.
func trimExt(path string) string {
	p := strings.TrimSuffix(path, ".gz")
	for _, ext := range []string{".txt", ".fa", ".fasta", ".seq"} {
		if strings.HasSuffix(p, ext) {
			return strings.TrimSuffix(p, ext)
		}
	}
	return p
}
