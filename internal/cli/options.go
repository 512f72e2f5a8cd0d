// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"crisprscan-core/scan"
	"crisprscan/internal/pipeline"
	"crisprscan/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Input      string
	OutPrefix  string
	ChromStart int

	NoTrim bool
	Keep   bool

	LineWidth     int
	EvictionLines int

	Version bool
}

// Pipeline maps parsed options onto a pipeline run.
func (o Options) Pipeline() pipeline.Options {
	return pipeline.Options{
		Input:         o.Input,
		OutPrefix:     o.OutPrefix,
		ChromStart:    o.ChromStart,
		Trim:          !o.NoTrim,
		Keep:          o.Keep,
		LineWidth:     o.LineWidth,
		EvictionLines: o.EvictionLines,
	}
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: CRISPR guide-site scanner for single-chromosome sequence files

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

	fs.StringVar(&opt.Input, "input", "", "chromosome sequence file ('-' for stdin, .gz accepted) [*]")
	fs.StringVar(&opt.OutPrefix, "output", "", "output prefix (default: input path minus extension)")
	fs.IntVar(&opt.ChromStart, "chrom-start", 1, "genomic coordinate of the first sequence base [1]")

	fs.BoolVar(&opt.NoTrim, "no-trim", false, "do not strip leading/trailing all-N lines [false]")
	fs.BoolVar(&opt.Keep, "keep-intermediate", false, "keep the per-strand _F/_R files after merging [false]")

	fs.IntVar(&opt.LineWidth, "line-width", scan.DefaultLineWidth, "sequence line width in bases [50]")
	fs.IntVar(&opt.EvictionLines, "eviction-lines", scan.DefaultEvictionLines, "clear dedup caches every N input lines [10]")

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

	// Validation
	if opt.Input == "" {
		return opt, errors.New("--input is required")
	}
	if opt.Input == "-" && opt.OutPrefix == "" {
		return opt, errors.New("--output is required when reading stdin")
	}
	if opt.ChromStart < 0 {
		return opt, errors.New("--chrom-start must be ≥ 0")
	}
	// Surface sizing mistakes (including the eviction invariant) at parse
	// time rather than mid-scan.
	if err := opt.Pipeline().Config().Validate(); err != nil {
		return opt, err
	}
	return opt, nil
}
