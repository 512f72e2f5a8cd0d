// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"crisprscan/internal/cli"
	"crisprscan/internal/pipeline"
	"crisprscan/internal/version"
	"crisprscan/internal/writers"
)

// RunContext parses argv, runs the chromosome pipeline, and returns a
// process exit code: 0 ok, 2 usage or load error, 3 scan/merge/write
// failure.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("crisprscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "crisprscan version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	res, err := pipeline.Run(parent, opts.Pipeline(), stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		var le *pipeline.LoadError
		if errors.As(err, &le) {
			return 2
		}
		return 3
	}
	_, _ = fmt.Fprintf(outw, "chr%s\t%s\n", res.Chrom, res.MergedPath)
	return flushCode(outw, stderr, 0)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// flushCode flushes buffered stdout, downgrading broken pipes to success the
// way a shell pipeline expects.
func flushCode(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}
