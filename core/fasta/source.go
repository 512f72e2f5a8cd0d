// core/fasta/source.go

// Package fasta provides line-oriented access to single-chromosome sequence
// files: a simple header line followed by fixed-width sequence lines, the
// shape produced by flattening one FASTA record to plain text.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineSource yields input lines one at a time; Next returns io.EOF at end.
type LineSource interface {
	Next() (string, error)
	Close() error
}

// FileSource reads a chromosome file line by line. Plain files, gzip, and
// "-" for stdin are all accepted.
type FileSource struct {
	sc      *bufio.Scanner
	closers []io.Closer
}

func newFileSource(r io.Reader, closers ...io.Closer) *FileSource {
	sc := bufio.NewScanner(r)
	// Tolerate over-wide lines from non-standard dumps (up to 64 MiB).
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	return &FileSource{sc: sc, closers: closers}
}

// Open opens path for scanning. "-" selects stdin; gzip input is detected by
// its magic bytes or a .gz suffix and decompressed on the fly.
func Open(path string) (*FileSource, error) {
	if path == "-" {
		return newFileSource(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if gzipped(fh, path) {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		// Close order matters: decompressor before file.
		return newFileSource(gr, gr, fh), nil
	}
	return newFileSource(fh, fh), nil
}

// FromReader wraps an already-open reader. The caller keeps ownership;
// Close releases nothing.
func FromReader(r io.Reader) *FileSource { return newFileSource(r) }

// Next returns the next line without its terminator, or io.EOF.
func (f *FileSource) Next() (string, error) {
	if f.sc.Scan() {
		return f.sc.Text(), nil
	}
	if err := f.sc.Err(); err != nil {
		return "", fmt.Errorf("fasta scan: %w", err)
	}
	return "", io.EOF
}

// Close releases everything Open acquired, first error wins.
func (f *FileSource) Close() error {
	var err error
	for _, c := range f.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// gzipped sniffs the two gzip magic bytes (1F 8B), rewinding afterwards; a
// .gz suffix also counts for streams where the sniff comes up short.
func gzipped(fh *os.File, path string) bool {
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	return (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz")
}
