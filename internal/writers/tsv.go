// internal/writers/tsv.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"crisprscan-core/guide"
)

// Header is the column row shared by the per-strand and merged guide files.
const Header = "CHR#\tSTART\tSTOP\tSEQUENCE\tN_COUNT\tN_LOWERCASE"

// StrandTSV appends guide records for a single strand as tab-separated rows.
// The header row is written up front, before any scan output arrives.
type StrandTSV struct {
	bw *bufio.Writer
	c  io.Closer
}

// NewStrandTSV writes the header to w and returns a sink over it.
func NewStrandTSV(w io.Writer) (*StrandTSV, error) {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return nil, err
	}
	t := &StrandTSV{bw: bw}
	if c, ok := w.(io.Closer); ok {
		t.c = c
	}
	return t, nil
}

// CreateStrandTSV creates (truncating) path and returns a sink that owns the
// file handle.
func CreateStrandTSV(path string) (*StrandTSV, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	t, err := NewStrandTSV(fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return t, nil
}

// Append writes one guide row. Column order matches Header; note N_COUNT
// precedes N_LOWERCASE.
func (t *StrandTSV) Append(g guide.Guide) error {
	_, err := fmt.Fprintf(t.bw, "chr%s\t%d\t%d\t%s\t%d\t%d\n",
		g.Chrom, g.Start, g.Stop, g.Seq, g.NCount, g.LowercaseCount)
	return err
}

// Close flushes buffered rows and releases the underlying file, if owned.
func (t *StrandTSV) Close() error {
	err := t.bw.Flush()
	if t.c != nil {
		if cerr := t.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
