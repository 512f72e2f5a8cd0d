// internal/merge/merge.go

// Package merge combines the per-strand guide streams into one
// DIRECTION-tagged stream: the forward header gains a DIRECTION column, all
// forward rows (tagged F) come before all reverse rows (tagged R), and the
// reverse stream's own header is dropped. Rows keep their per-strand order;
// no coordinate interleaving happens here.
package merge

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Streams writes the merged, tagged output of fwd then rev onto w.
func Streams(w io.Writer, fwd, rev io.Reader) error {
	bw := bufio.NewWriter(w)

	sc := bufio.NewScanner(fwd)
	first := true
	for sc.Scan() {
		tag := "F"
		if first {
			tag = "DIRECTION"
			first = false
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", strings.TrimSpace(sc.Text()), tag); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("merge forward: %w", err)
	}

	sc = bufio.NewScanner(rev)
	first = true
	for sc.Scan() {
		if first {
			first = false // redundant header
			continue
		}
		if _, err := fmt.Fprintf(bw, "%s\tR\n", strings.TrimSpace(sc.Text())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("merge reverse: %w", err)
	}

	return bw.Flush()
}

// Files merges the two per-strand files into outPath.
func Files(outPath, fwdPath, revPath string) error {
	ff, err := os.Open(fwdPath)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	defer func() { _ = ff.Close() }()

	fr, err := os.Open(revPath)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	defer func() { _ = fr.Close() }()

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	if err := Streams(out, ff, fr); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
