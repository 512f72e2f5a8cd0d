// core/scan/scanner.go

// Package scan walks one chromosome's sequence through a bounded sliding
// window and emits every deduplicated guide-site hit, both strands, in a
// single pass.
//
// Reverse-strand hits carry the literal forward-read window slice, not its
// reverse complement; see guide.RevComp for recovering the strand-local
// reading.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"crisprscan-core/guide"
	"crisprscan-core/pam"
)

var (
	// ErrNotOpen is returned when Scan runs before Open attached a source.
	ErrNotOpen = errors.New("scan: input source not open")
	// ErrMalformedHeader is returned when the first input line carries no
	// chromosome marker.
	ErrMalformedHeader = errors.New("scan: header lacks chromosome marker")
)

// LineSource is the minimal line-oriented input the scanner consumes.
// Next returns io.EOF at end of input.
type LineSource interface {
	Next() (string, error)
	Close() error
}

// Sink receives guide records for one strand. Each strand has exactly one
// producer; Append calls arrive in non-decreasing window order.
type Sink interface {
	Append(guide.Guide) error
}

// Scanner owns the window buffer, the running genomic offset, and both
// dedup caches. It is single-use: one chromosome per Scanner.
type Scanner struct {
	cfg Config
	src LineSource

	// buf is a view into a fixed-capacity array; advancing the window
	// compacts in place rather than reslicing into fresh allocations.
	buf       []byte
	winOffset int
	lines     int
	chrom     string

	seenFwd map[int]struct{}
	seenRev map[int]struct{}
}

// New validates cfg and returns a Scanner ready for Open.
func New(cfg Config) (*Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scanner{
		cfg: cfg,
		// One line of slack: the append of the incoming line happens
		// before the advance that frees its room.
		buf:     make([]byte, 0, cfg.WindowCapacity+cfg.LineWidth),
		seenFwd: make(map[int]struct{}),
		seenRev: make(map[int]struct{}),
	}, nil
}

// Open attaches the input source. It must be called before Scan.
func (s *Scanner) Open(src LineSource) { s.src = src }

// Chrom returns the chromosome identifier parsed from the header; empty
// until Scan has consumed the first line.
func (s *Scanner) Chrom() string { return s.chrom }

// Scan drains the source, emitting deduplicated hits to fwd and rev. The
// source is closed on return. Hits are emitted per window pass; like the
// upstream format assumes, the tail shorter than one window advance past the
// final appended line is not revisited. An input whose whole sequence fits
// in the priming line still gets exactly one pass.
func (s *Scanner) Scan(ctx context.Context, fwd, rev Sink) error {
	if s.src == nil {
		return ErrNotOpen
	}
	defer func() { _ = s.src.Close() }()

	if err := s.readHeader(); err != nil {
		return err
	}

	// Prime the window with the first sequence line; the loop below adds
	// the second before the first scan, so the first pass sees two lines.
	line, err := s.next()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	s.buf = append(s.buf, line...)

	scanned := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := s.next()
		if errors.Is(err, io.EOF) {
			// Single-line chromosomes end here with the primed
			// bases never examined; give them their one pass.
			if !scanned && len(s.buf) > 1 {
				return s.scanWindow(fwd, rev)
			}
			return nil
		}
		if err != nil {
			return err
		}
		s.buf = append(s.buf, line...)

		if s.lines%s.cfg.EvictionLines == 0 {
			s.seenFwd = make(map[int]struct{})
			s.seenRev = make(map[int]struct{})
		}

		scanned = true
		if err := s.scanWindow(fwd, rev); err != nil {
			return err
		}
		s.advance()
	}
}

// readHeader consumes line one and extracts the chromosome identifier: the
// token after the first 'r', so ">chr7" yields "7".
func (s *Scanner) readHeader() error {
	line, err := s.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty input", ErrMalformedHeader)
		}
		return err
	}
	i := strings.IndexByte(line, 'r')
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	s.chrom = strings.TrimSpace(line[i+1:])
	return nil
}

// next reads one whitespace-stripped line and bumps the consumed-line count
// the eviction period is measured against.
func (s *Scanner) next() (string, error) {
	line, err := s.src.Next()
	if err != nil {
		return "", err
	}
	s.lines++
	return strings.TrimSpace(line), nil
}

// scanWindow runs both detectors over every interior offset of the current
// buffer. Accepted hits are scored, emitted, and remembered; coordinates
// already in a cache drop silently.
func (s *Scanner) scanWindow(fwd, rev Sink) error {
	revGate := s.cfg.WindowCapacity - pam.ReverseSpan
	for idx := 0; idx < len(s.buf)-1; idx++ {
		if idx >= pam.Upstream {
			if seq, ok := pam.ForwardAt(s.buf, idx); ok {
				start := s.cfg.ChromStart + s.winOffset + idx - pam.Upstream
				if _, dup := s.seenFwd[start]; !dup {
					if err := fwd.Append(guide.New(s.chrom, start, start+pam.ForwardSpan-1, seq)); err != nil {
						return err
					}
					s.seenFwd[start] = struct{}{}
				}
			}
		}
		if idx <= revGate {
			if seq, ok := pam.ReverseAt(s.buf, idx); ok {
				start := s.cfg.ChromStart + s.winOffset + idx
				if _, dup := s.seenRev[start]; !dup {
					if err := rev.Append(guide.New(s.chrom, start, start+pam.ReverseSpan-1, seq)); err != nil {
						return err
					}
					s.seenRev[start] = struct{}{}
				}
			}
		}
	}
	return nil
}

// advance drops one line width from the front of the buffer, compacting in
// place, and moves the genomic offset forward by the same amount.
func (s *Scanner) advance() {
	n := s.cfg.LineWidth
	if n > len(s.buf) {
		n = len(s.buf)
	}
	kept := copy(s.buf, s.buf[n:])
	s.buf = s.buf[:kept]
	s.winOffset += s.cfg.LineWidth
}
