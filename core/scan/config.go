// core/scan/config.go
package scan

import (
	"fmt"

	"crisprscan-core/pam"
)

// Defaults match reference genome FASTA dumps: 50-base lines, a two-line
// window, caches cleared every 10 lines.
const (
	DefaultLineWidth     = 50
	DefaultEvictionLines = 10
)

// Config sizes the sliding window. The zero value is not usable; start from
// Default().
type Config struct {
	// LineWidth is the fixed width of input sequence lines in bases. The
	// window advances by exactly one line width per step.
	LineWidth int

	// WindowCapacity is how many bases the window holds when full. It also
	// derives the right-edge safety margin for reverse extraction, so it
	// must stay consistent with LineWidth (at least two lines).
	WindowCapacity int

	// EvictionLines is how often, in input lines consumed, both dedup
	// caches are cleared to bound memory. Safe only while
	// EvictionLines*LineWidth exceeds twice the longest candidate span:
	// a coordinate evicted from a cache must be impossible to re-observe
	// in any later window.
	EvictionLines int

	// ChromStart is the absolute genomic coordinate of the first sequence
	// base in the input.
	ChromStart int
}

// Default returns the standard 50-base-line configuration.
func Default() Config {
	return Config{
		LineWidth:      DefaultLineWidth,
		WindowCapacity: 2 * DefaultLineWidth,
		EvictionLines:  DefaultEvictionLines,
	}
}

// Validate rejects configurations that would break the scan, including any
// that violate the eviction invariant documented on EvictionLines.
func (c Config) Validate() error {
	if c.LineWidth <= 0 {
		return fmt.Errorf("scan: line width must be positive, got %d", c.LineWidth)
	}
	if c.WindowCapacity < 2*c.LineWidth {
		return fmt.Errorf("scan: window capacity %d cannot hold two %d-base lines", c.WindowCapacity, c.LineWidth)
	}
	if c.EvictionLines <= 0 {
		return fmt.Errorf("scan: eviction period must be positive, got %d", c.EvictionLines)
	}
	if c.EvictionLines*c.LineWidth <= 2*pam.ReverseSpan {
		return fmt.Errorf("scan: eviction period too short: %d lines x %d bases must exceed %d",
			c.EvictionLines, c.LineWidth, 2*pam.ReverseSpan)
	}
	return nil
}
