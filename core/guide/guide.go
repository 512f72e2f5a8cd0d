// core/guide/guide.go
package guide

// Guide is one candidate guide-RNA site. The sequence is stored exactly as it
// was read from the window: case is preserved (lowercase marks repeat-masked
// bases) and reverse-strand candidates keep the forward-read orientation.
// A Guide is immutable once constructed.
type Guide struct {
	Chrom string
	Start int // absolute genomic coordinate, inclusive
	Stop  int // absolute genomic coordinate, inclusive
	Seq   string

	// Quality proxies, both computed at construction.
	NCount         int // ambiguous bases, case-insensitive
	LowercaseCount int // masked bases
}

// New builds a scored Guide from the literal window slice. Both counts come
// from a single pass over seq.
func New(chrom string, start, stop int, seq []byte) Guide {
	g := Guide{Chrom: chrom, Start: start, Stop: stop, Seq: string(seq)}
	for _, b := range seq {
		if b >= 'a' && b <= 'z' {
			g.LowercaseCount++
		}
		if b == 'N' || b == 'n' {
			g.NCount++
		}
	}
	return g
}
