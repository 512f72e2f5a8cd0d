// core/pam/pam.go
package pam

// Spans of the fixed pattern family. A forward candidate is 20 guide bases,
// the N of the PAM, and the GG; a reverse candidate is the CC seen on the
// forward read plus the 22 bases downstream of it.
const (
	GuideLen    = 20
	ForwardSpan = 23
	ReverseSpan = 24

	// Upstream is how many bases must precede the first G of a forward
	// "GG" for the full candidate to fit in the buffer.
	Upstream = 21
)

// Outcome classifies a single buffer offset.
type Outcome int

const (
	NoHit Outcome = iota
	ForwardHit
	ReverseHit
)

// ForwardAt reports whether a forward-strand NGG motif has its GG at
// idx,idx+1 with the full 23-base candidate inside buf, and returns the
// candidate slice. Out-of-range offsets are not an error; they are no-hits.
func ForwardAt(buf []byte, idx int) ([]byte, bool) {
	if idx < Upstream || idx+2 > len(buf) {
		return nil, false
	}
	if !isG(buf[idx]) || !isG(buf[idx+1]) {
		return nil, false
	}
	return buf[idx-Upstream : idx+2], true
}

// ReverseAt reports whether a reverse-strand motif (CC on the forward read)
// starts at idx with the full 24-base candidate inside buf, and returns the
// candidate slice in forward-read orientation.
func ReverseAt(buf []byte, idx int) ([]byte, bool) {
	if idx < 0 || idx+ReverseSpan > len(buf) {
		return nil, false
	}
	if !isC(buf[idx]) || !isC(buf[idx+1]) {
		return nil, false
	}
	return buf[idx : idx+ReverseSpan], true
}

// Classify resolves one offset into exactly one outcome. The triggering base
// differs per strand (G vs C), so an offset can never hit both.
func Classify(buf []byte, idx int) Outcome {
	if _, ok := ForwardAt(buf, idx); ok {
		return ForwardHit
	}
	if _, ok := ReverseAt(buf, idx); ok {
		return ReverseHit
	}
	return NoHit
}

func isG(b byte) bool { return b == 'G' || b == 'g' }
func isC(b byte) bool { return b == 'C' || b == 'c' }
