// core/guide/rc.go
package guide

var complement [256]byte

func init() {
	pairs := [...][2]byte{{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}, {'N', 'N'}}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[0]+'a'-'A'] = p[1] + 'a' - 'A'
	}
}

// RevComp returns the reverse complement of seq, preserving case so masking
// information survives the transform. Bytes outside {A,C,G,T,N} complement
// to 'N'.
//
// Reverse-strand Guides are stored un-complemented; apply RevComp to recover
// the guide as it reads on its own strand.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
