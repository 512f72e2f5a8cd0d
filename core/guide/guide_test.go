// core/guide/guide_test.go
package guide

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewScores(t *testing.T) {
	cases := []struct {
		seq       string
		nCount    int
		lowercase int
	}{
		{"ACGTACGTACGTACGTACGTNGG", 1, 0},
		{"acgtacgtacgtacgtacgtngg", 1, 23},
		{"ACGTacgtACGTACGTACGTAGG", 0, 4},
		{"NNNNNNNNNNNNNNNNNNNNNGG", 21, 0},
		{"nNnNnNnNnNnNnNnNnNnNnGG", 21, 11},
		{strings.Repeat("A", 23), 0, 0},
	}
	for _, c := range cases {
		g := New("1", 100, 122, []byte(c.seq))
		if g.NCount != c.nCount {
			t.Errorf("%q: NCount = %d, want %d", c.seq, g.NCount, c.nCount)
		}
		if g.LowercaseCount != c.lowercase {
			t.Errorf("%q: LowercaseCount = %d, want %d", c.seq, g.LowercaseCount, c.lowercase)
		}
		if g.NCount > len(c.seq) || g.LowercaseCount > len(c.seq) {
			t.Errorf("%q: score exceeds sequence length", c.seq)
		}
	}
}

func TestNewPreservesLiteral(t *testing.T) {
	raw := "ccnACGTacgtACGTACGTACGTa"
	g := New("X", 5, 28, []byte(raw))
	if g.Seq != raw {
		t.Errorf("sequence was normalized: %q", g.Seq)
	}
	if g.Chrom != "X" || g.Start != 5 || g.Stop != 28 {
		t.Errorf("coordinates mangled: %+v", g)
	}
}

func TestRevComp(t *testing.T) {
	got := RevComp([]byte("ACGTN"))
	if string(got) != "NACGT" {
		t.Errorf("RevComp(ACGTN) = %q, want NACGT", got)
	}
}

func TestRevCompPreservesCase(t *testing.T) {
	got := RevComp([]byte("acgTN"))
	if string(got) != "NAcgt" {
		t.Errorf("RevComp(acgTN) = %q, want NAcgt", got)
	}
}

func TestRevCompRoundTrip(t *testing.T) {
	in := []byte("AAAAACCCCCgggggtttttNGG")
	if !bytes.Equal(RevComp(RevComp(in)), in) {
		t.Error("round-trip revcomp failed")
	}
}

func TestRevCompUnknownBase(t *testing.T) {
	if string(RevComp([]byte("X"))) != "N" {
		t.Error("unknown bases should complement to N")
	}
	if RevComp(nil) != nil {
		t.Error("empty input should return nil")
	}
}
