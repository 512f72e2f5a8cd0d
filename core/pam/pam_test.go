// core/pam/pam_test.go
package pam

import (
	"bytes"
	"strings"
	"testing"
)

func TestForwardAt(t *testing.T) {
	// 21 bases of padding, then "AGG": GG sits at offsets 22,23.
	buf := []byte(strings.Repeat("T", 21) + "AGG")

	seq, ok := ForwardAt(buf, 22)
	if !ok {
		t.Fatal("expected forward hit at idx=22")
	}
	if len(seq) != ForwardSpan {
		t.Fatalf("candidate length = %d, want %d", len(seq), ForwardSpan)
	}
	if !bytes.Equal(seq, buf[1:24]) {
		t.Errorf("candidate = %q, want %q", seq, buf[1:24])
	}
}

func TestForwardAtCaseInsensitive(t *testing.T) {
	buf := []byte(strings.Repeat("a", 21) + "tgg")
	if _, ok := ForwardAt(buf, 22); !ok {
		t.Error("lowercase gg should trigger a forward hit")
	}
}

func TestForwardAtBounds(t *testing.T) {
	cases := []struct {
		name string
		buf  string
		idx  int
	}{
		{"too close to left edge", strings.Repeat("G", 30), 20},
		{"negative upstream", "GG", 0},
		{"right edge overflow", strings.Repeat("T", 21) + "GG", 23},
		{"not GG", strings.Repeat("T", 21) + "GA", 21},
	}
	for _, c := range cases {
		if _, ok := ForwardAt([]byte(c.buf), c.idx); ok {
			t.Errorf("%s: expected no hit", c.name)
		}
	}
}

func TestReverseAt(t *testing.T) {
	buf := []byte("CC" + strings.Repeat("A", 22))

	seq, ok := ReverseAt(buf, 0)
	if !ok {
		t.Fatal("expected reverse hit at idx=0")
	}
	if len(seq) != ReverseSpan {
		t.Fatalf("candidate length = %d, want %d", len(seq), ReverseSpan)
	}
	if !bytes.Equal(seq, buf[:24]) {
		t.Errorf("candidate = %q, want %q", seq, buf[:24])
	}
}

func TestReverseAtBounds(t *testing.T) {
	// CC present but fewer than 24 bases remain.
	buf := []byte("CC" + strings.Repeat("A", 20))
	if _, ok := ReverseAt(buf, 0); ok {
		t.Error("expected no hit when candidate overruns buffer")
	}
	if _, ok := ReverseAt(buf, -1); ok {
		t.Error("negative idx must be a no-hit")
	}
}

func TestClassifyMutuallyExclusive(t *testing.T) {
	// Every offset of every buffer resolves to exactly one outcome, and a
	// G-trigger can never also be a C-trigger.
	buf := []byte(strings.Repeat("T", 21) + "GGCC" + strings.Repeat("A", 24))
	for idx := 0; idx < len(buf); idx++ {
		_, fwd := ForwardAt(buf, idx)
		_, rev := ReverseAt(buf, idx)
		if fwd && rev {
			t.Fatalf("idx=%d classified as both strands", idx)
		}
		got := Classify(buf, idx)
		switch {
		case fwd && got != ForwardHit:
			t.Errorf("idx=%d: Classify=%v, want ForwardHit", idx, got)
		case rev && got != ReverseHit:
			t.Errorf("idx=%d: Classify=%v, want ReverseHit", idx, got)
		case !fwd && !rev && got != NoHit:
			t.Errorf("idx=%d: Classify=%v, want NoHit", idx, got)
		}
	}
}
