// core/fasta/trim.go
package fasta

import "strings"

// TrimN wraps src so that leading and trailing runs of all-'N' sequence
// lines are removed while interior runs pass through unchanged. The header
// line (the first line of the input) is never trimmed.
//
// Trailing removal is streaming: candidate all-N lines are held back and
// released only when a real sequence line follows; at end of input any held
// lines are dropped.
func TrimN(src LineSource) LineSource {
	return &trimSource{src: src}
}

type trimSource struct {
	src     LineSource
	started bool     // header already passed through
	body    bool     // a non-N sequence line has been seen
	pending []string // all-N lines that may turn out to be interior
}

func (t *trimSource) Next() (string, error) {
	if len(t.pending) > 0 {
		line := t.pending[0]
		t.pending = t.pending[1:]
		return line, nil
	}
	for {
		line, err := t.src.Next()
		if err != nil {
			// End of input (or failure) drops any held all-N tail.
			t.pending = nil
			return "", err
		}
		if !t.started {
			t.started = true
			return line, nil
		}
		if isAllN(strings.TrimSpace(line)) {
			if !t.body {
				continue // leading run
			}
			t.pending = append(t.pending, line)
			continue
		}
		t.body = true
		if len(t.pending) > 0 {
			// The held run was interior after all: replay it in
			// order, then this line.
			t.pending = append(t.pending, line)
			line = t.pending[0]
			t.pending = t.pending[1:]
		}
		return line, nil
	}
}

func (t *trimSource) Close() error { return t.src.Close() }

// isAllN matches lines of unknown padding. Lowercase 'n' is masked-but-real
// sequence, so only uppercase runs count, as in the upstream convention.
func isAllN(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != 'N' {
			return false
		}
	}
	return true
}
