// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	fs := NewFlagSet("crisprscan")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseDefaults(t *testing.T) {
	opt, err := parse(t, "--input", "chr7.txt")
	require.NoError(t, err)
	assert.Equal(t, "chr7.txt", opt.Input)
	assert.Equal(t, 1, opt.ChromStart)
	assert.Equal(t, 50, opt.LineWidth)
	assert.Equal(t, 10, opt.EvictionLines)
	assert.False(t, opt.NoTrim)

	p := opt.Pipeline()
	assert.True(t, p.Trim)
	assert.Equal(t, "chr7", p.Prefix())
}

func TestParseRequiresInput(t *testing.T) {
	_, err := parse(t)
	require.Error(t, err)
}

func TestParseStdinNeedsOutput(t *testing.T) {
	_, err := parse(t, "--input", "-")
	require.Error(t, err)

	opt, err := parse(t, "--input", "-", "--output", "chrZ")
	require.NoError(t, err)
	assert.Equal(t, "chrZ", opt.Pipeline().Prefix())
}

func TestParseRejectsEvictionInvariantViolation(t *testing.T) {
	_, err := parse(t, "--input", "chr7.txt", "--line-width", "2", "--eviction-lines", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eviction")
}

func TestParseHelp(t *testing.T) {
	_, err := parse(t, "-h")
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestParseVersionSkipsValidation(t *testing.T) {
	opt, err := parse(t, "--version")
	require.NoError(t, err)
	assert.True(t, opt.Version)
}

func TestParseFlags(t *testing.T) {
	opt, err := parse(t,
		"--input", "chr7.txt.gz",
		"--output", "scratch/chr7",
		"--chrom-start", "1000",
		"--no-trim",
		"--keep-intermediate",
	)
	require.NoError(t, err)
	assert.Equal(t, 1000, opt.ChromStart)
	assert.True(t, opt.NoTrim)
	assert.True(t, opt.Keep)

	p := opt.Pipeline()
	assert.False(t, p.Trim)
	assert.True(t, p.Keep)
	assert.Equal(t, "scratch/chr7", p.Prefix())
	assert.Equal(t, 1000, p.Config().ChromStart)
}
