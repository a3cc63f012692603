package main

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/npillmayer/emojiconv/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	root := rootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInvalidArgumentsStopBeforeOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	for _, args := range [][]string{
		{"glyphs"},
		{"chart", "google", "apple"},
		{"glyphs", "samsung"},
		{"chart", "samsung"},
		{"locale", "x"},
		{"locale", "de_DE_extra"},
		{"list"},
	} {
		dir := t.TempDir()
		out, err := execute(t, append([]string{"--files", dir}, args...)...)
		require.Error(t, err, "args %v", args)
		assert.Equal(t, core.EINVALID, core.Code(err), "args %v: %v", args, err)
		assert.Empty(t, out, "args %v", args)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries, "args %v: no output file expected", args)
	}
}

func TestArgumentErrorMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	_, err := execute(t, "--files", t.TempDir(), "locale")
	require.Error(t, err)
	assert.Contains(t, core.UserMessage(err), "accepts 1 arg(s), received 0")
}

func TestMissingInputStopsBeforeOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "emojiconv")
	defer teardown()
	//
	dir := t.TempDir()
	_, err := execute(t, "--files", dir, "-v", "chart", "google")
	assert.Equal(t, core.EMISSING, core.Code(err))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestVerbosityIsCapped(t *testing.T) {
	assert.Equal(t, 0, int(verbosity(0)))
	assert.Equal(t, 2, int(verbosity(2)))
	assert.Equal(t, 3, int(verbosity(7)))
}
