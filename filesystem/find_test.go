package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectPaths maps matches to their full paths, order-independent checks
// are done on these
func collectPaths(matches []*Node) []string {
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, m.Path())
	}
	return paths
}

func TestFindByName_AcrossSubtree(t *testing.T) {
	fs := newTestFS(t)
	a := mustCreate(t, fs, fs.Root(), "a", Dir)
	b := mustCreate(t, fs, a, "b", Dir)
	mustCreate(t, fs, a, "log", File)
	mustCreate(t, fs, b, "log", Dir)
	mustCreate(t, fs, b, "other", File)

	matches := FindByName(fs.Root(), "log")
	assert.ElementsMatch(t, []string{"/a/log", "/a/b/log"}, collectPaths(matches))
}

func TestFindByName_NoMatch(t *testing.T) {
	fs := newTestFS(t)
	a := mustCreate(t, fs, fs.Root(), "a", Dir)
	mustCreate(t, fs, a, "f", File)

	assert.Empty(t, FindByName(fs.Root(), "missing"))
}

// A matched directory is recursed into, so a directory named like its own
// descendant yields both.
func TestFindByName_MatchedDirRecursed(t *testing.T) {
	fs := newTestFS(t)
	logDir := mustCreate(t, fs, fs.Root(), "log", Dir)
	mustCreate(t, fs, logDir, "log", File)

	matches := FindByName(fs.Root(), "log")
	assert.ElementsMatch(t, []string{"/log", "/log/log"}, collectPaths(matches))
}

func TestFindByName_FromSubdirectory(t *testing.T) {
	fs := newTestFS(t)
	a := mustCreate(t, fs, fs.Root(), "a", Dir)
	mustCreate(t, fs, fs.Root(), "x", File)
	mustCreate(t, fs, a, "x", File)

	// Searching below the root only sees that subtree
	matches := FindByName(a, "x")
	require.Len(t, matches, 1)
	assert.Equal(t, "/a/x", matches[0].Path())
}

func TestFindByName_OnFile(t *testing.T) {
	fs := newTestFS(t)
	f := mustCreate(t, fs, fs.Root(), "f", File)

	assert.Nil(t, FindByName(f, "f"))
}
