package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"simple", "/a/b/c", []string{"a", "b", "c"}},
		{"no leading slash", "a/b", []string{"a", "b"}},
		{"trailing slash", "/a/b/", []string{"a", "b"}},
		{"doubled separators", "//a///b", []string{"a", "b"}},
		{"stray whitespace", " /a/b\r\n", []string{"a", "b"}},
		{"empty", "", nil},
		{"only separators", "///", nil},
		{"only whitespace", " \t\r\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitPath(tt.path)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Basic(t *testing.T) {
	fs := newTestFS(t)
	a := mustCreate(t, fs, fs.Root(), "a", Dir)
	b := mustCreate(t, fs, a, "b", Dir)
	f := mustCreate(t, fs, b, "f", File)

	got, err := Resolve(fs.Root(), "/a/b/f")
	require.NoError(t, err)
	assert.Equal(t, f, got)

	got, err = Resolve(fs.Root(), "/a")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	// Resolution can start from any directory, not just the root
	got, err = Resolve(a, "b/f")
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestResolve_NotFound(t *testing.T) {
	fs := newTestFS(t)
	mustCreate(t, fs, fs.Root(), "a", Dir)

	_, err := Resolve(fs.Root(), "/a/missing")
	assert.ErrorIs(t, err, ErrPathNotFound)
	_, err = Resolve(fs.Root(), "/missing/deeper")
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestResolve_ThroughFile(t *testing.T) {
	fs := newTestFS(t)
	a := mustCreate(t, fs, fs.Root(), "a", Dir)
	mustCreate(t, fs, a, "f", File)

	// Files have no children, so a file as intermediate component fails
	_, err := Resolve(fs.Root(), "/a/f/below")
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestResolve_EmptyPath(t *testing.T) {
	fs := newTestFS(t)

	// The root is not addressable via an empty path
	_, err := Resolve(fs.Root(), "")
	assert.ErrorIs(t, err, ErrPathNotFound)
	_, err = Resolve(fs.Root(), "///")
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestResolveParent_CaptureMissing(t *testing.T) {
	fs := newTestFS(t)
	a := mustCreate(t, fs, fs.Root(), "a", Dir)

	parent, name, err := ResolveParent(fs.Root(), "/a/newfile")
	require.NoError(t, err)
	assert.Equal(t, a, parent)
	assert.Equal(t, "newfile", name)

	parent, name, err = ResolveParent(fs.Root(), "/top")
	require.NoError(t, err)
	assert.Equal(t, fs.Root(), parent)
	assert.Equal(t, "top", name)
}

func TestResolveParent_ExistingTerminal(t *testing.T) {
	fs := newTestFS(t)
	a := mustCreate(t, fs, fs.Root(), "a", Dir)
	mustCreate(t, fs, a, "f", File)

	// A fully resolvable path leaves no name to create under
	_, _, err := ResolveParent(fs.Root(), "/a/f")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestResolveParent_MissingIntermediate(t *testing.T) {
	fs := newTestFS(t)

	_, _, err := ResolveParent(fs.Root(), "/missing/child")
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestResolveParent_ThroughFile(t *testing.T) {
	fs := newTestFS(t)
	mustCreate(t, fs, fs.Root(), "f", File)

	_, _, err := ResolveParent(fs.Root(), "/f/child")
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestResolveParent_EmptyPath(t *testing.T) {
	fs := newTestFS(t)

	_, _, err := ResolveParent(fs.Root(), "")
	assert.ErrorIs(t, err, ErrPathNotFound)
}

// Resolving the string returned by Path from the root must return the same
// node for every node in the tree.
func TestPath_ResolveIdentity(t *testing.T) {
	fs := newTestFS(t)
	a := mustCreate(t, fs, fs.Root(), "a", Dir)
	b := mustCreate(t, fs, a, "b", Dir)
	nodes := []*Node{
		a,
		b,
		mustCreate(t, fs, a, "f1", File),
		mustCreate(t, fs, b, "f2", File),
	}

	for _, n := range nodes {
		got, err := Resolve(fs.Root(), n.Path())
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}
