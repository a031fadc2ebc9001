package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPath(t *testing.T, name string, components ...string) DatastorePath {
	t.Helper()
	p, err := NewDatastorePath(name, components...)
	require.NoError(t, err)
	return p
}

func TestNewDatastorePath_EmptyName(t *testing.T) {
	_, err := NewDatastorePath("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDatastorePath_String(t *testing.T) {
	assert.Equal(t, "[datastore1]", mustPath(t, "datastore1").String())
	assert.Equal(t, "[datastore1] _base/foo/foo.vmdk",
		mustPath(t, "datastore1", "_base/foo", "foo.vmdk").String())
}

func TestDatastorePath_JoinSemantics(t *testing.T) {
	tests := []struct {
		name       string
		components []string
		relPath    string
	}{
		{"single component", []string{"a"}, "a"},
		{"two components", []string{"a", "b"}, "a/b"},
		{"empty component contributes nothing", []string{"a", "", "b"}, "a/b"},
		{"leading empty component", []string{"", "a"}, "a"},
		{"trailing slash not doubled", []string{"a/", "b"}, "a/b"},
		{"dot segments preserved literally", []string{"a", ".", "..", "b"}, "a/./../b"},
		{"absolute component resets", []string{"a", "/b", "c"}, "b/c"},
		{"leading absolute component", []string{"/a", "b"}, "a/b"},
		{"no components", nil, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := mustPath(t, "ds", tc.components...)
			assert.Equal(t, tc.relPath, p.RelPath())
		})
	}
}

func TestDatastorePath_JoinAbsoluteReset(t *testing.T) {
	p := mustPath(t, "ds", "a/b").Join("/c/d")
	assert.Equal(t, "c/d", p.RelPath())
	assert.Equal(t, "ds", p.Datastore())
}

func TestDatastorePath_JoinIdentity(t *testing.T) {
	p := mustPath(t, "ds", "a/b")
	assert.Equal(t, p, p.Join())
}

func TestDatastorePath_Join(t *testing.T) {
	p := mustPath(t, "ds", "a")
	joined := p.Join("b", "c.txt")

	assert.Equal(t, "a/b/c.txt", joined.RelPath())
	// The receiver is unchanged.
	assert.Equal(t, "a", p.RelPath())
}

func TestDatastorePath_Decomposition(t *testing.T) {
	p := mustPath(t, "ds", "a/b/c.txt")

	assert.Equal(t, "c.txt", p.Basename())
	assert.Equal(t, "a/b", p.Dirname())
	assert.Equal(t, mustPath(t, "ds", "a/b"), p.Parent())
}

func TestDatastorePath_ParentOfRoot(t *testing.T) {
	root := mustPath(t, "ds")
	assert.Equal(t, root, root.Parent())

	single := mustPath(t, "ds", "a")
	assert.Equal(t, root, single.Parent())
	assert.Equal(t, "", single.Dirname())
	assert.Equal(t, "a", single.Basename())
}

func TestDatastorePath_Equality(t *testing.T) {
	assert.Equal(t, mustPath(t, "ds", "x"), mustPath(t, "ds", "x"))
	assert.NotEqual(t, mustPath(t, "ds", "x"), mustPath(t, "ds", "y"))
	assert.NotEqual(t, mustPath(t, "ds1", "x"), mustPath(t, "ds2", "x"))

	// Comparable values work as map keys.
	seen := map[DatastorePath]bool{mustPath(t, "ds", "x"): true}
	assert.True(t, seen[mustPath(t, "ds", "x")])
}

func TestParseDatastorePath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		datastore string
		relPath   string
	}{
		{"root", "[ds1]", "ds1", ""},
		{"file path", "[ds1] a/b/c.vmdk", "ds1", "a/b/c.vmdk"},
		{"no space after bracket", "[ds1]a/b", "ds1", "a/b"},
		{"extra whitespace trimmed", "[ds1]   a/b  ", "ds1", "a/b"},
		{"missing closing bracket", "[ds1", "ds1", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParseDatastorePath(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.datastore, p.Datastore())
			assert.Equal(t, tc.relPath, p.RelPath())
		})
	}
}

func TestParseDatastorePath_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"no brackets", "no-brackets-here"},
		{"empty datastore name", "[] a/b"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDatastorePath(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestDatastorePath_RoundTrip(t *testing.T) {
	tests := []struct {
		datastore string
		relPath   string
	}{
		{"ds1", ""},
		{"ds1", "a"},
		{"datastore1", "_base/foo/foo.vmdk"},
		{"nas-01", "vm/disk flat.vmdk"},
	}

	for _, tc := range tests {
		original := mustPath(t, tc.datastore, tc.relPath)
		parsed, err := ParseDatastorePath(original.String())
		require.NoError(t, err)
		assert.Equal(t, original, parsed, "round-trip of %q", original.String())
	}
}
