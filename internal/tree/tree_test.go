package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for tree printer:
// - Generate renders sorted entries with box-drawing connectors
// - Excluded names and .pyc files are skipped, including whole directories
// - Clean replaces non-breaking spaces
// - WriteFile persists the content
// - SpliceReadme replaces only the section between the markers

func buildFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pkg"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "__pycache__"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.py"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pyc"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg", "b.py"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "__pycache__", "junk"), nil, 0644))

	return dir
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	dir := buildFixture(t)
	out, err := Generate(dir, []string{"__pycache__"})
	require.NoError(t, err)

	expected := dir + "\n" +
		"├── a.py\n" +
		"└── pkg\n" +
		"    └── b.py"
	assert.Equal(t, expected, out)
}

func TestGenerate_NoExclusions(t *testing.T) {
	t.Parallel()

	dir := buildFixture(t)
	out, err := Generate(dir, nil)
	require.NoError(t, err)

	// .pyc is always skipped; __pycache__ stays without an exclusion.
	assert.Contains(t, out, "__pycache__")
	assert.Contains(t, out, "junk")
	assert.NotContains(t, out, "a.pyc")
}

func TestClean(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b", Clean("a b"))
	assert.Equal(t, "plain", Clean("plain"))
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tree.txt")
	require.NoError(t, WriteFile("content", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestSpliceReadme(t *testing.T) {
	t.Parallel()

	readme := filepath.Join(t.TempDir(), "README.md")
	original := `# Project

## Project File Structure

old content to drop

## Design

kept tail
`
	require.NoError(t, os.WriteFile(readme, []byte(original), 0644))

	require.NoError(t, SpliceReadme("root\n└── a.py", readme, "## Project File Structure", "## Design"))

	data, err := os.ReadFile(readme)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# Project")
	assert.Contains(t, content, "## Project File Structure")
	assert.Contains(t, content, "```\nroot\n└── a.py\n```")
	assert.Contains(t, content, "<details>")
	assert.Contains(t, content, "## Design")
	assert.Contains(t, content, "kept tail")
	assert.NotContains(t, content, "old content to drop")
}
