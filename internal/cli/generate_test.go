package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for generate command:
// - A full run writes all three artifacts to the output directory
// - The diagram disambiguates duplicate class names across modules
// - The listing contains decorated function signatures
// - The site-content dump records asset paths
// - A missing root directory fails before any parsing
//
// These tests drive runGenerate directly and mutate the package-level flag
// variables, so they do not run in parallel.

func TestRunGenerate_WritesArtifacts(t *testing.T) {
	rootFlag = filepath.Join("..", "..", "testdata", "project")
	outputFlag = t.TempDir()
	quietFlag = true

	require.NoError(t, runGenerate(nil, nil))

	diagram, err := os.ReadFile(filepath.Join(outputFlag, "uml.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(diagram), "@startuml")
	assert.Contains(t, string(diagram), "package root {")
	assert.Contains(t, string(diagram), "class Widget {")
	assert.Contains(t, string(diagram), "class Node (graph) {")
	assert.Contains(t, string(diagram), "class Node (shapes) {")
	assert.Contains(t, string(diagram), "+ resize(factor: float) : None")

	listing, err := os.ReadFile(filepath.Join(outputFlag, "module_functions.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(listing), "Module-Level Functions Documentation")
	assert.Contains(t, string(listing), "fetch(url: str) -> bytes [Decorators: cached]")
	assert.Contains(t, string(listing), "helper()")

	assets, err := os.ReadFile(filepath.Join(outputFlag, "site-content.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(assets), "Site Content Documentation")
	assert.Contains(t, string(assets), "File: site/index.html")
	assert.Contains(t, string(assets), "console.log")
}

func TestRunGenerate_Idempotent(t *testing.T) {
	rootFlag = filepath.Join("..", "..", "testdata", "project")
	quietFlag = true

	outputFlag = t.TempDir()
	require.NoError(t, runGenerate(nil, nil))
	first, err := os.ReadFile(filepath.Join(outputFlag, "uml.txt"))
	require.NoError(t, err)

	outputFlag = t.TempDir()
	require.NoError(t, runGenerate(nil, nil))
	second, err := os.ReadFile(filepath.Join(outputFlag, "uml.txt"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestRunGenerate_MissingRoot(t *testing.T) {
	rootFlag = filepath.Join(t.TempDir(), "missing")
	outputFlag = t.TempDir()
	quietFlag = true

	err := runGenerate(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}
