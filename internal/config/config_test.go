package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Config System:
// - Default() returns valid configuration with all expected defaults
// - Load() uses defaults when no config file exists
// - Load() merges .structdoc/config.yml with defaults
// - Environment variables override config file values
// - Load() returns error for malformed YAML
// - Validate() rejects glob patterns that do not compile
// - Validate() rejects empty or path-like artifact filenames
// - Validate() reports multiple problems at once

func TestDefault_ReturnsValidConfiguration(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)

	assert.Equal(t, "uml.txt", cfg.Output.Diagram)
	assert.Equal(t, "module_functions.txt", cfg.Output.Functions)
	assert.Equal(t, "site-content.txt", cfg.Output.Assets)

	assert.Contains(t, cfg.Paths.Assets, "**/*.html")
	assert.Contains(t, cfg.Paths.Ignore, "__pycache__/**")
	assert.Contains(t, cfg.Tree.Exclude, "__pycache__")

	// Verify default config passes validation
	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestLoad_UsesDefaultsWhenNoConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, Default().Output, cfg.Output)
	assert.Equal(t, Default().Paths.Assets, cfg.Paths.Assets)
}

func TestLoad_MergesConfigFileWithDefaults(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".structdoc")
	require.NoError(t, os.MkdirAll(configDir, 0755))

	yaml := `output:
  diagram: classes.puml
paths:
  ignore:
    - "build/**"
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte(yaml), 0644))

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "classes.puml", cfg.Output.Diagram)
	assert.Equal(t, []string{"build/**"}, cfg.Paths.Ignore)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().Output.Functions, cfg.Output.Functions)
	assert.Equal(t, Default().Paths.Assets, cfg.Paths.Assets)
}

func TestLoad_EnvOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".structdoc")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("output:\n  diagram: from_file.txt\n"), 0644))

	t.Setenv("STRUCTDOC_OUTPUT_DIAGRAM", "from_env.txt")

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "from_env.txt", cfg.Output.Diagram)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".structdoc")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yml"), []byte("paths: [unterminated\n"), 0644))

	_, err := LoadConfigFromDir(dir)
	assert.Error(t, err)
}

func TestValidate_RejectsBadPattern(t *testing.T) {
	cfg := Default()
	cfg.Paths.Ignore = append(cfg.Paths.Ignore, "[bad")

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestValidate_RejectsBadOutputNames(t *testing.T) {
	cfg := Default()
	cfg.Output.Diagram = ""
	cfg.Output.Functions = "../escape.txt"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.diagram")
	assert.Contains(t, err.Error(), "output.functions")
}
