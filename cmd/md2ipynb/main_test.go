package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdnotebook "github.com/riverfjs/mdnotebook-go"
)

func TestRun_ConvertsFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "lesson.md")
	require.NoError(t, os.WriteFile(src, []byte("# Lesson\n```python\nx = 1\n```\n"), 0o644))

	err := run(context.Background(), &CLI{Markdown: src, Kernel: "python3"})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "lesson.ipynb"))
}

func TestRun_CustomOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("plain\n"), 0o644))
	out := filepath.Join(dir, "custom.ipynb")

	require.NoError(t, run(context.Background(), &CLI{Markdown: src, Output: out}))
	assert.FileExists(t, out)
	assert.NoFileExists(t, filepath.Join(dir, "notes.ipynb"))
}

func TestRun_MissingFile(t *testing.T) {
	dir := t.TempDir()
	err := run(context.Background(), &CLI{Markdown: filepath.Join(dir, "nope.md")})
	assert.ErrorIs(t, err, mdnotebook.ErrSourceNotFound)
}

func TestResolveConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("extract_title: true\nkernel:\n  name: base\n"), 0o644))

	cfg, err := resolveConfig(&CLI{Config: cfgPath, Kernel: "override", Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.Kernel.Name)
	assert.Equal(t, "T", cfg.Title)
	assert.True(t, cfg.ExtractTitle)

	// flags must not leak into the shared defaults
	plain, err := resolveConfig(&CLI{Kernel: "k"})
	require.NoError(t, err)
	assert.Equal(t, "k", plain.Kernel.Name)
	assert.Empty(t, mdnotebook.DefaultConfig().Kernel.Name)
}
