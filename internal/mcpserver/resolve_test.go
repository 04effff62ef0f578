// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cizinci/cizinci/internal/config"
)

func TestResolveSource_File(t *testing.T) {
	path := writeDataset(t)
	want, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)

	got, err := ResolveSource(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveSource_URLsUnchanged(t *testing.T) {
	for _, src := range []string{
		"https://example.com/cizinci.csv",
		"sqlite:///var/lib/cizinci.db?table=cizinci",
		"postgres://user@db/stats?table=cizinci",
	} {
		got, err := ResolveSource(src)
		require.NoError(t, err, src)
		assert.Equal(t, src, got)
	}
}

func TestResolveSource_Nonexistent(t *testing.T) {
	_, err := ResolveSource("/nonexistent/path/cizinci.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestResolveSource_Directory(t *testing.T) {
	_, err := ResolveSource(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestResolveSource_TraversalToDirectory(t *testing.T) {
	for _, src := range []string{"../../..", "/", "."} {
		_, err := ResolveSource(src)
		assert.Error(t, err, src)
	}
}

func TestResolveSettings_InputWins(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	configured := writeDataset(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName),
		[]byte("dataset: "+configured+"\ntop_n: 3\n"), 0o600))

	other := writeDataset(t)
	settings, err := ResolveSettings(dir, other)
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(other)
	require.NoError(t, err)
	assert.Equal(t, want, settings.Dataset)
	assert.Equal(t, 3, settings.TopN)
}

func TestResolveSettings_FallsBackToConfig(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	configured := writeDataset(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName),
		[]byte("dataset: "+configured+"\n"), 0o600))

	settings, err := ResolveSettings(dir, "")
	require.NoError(t, err)
	want, err := filepath.EvalSymlinks(configured)
	require.NoError(t, err)
	assert.Equal(t, want, settings.Dataset)
	assert.Equal(t, config.DefaultTopN, settings.TopN)
}

func TestResolveSettings_BadConfig(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("top_n: [\n"), 0o600))

	_, err := ResolveSettings(dir, writeDataset(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
