// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cizinci/cizinci/internal/testable"
)

func TestRender_JSONToStdout(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	path := writeDataset(t)
	cmd.SetArgs([]string{"render", "-d", path, "-f", "json", "--top", "2"})

	require.NoError(t, cmd.Execute())

	var doc struct {
		View struct {
			Ranking []struct {
				Category string `json:"category"`
			} `json:"ranking"`
		} `json:"view"`
		Metadata struct {
			Total int  `json:"total"`
			Empty bool `json:"empty"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.Equal(t, 5100, doc.Metadata.Total)
	assert.False(t, doc.Metadata.Empty)
	assert.NotEmpty(t, doc.View.Ranking)
}

func TestRender_HTMLToFile(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	path := writeDataset(t)
	out := filepath.Join(t.TempDir(), "dashboard.html")
	cmd.SetArgs([]string{"render", "-d", path, "-o", out})

	require.NoError(t, cmd.Execute())

	assert.Empty(t, stdout.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<html")
	assert.Contains(t, string(data), "Ukrajina")
}

func TestRender_HTMLDirRequiresOutput(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	path := writeDataset(t)
	cmd.SetArgs([]string{"render", "-d", path, "-f", "html-dir"})

	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "--output")
}

func TestRender_HTMLDir(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	path := writeDataset(t)
	dir := filepath.Join(t.TempDir(), "site")
	cmd.SetArgs([]string{"render", "-d", path, "-f", "html-dir", "-o", dir})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "index.html"))
}

func TestRender_MissingDataset(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"render", "-d", filepath.Join(t.TempDir(), "nope.csv"), "-f", "json"})

	ece := requireExitCode(t, cmd.Execute(), ExitTotalFailure)
	assert.Contains(t, ece.Error(), "cannot load dataset")
	assert.Empty(t, stdout.String())
}

func TestRender_UnknownFormat(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	path := writeDataset(t)
	cmd.SetArgs([]string{"render", "-d", path, "-f", "svg"})

	requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
}

func TestRender_NegativeTop(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	path := writeDataset(t)
	cmd.SetArgs([]string{"render", "-d", path, "-f", "json", "--top", "-1"})

	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "--top must not be negative")
}

func TestRender_EmptySelectionIsNotAnError(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	path := writeDataset(t)
	cmd.SetArgs([]string{"render", "-d", path, "-f", "json", "--country", "Atlantida"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), `"empty": true`)
}

func TestRender_EmptyPNG(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	path := writeDataset(t)
	cmd.SetArgs([]string{"render", "-d", path, "-f", "png", "--country", "Atlantida"})

	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "nothing to draw")
}

func TestRender_CreateFailure(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	path := writeDataset(t)
	withMockFS(t, &testable.MockFileSystem{
		CreateFn: func(string) (io.WriteCloser, error) {
			return nil, errors.New("disk full")
		},
	})
	cmd.SetArgs([]string{"render", "-d", path, "-f", "csv", "-o", "out.csv"})

	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "disk full")
}

func TestRender_FormatFromConfig(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	path := writeDataset(t)
	require.NoError(t, os.WriteFile(".cizinci.yaml", []byte("output_format: csv\n"), 0o600))
	cmd.SetArgs([]string{"render", "-d", path})

	require.NoError(t, cmd.Execute())
	assert.NotContains(t, stdout.String(), "<html")
	assert.Contains(t, stdout.String(), "Ukrajina")
}
