// Copyright 2026 The Cizinci Authors
// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHelp(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "foreign residents")
	for _, sub := range []string{"serve", "render", "report", "countries", "validate", "config", "mcp", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "quiet", "no-color", "log-format", "dataset"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "global flag --%s not registered", name)
	}

	shorthands := map[string]string{"v": "verbose", "q": "quiet", "d": "dataset"}
	for short, long := range shorthands {
		f := rootCmd.PersistentFlags().ShorthandLookup(short)
		if assert.NotNil(t, f, "-%s not registered", short) {
			assert.Equal(t, long, f.Name)
		}
	}
}

func TestInvalidLogFormat(t *testing.T) {
	cmd, _, _ := newTestCmd(t)
	cmd.SetArgs([]string{"--log-format", "xml", "version"})

	ece := requireExitCode(t, cmd.Execute(), ExitInvalidArgs)
	assert.Contains(t, ece.Error(), "unknown log format")
}

func TestVersionSubcommand(t *testing.T) {
	cmd, stdout, _ := newTestCmd(t)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "cizinci dev", strings.TrimSpace(stdout.String()))
}

func TestExitError_DefaultMessages(t *testing.T) {
	assert.Equal(t, "cizinci: output written, but some steps failed", exitError(ExitPartialFailure, "").Error())
	assert.Equal(t, "cizinci: dataset could not be loaded", exitError(ExitTotalFailure, "").Error())
	assert.Equal(t, "cizinci: error", exitError(ExitInvalidArgs, "").Error())
	assert.Equal(t, "cizinci: bad 7", exitError(ExitInvalidArgs, "cizinci: bad %d", 7).Error())
}

func TestMCPCommand_Registered(t *testing.T) {
	var names []string
	for _, c := range mcpCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"serve"}, names)
}
