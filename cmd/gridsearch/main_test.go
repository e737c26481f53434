package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/harness"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := parseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, harness.DefaultTrials, cfg.trials)
	assert.Equal(t, "all", cfg.algo)
	assert.Equal(t, "info", cfg.logLevel)
	assert.False(t, cfg.jsonLogs)
}

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-trials", "3", "-algo", "astar", "-json-logs", "-show-grid"}, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "11155551G\n"))
	assert.Contains(t, out, "=== A* ===\nNodes expanded: 53\n")
	assert.Contains(t, out, "Cost: 16\n")
	assert.NotContains(t, out, "=== UCS ===")
	assert.Contains(t, stderr.String(), `"msg":"search finished"`)
	assert.Contains(t, stderr.String(), `"algorithm":"A*"`)
}

func TestRun_BadInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Error(t, run([]string{"-algo", "bfs"}, &stdout, &stderr))
	assert.Error(t, run([]string{"-trials", "0"}, &stdout, &stderr))
	assert.Error(t, run([]string{"-log-level", "loud"}, &stdout, &stderr))
	assert.Error(t, run([]string{"-nope"}, &stdout, &stderr))
}
