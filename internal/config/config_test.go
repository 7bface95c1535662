// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
compare:
  node_order: set
report:
  column_width: 30
colors:
  removed: "#cc0000"
summary: true
`

// withConfig points DBCDIFF_CFG_FILE at a fixture and reloads.
func withConfig(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dbcdiff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("DBCDIFF_CFG_FILE", path)

	_, err := Load()
	require.NoError(t, err)

	t.Cleanup(func() { Config = Type{} })
}

func TestGetString(t *testing.T) {
	withConfig(t, testYAML)

	got, err := GetString("compare.node_order")
	require.NoError(t, err)
	assert.Equal(t, "set", got)

	got, err = GetString("colors.removed")
	require.NoError(t, err)
	assert.Equal(t, "#cc0000", got)

	// Missing key with a default.
	got, err = GetString("colors.added", "#00aa00")
	require.NoError(t, err)
	assert.Equal(t, "#00aa00", got)

	// Missing key without a default.
	_, err = GetString("colors.added")
	assert.Error(t, err)

	// Wrong type.
	_, err = GetString("report.column_width")
	assert.Error(t, err)
}

func TestGetInt(t *testing.T) {
	withConfig(t, testYAML)

	got, err := GetInt("report.column_width")
	require.NoError(t, err)
	assert.Equal(t, 30, got)

	got, err = GetInt("report.row_height", 15)
	require.NoError(t, err)
	assert.Equal(t, 15, got)

	_, err = GetInt("compare.node_order")
	assert.Error(t, err)
}

func TestGetBool(t *testing.T) {
	withConfig(t, testYAML)

	got, err := GetBool("summary")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = GetBool("color", false)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestFileEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1"), 0o644))

	t.Setenv("DBCDIFF_CFG_FILE", path)
	got, err := File()
	require.NoError(t, err)
	assert.Equal(t, path, got)

	// Pointing at a directory is an error.
	t.Setenv("DBCDIFF_CFG_FILE", dir)
	_, err = File()
	assert.Error(t, err)

	// Pointing at a missing file is an error.
	t.Setenv("DBCDIFF_CFG_FILE", filepath.Join(dir, "nope.yaml"))
	_, err = File()
	assert.Error(t, err)
}
