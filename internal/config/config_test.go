package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPath_NoFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFromPath(dir)
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "block", cfg.Scanner)
	assert.False(t, cfg.Checkpoint)
}

func TestLoadFromPath_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "theme: dark\nscanner: inline\ncheckpoint: true\n"
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ConfigFileName),
		[]byte(content),
		0o644,
	))

	cfg, err := LoadFromPath(dir)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "inline", cfg.Scanner)
	assert.True(t, cfg.Checkpoint)
}

func TestLoadFromPath_WalksUp(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "docs", "chapters")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ConfigFileName),
		[]byte("theme: light\n"),
		0o644,
	))

	cfg, err := LoadFromPath(nested)
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
}

func TestLoadFromPath_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad theme", "theme: neon\n"},
		{"bad scanner", "scanner: yaml\n"},
		{"bad syntax", "theme: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(
				filepath.Join(dir, ConfigFileName),
				[]byte(tt.content),
				0o644,
			))

			_, err := LoadFromPath(dir)
			assert.Error(t, err)
		})
	}
}
