package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher_MissingFile(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "absent.qmd"))
	assert.Error(t, err)
}

func TestWatcher_DebouncedWriteEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.qmd")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	w, err := NewWatcherWithDebounce(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	// Rapid successive writes coalesce into one event.
	require.NoError(t, os.WriteFile(path, []byte("b\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("c\n"), 0o644))

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("expected a change event")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.qmd")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	w, err := NewWatcherWithDebounce(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	other := filepath.Join(dir, "other.qmd")
	require.NoError(t, os.WriteFile(other, []byte("x\n"), 0o644))

	select {
	case <-w.Events():
		t.Fatal("unexpected event for sibling file")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.qmd")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
