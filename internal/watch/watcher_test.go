package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Filesystem notification latency varies wildly across platforms and CI,
// so these tests use generous timeouts and assert only that the right
// callbacks eventually fire.
const eventTimeout = 5 * time.Second

func startWatcher(t *testing.T, root string) (*Watcher, chan []string) {
	t.Helper()

	w, err := New(Config{
		Root:       root,
		Extensions: []string{".tsx"},
		Debounce:   20 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	changes := make(chan []string, 16)
	w.OnChange(func(paths []string) { changes <- paths })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go w.Start(ctx)

	// Give the watch registrations a moment to settle.
	time.Sleep(50 * time.Millisecond)
	return w, changes
}

func waitForChange(t *testing.T, changes chan []string) []string {
	t.Helper()
	select {
	case paths := <-changes:
		return paths
	case <-time.After(eventTimeout):
		t.Fatal("timed out waiting for change notification")
		return nil
	}
}

func TestWatchFileCreate(t *testing.T) {
	root := t.TempDir()
	_, changes := startWatcher(t, root)

	target := filepath.Join(root, "about.tsx")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	paths := waitForChange(t, changes)
	assert.Contains(t, paths, target)
}

func TestWatchFileRemove(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "about.tsx")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	_, changes := startWatcher(t, root)
	require.NoError(t, os.Remove(target))

	paths := waitForChange(t, changes)
	assert.Contains(t, paths, target)
}

func TestWatchIgnoresUnrecognizedExtensions(t *testing.T) {
	root := t.TempDir()
	_, changes := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("x"), 0644))

	select {
	case paths := <-changes:
		t.Fatalf("unexpected notification for non-page file: %v", paths)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchNewDirectoryIsFollowed(t *testing.T) {
	root := t.TempDir()
	_, changes := startWatcher(t, root)

	sub := filepath.Join(root, "blog")
	require.NoError(t, os.Mkdir(sub, 0755))
	waitForChange(t, changes)

	// A file created inside the new directory must also be seen.
	target := filepath.Join(sub, "index.tsx")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	paths := waitForChange(t, changes)
	assert.Contains(t, paths, target)
}

func TestWatchDirectoryRemoveTriggers(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "blog")
	require.NoError(t, os.Mkdir(sub, 0755))

	_, changes := startWatcher(t, root)
	require.NoError(t, os.RemoveAll(sub))

	paths := waitForChange(t, changes)
	assert.Contains(t, paths, sub)
}

func TestWatchDebounceBatchesBurst(t *testing.T) {
	root := t.TempDir()
	_, changes := startWatcher(t, root)

	for _, name := range []string{"a.tsx", "b.tsx", "c.tsx"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0644))
	}

	paths := waitForChange(t, changes)
	total := len(paths)

	// Drain any stragglers from a split batch, then confirm all three
	// files were reported without a notification per file.
	for total < 3 {
		paths = waitForChange(t, changes)
		total += len(paths)
	}
	assert.GreaterOrEqual(t, total, 3)
}

func TestWatchCloseStopsCallbacks(t *testing.T) {
	root := t.TempDir()
	w, changes := startWatcher(t, root)
	require.NoError(t, w.Close())

	require.NoError(t, os.WriteFile(filepath.Join(root, "late.tsx"), []byte("x"), 0644))

	select {
	case <-changes:
		t.Fatal("callback fired after Close")
	case <-time.After(300 * time.Millisecond):
	}
}
