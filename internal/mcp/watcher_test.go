package mcp

// Test Plan for File Watcher:
// 1. NewFileWatcher - watches an existing tree, fails for a missing root
// 2. Writes to supported files evict the cached document
// 3. Unsupported files are ignored
// 4. Rapid writes to one file are debounced into a single eviction
// 5. Files in directories created after start are watched
// 6. Stop - Idempotent, safe before Start

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockEvictor implements Evictor for testing.
type mockEvictor struct {
	mu      sync.Mutex
	evicted []string
}

func (m *mockEvictor) Supports(path string) bool {
	return strings.HasSuffix(path, ".java")
}

func (m *mockEvictor) Invalidate(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evicted = append(m.evicted, path)
}

func (m *mockEvictor) count(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.evicted {
		if p == path {
			n++
		}
	}
	return n
}

func (m *mockEvictor) total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.evicted)
}

func startWatcher(t *testing.T, evictor Evictor, dir string, debounce time.Duration) *FileWatcher {
	t.Helper()
	watcher, err := NewFileWatcher(evictor, dir)
	require.NoError(t, err)
	if debounce > 0 {
		watcher.debounceTime = debounce
	}
	ctx, cancel := context.WithCancel(context.Background())
	watcher.Start(ctx)
	t.Cleanup(func() {
		cancel()
		watcher.Stop()
	})
	return watcher
}

func TestFileWatcher_NewFileWatcher(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules", "dep"), 0755))

	watcher, err := NewFileWatcher(&mockEvictor{}, dir)
	require.NoError(t, err)
	defer watcher.Stop()

	watched := watcher.watcher.WatchList()
	assert.Contains(t, watched, filepath.Join(dir, "src", "main"))
	assert.NotContains(t, watched, filepath.Join(dir, "node_modules"))

	_, err = NewFileWatcher(&mockEvictor{}, filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestFileWatcher_EvictsChangedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	evictor := &mockEvictor{}
	startWatcher(t, evictor, dir, 0)

	path := filepath.Join(dir, "Greeter.java")
	require.NoError(t, os.WriteFile(path, []byte("class Greeter {}\n"), 0644))

	assert.Eventually(t, func() bool {
		return evictor.count(path) > 0
	}, 2*time.Second, 20*time.Millisecond)
}

func TestFileWatcher_IgnoresUnsupportedFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	evictor := &mockEvictor{}
	startWatcher(t, evictor, dir, 0)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# notes\n"), 0644))

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, 0, evictor.total())
}

func TestFileWatcher_Debounces(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	evictor := &mockEvictor{}
	startWatcher(t, evictor, dir, 200*time.Millisecond)

	path := filepath.Join(dir, "Greeter.java")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", i+1)), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return evictor.count(path) == 1
	}, 2*time.Second, 20*time.Millisecond)

	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, 1, evictor.count(path))
}

func TestFileWatcher_WatchesNewDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	evictor := &mockEvictor{}
	startWatcher(t, evictor, dir, 0)

	sub := filepath.Join(dir, "pkg")
	require.NoError(t, os.Mkdir(sub, 0755))

	path := filepath.Join(sub, "Util.java")
	assert.Eventually(t, func() bool {
		// rewrite until the new directory is picked up
		_ = os.WriteFile(path, []byte("class Util {}\n"), 0644)
		return evictor.count(path) > 0
	}, 3*time.Second, 100*time.Millisecond)
}

func TestFileWatcher_StopIdempotent(t *testing.T) {
	t.Parallel()

	watcher, err := NewFileWatcher(&mockEvictor{}, t.TempDir())
	require.NoError(t, err)

	// Stop before Start must not block
	watcher.Stop()
	watcher.Stop()

	started, err := NewFileWatcher(&mockEvictor{}, t.TempDir())
	require.NoError(t, err)
	started.Start(context.Background())
	started.Stop()
	started.Stop()
}
