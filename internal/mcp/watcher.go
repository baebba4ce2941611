package mcp

// Implementation Plan:
// 1. Use fsnotify to watch the project tree
// 2. Debounce file system events per path (100ms)
// 3. Evict cached documents for changed source files
// 4. Pick up directories created while running
// 5. Thread-safe start/stop

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Evictor drops cached state for a file.
type Evictor interface {
	Supports(path string) bool
	Invalidate(path string)
}

// skipDirs are never watched.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"target":       true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
}

// FileWatcher evicts cached documents when source files change on disk.
type FileWatcher struct {
	evictor      Evictor
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
	startOnce    sync.Once
	stopOnce     sync.Once
}

// NewFileWatcher creates a watcher over rootDir and all its subdirectories.
func NewFileWatcher(evictor Evictor, rootDir string) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		evictor:      evictor,
		watcher:      watcher,
		debounceTime: 100 * time.Millisecond,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	if err := fw.addRecursive(rootDir); err != nil {
		watcher.Close()
		return nil, err
	}

	return fw, nil
}

// Start begins watching for file changes.
func (fw *FileWatcher) Start(ctx context.Context) {
	fw.startOnce.Do(func() {
		go fw.watch(ctx)
	})
}

// Stop stops the file watcher. It is safe to call more than once.
func (fw *FileWatcher) Stop() {
	fw.stopOnce.Do(func() {
		close(fw.stopCh)
		started := true
		fw.startOnce.Do(func() { started = false })
		if started {
			<-fw.doneCh // Wait for goroutine to finish
		}
		fw.watcher.Close()
	})
}

func (fw *FileWatcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skipDirs[d.Name()] {
			return filepath.SkipDir
		}
		return fw.watcher.Add(path)
	})
}

// watch is the main event loop with per-path debouncing.
func (fw *FileWatcher) watch(ctx context.Context) {
	defer close(fw.doneCh)

	var (
		mu      sync.Mutex
		pending = map[string]*time.Timer{}
	)
	defer func() {
		mu.Lock()
		for _, timer := range pending {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case <-fw.stopCh:
			return

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !skipDirs[info.Name()] {
					if err := fw.addRecursive(event.Name); err != nil {
						log.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
					}
					continue
				}
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !fw.evictor.Supports(event.Name) {
				continue
			}

			path := event.Name
			mu.Lock()
			if timer, ok := pending[path]; ok {
				timer.Stop()
			}
			pending[path] = time.AfterFunc(fw.debounceTime, func() {
				mu.Lock()
				delete(pending, path)
				mu.Unlock()
				fw.evictor.Invalidate(path)
			})
			mu.Unlock()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("file watcher error")
		}
	}
}
