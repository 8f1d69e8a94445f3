// Package watcher re-runs a callback when a watched model file
// changes, with debouncing so editors that write in bursts trigger
// one re-slice instead of several.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches a single file for changes and triggers a callback
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	callback func()

	mu       sync.Mutex
	debounce time.Duration
	timer    *time.Timer
}

// New creates a watcher for the given file. The callback runs after
// the file has been written and the debounce interval has passed
// without further writes.
func New(path string, debounce time.Duration, callback func()) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory: editors often replace the file, which
	// drops a watch placed on the file itself.
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	return &FileWatcher{
		watcher:  w,
		path:     absPath,
		callback: callback,
		debounce: debounce,
	}, nil
}

// Start begins watching for file changes
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Name != fw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					fw.trigger()
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
			}
		}
	}()
}

// trigger arms (or re-arms) the debounced callback
func (fw *FileWatcher) trigger() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.callback)
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
