package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports debounced change notifications for watched files.
// Editors and exporters often produce several write events per save;
// the debounce interval collapses them into one callback.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration

	mu        sync.Mutex
	callbacks map[string]func(path string)
	timers    map[string]*time.Timer

	// OnError receives watcher-internal errors. Nil means they are
	// dropped.
	OnError func(err error)
}

// New creates a watcher with the given debounce interval
func New(debounce time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	return &Watcher{
		fs:        fs,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		timers:    make(map[string]*time.Timer),
	}, nil
}

// Add starts watching path. The callback runs once per debounced burst
// of write or create events, on a timer goroutine.
func (w *Watcher) Add(path string, callback func(path string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := w.fs.Add(abs); err != nil {
		return fmt.Errorf("watch %s: %w", abs, err)
	}

	w.mu.Lock()
	w.callbacks[abs] = callback
	w.mu.Unlock()
	return nil
}

// Start begins delivering events. It returns immediately; delivery runs
// on a background goroutine until Close.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					w.changed(event.Name)
				}

			case err, ok := <-w.fs.Errors:
				if !ok {
					return
				}
				if w.OnError != nil {
					w.OnError(err)
				}
			}
		}
	}()
}

// changed restarts the debounce timer for the file
func (w *Watcher) changed(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	callback, ok := w.callbacks[path]
	if !ok {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		callback(path)
	})
}

// Close stops watching and releases the underlying watcher
func (w *Watcher) Close() error {
	return w.fs.Close()
}
