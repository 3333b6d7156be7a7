package catalog

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/teranos/fragfmt/errors"
	"github.com/teranos/fragfmt/logger"
)

// ReloadCallback is called after a successful reload
type ReloadCallback func(*Catalog) error

// Watcher reloads a Catalog when its files change
type Watcher struct {
	catalog        *Catalog
	watcher        *fsnotify.Watcher
	files          map[string]bool
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	done           chan struct{}
	stopOnce       sync.Once
}

// NewWatcher watches the files of c's last load. Parent directories are
// watched so files replaced by rename are still seen.
func NewWatcher(c *Catalog, debounce time.Duration) (*Watcher, error) {
	paths := c.Paths()
	if len(paths) == 0 {
		return nil, errors.New("catalog has no files to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	files := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", p)
		}
		files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", dir)
		}
		dirs[dir] = true
	}

	return &Watcher{
		catalog:        c,
		watcher:        watcher,
		files:          files,
		debouncePeriod: debounce,
		done:           make(chan struct{}),
	}, nil
}

// OnReload registers a callback to be called after each successful reload
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}

			w.catalog.logger.Debugw("catalog change detected",
				logger.FieldPath, event.Name,
				logger.FieldOperation, event.Op.String())
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.catalog.logger.Warnw("watch failed", logger.FieldError, err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.reload)
}

// reload reloads the catalog and calls all callbacks. A failed reload keeps
// the previous entries.
func (w *Watcher) reload() {
	select {
	case <-w.done:
		return
	default:
	}

	if err := w.catalog.Reload(); err != nil {
		w.catalog.logger.Errorw("catalog reload failed", logger.FieldError, err)
		return
	}

	w.mu.RLock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(w.catalog); err != nil {
			// Continue calling other callbacks even if one fails
			w.catalog.logger.Warnw("catalog reload callback failed", logger.FieldError, err)
		}
	}
}

// Stop stops watching for changes
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.debounceTimer != nil {
			w.debounceTimer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}
