// Package watch monitors the pages directory for structural changes.
// Routing structure only changes when files are added, removed, or
// renamed, so write events are deliberately ignored.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Config configures the file watcher.
type Config struct {
	// Root is the directory to watch recursively.
	Root string

	// Extensions are the page file extensions that trigger regeneration.
	Extensions []string

	// Debounce is the delay before a burst of events fires the callback.
	Debounce time.Duration

	// Logger receives debug output. Nil disables logging.
	Logger *log.Logger
}

// Watcher monitors a directory tree for added and removed files.
type Watcher struct {
	cfg Config
	fsw *fsnotify.Watcher

	mu       sync.Mutex
	onChange func(paths []string)
	pending  map[string]struct{}
	timer    *time.Timer
	closed   bool
}

// New creates a watcher for cfg.Root.
func New(cfg Config) (*Watcher, error) {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 100 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		cfg:     cfg,
		fsw:     fsw,
		pending: make(map[string]struct{}),
	}, nil
}

// OnChange sets the callback invoked with the batch of changed paths after
// the debounce interval.
func (w *Watcher) OnChange(fn func(paths []string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start watches until ctx is canceled or Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addRecursive(w.cfg.Root); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logf("watch error: %v", err)
		}
	}
}

// Close stops the watcher and releases its OS resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

// handle processes one fsnotify event. Only Create, Remove, and Rename
// change routing structure; a Create of a new directory extends the watch
// set so files added inside it are seen.
func (w *Watcher) handle(event fsnotify.Event) {
	const structural = fsnotify.Create | fsnotify.Remove | fsnotify.Rename
	if event.Op&structural == 0 {
		return
	}

	if event.Op&fsnotify.Create != 0 {
		// New directories need their own watch. Stat through the watcher's
		// view: a just-removed path fails the stat and falls through.
		if isDir(event.Name) {
			if err := w.addRecursive(event.Name); err != nil {
				w.logf("watching %s: %v", event.Name, err)
			}
			w.enqueue(event.Name)
			return
		}
	}

	// A removed path cannot be stat'd, so an extension-less name is
	// assumed to have been a directory and still triggers a pass.
	if !w.recognized(event.Name) && filepath.Ext(event.Name) != "" && !isDir(event.Name) {
		return
	}
	w.enqueue(event.Name)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// enqueue records a changed path and (re)arms the debounce timer.
func (w *Watcher) enqueue(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	w.pending[path] = struct{}{}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.cfg.Debounce, w.flush)
}

// flush delivers the pending batch to the callback.
func (w *Watcher) flush() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	callback := w.onChange
	closed := w.closed
	w.mu.Unlock()

	if closed || callback == nil || len(paths) == 0 {
		return
	}
	w.logf("detected %d change(s)", len(paths))
	callback(paths)
}

// addRecursive watches dir and every directory below it.
func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != dir {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

// recognized reports whether a path carries a page extension. Remove
// events cannot stat the path, so this is judged from the name alone.
func (w *Watcher) recognized(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	for _, e := range w.cfg.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

func (w *Watcher) logf(format string, args ...any) {
	if w.cfg.Logger != nil {
		w.cfg.Logger.Debugf(format, args...)
	}
}
