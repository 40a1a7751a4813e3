package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-parses source files when they change on disk.
type Watcher struct {
	w     *fsnotify.Watcher
	files map[string]bool
}

// NewWatcher starts watching paths. The parent directories are watched so
// that editors which replace the file on save are still seen.
func NewWatcher(paths []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}

	watcher := &Watcher{w: w, files: map[string]bool{}}
	dirs := map[string]bool{}
	for _, path := range paths {
		path = filepath.Clean(path)
		watcher.files[path] = true
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	return watcher, nil
}

// Run calls onParse with a fresh unit each time a watched file is written or
// created, until ctx is done or the watcher fails.
func (w *Watcher) Run(ctx context.Context, onParse func(*Unit)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(ev.Name)
			if !w.files[name] || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			source, err := os.ReadFile(name)
			if err != nil {
				// The file may be gone again before we read it.
				continue
			}
			onParse(ParseUnit(name, string(source)))
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

func (w *Watcher) Close() error {
	return w.w.Close()
}
