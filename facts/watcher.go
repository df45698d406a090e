package facts

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/lixenwraith/synthdrive/core"
)

// Watcher reloads the authored facts file when the owner edits it.
// Watches the parent directory rather than the file itself so editors
// that replace-on-save (rename over the original) keep triggering.
type Watcher struct {
	fsw    *fsnotify.Watcher
	target string
	onEdit func()
}

// NewWatcher starts watching path and invokes onEdit after each write
// or create that touches it
func NewWatcher(path string, onEdit func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		target: filepath.Clean(path),
		onEdit: onEdit,
	}
	core.Go(w.loop)
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				w.onEdit()
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; live reload degrades silently
		}
	}
}

// Close stops the watcher
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
