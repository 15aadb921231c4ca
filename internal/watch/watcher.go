// Package watch notifies callers when files change anywhere under a
// directory tree.
package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the tree must stay quiet before a change is emitted.
const DefaultDebounce = 100 * time.Millisecond

// Change reports that something under the watched tree was created,
// written, removed, or renamed.
type Change struct {
	Files []string // Absolute paths touched since the previous Change
}

// Watcher monitors a directory tree for changes using fsnotify. fsnotify
// watches are not recursive, so every directory under Root is added
// individually and directories created later are added as they appear.
type Watcher struct {
	Root     string
	Debounce time.Duration
	Changes  <-chan Change // Read-only external channel

	target  string      // Requested root, which may not exist yet
	changes chan Change // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for root. If root does not exist yet, its
// nearest existing ancestor is watched instead so that root's creation is
// still seen.
func NewWatcher(root string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	target := filepath.Clean(root)
	ch := make(chan Change, 16)
	w := &Watcher{
		target:   target,
		Root:     nearestExisting(target),
		Debounce: DefaultDebounce,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
	}
	return w, nil
}

// Start adds watches for the tree and begins emitting changes. If it fails,
// the underlying fsnotify watcher is closed and Stop must not be called.
func (w *Watcher) Start() error {
	var err error
	if w.Root != w.target {
		// Only the ancestor itself; its unrelated subtrees are not ours.
		err = w.watcher.Add(w.Root)
	} else {
		err = w.addTree(w.Root)
	}
	if err != nil {
		w.watcher.Close()
		return err
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	pending := make(map[string]struct{})
	var last time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.flush(pending)
				return
			}

			// An ancestor watched in place of a missing root sees unrelated
			// siblings too.
			if !w.relevant(event.Name) {
				continue
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					// Errors here mean the directory vanished again; the
					// Create event is still reported.
					_ = w.addTree(event.Name)
				}
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = struct{}{}
				last = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			if len(pending) > 0 && time.Since(last) >= debounce {
				w.flush(pending)
				pending = make(map[string]struct{})
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

// relevant reports whether p is the target tree, inside it, or on the way
// down to it.
func (w *Watcher) relevant(p string) bool {
	return within(p, w.target) || within(w.target, p)
}

// within reports whether p is base or a descendant of base.
func within(p, base string) bool {
	rel, err := filepath.Rel(base, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func (w *Watcher) flush(pending map[string]struct{}) {
	if len(pending) == 0 {
		return
	}
	files := make([]string, 0, len(pending))
	for f := range pending {
		files = append(files, f)
	}
	w.changes <- Change{Files: files}
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		return w.watcher.Add(p)
	})
}

// nearestExisting walks up from p until it finds a path that exists.
func nearestExisting(p string) string {
	p = filepath.Clean(p)
	for {
		if _, err := os.Stat(p); err == nil {
			return p
		}
		parent := filepath.Dir(p)
		if parent == p {
			return p
		}
		p = parent
	}
}
