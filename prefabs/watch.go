package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type ChangeKind int

const (
	ChangeSpec ChangeKind = iota
	ChangeScript
)

// Change is a debounced edit to a prefab spec or script on disk.
type Change struct {
	Path string
	Kind ChangeKind
}

const (
	watchDebounce = 100 * time.Millisecond
	watchedOps    = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove
)

// Watcher turns filesystem events under the prefab directories into Changes.
// The game loop polls it with Drain.
type Watcher struct {
	fs      *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	done    chan struct{}
	closing sync.Once

	lastSeen map[string]time.Time
}

// DefaultWatchDirs are the on-disk directories Load and LoadScript read from.
func DefaultWatchDirs() []string {
	return []string{diskRoot, filepath.Join(diskRoot, "scripts"), filepath.Join(diskRoot, "scenes")}
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:       fw,
		Events:   make(chan Change, 16),
		Errors:   make(chan error, 1),
		done:     make(chan struct{}),
		lastSeen: make(map[string]time.Time),
	}
	go w.pump()
	return w, nil
}

// Close stops the watcher. It is safe on a nil Watcher and safe to repeat.
func (w *Watcher) Close() error {
	if w == nil {
		return nil
	}
	var err error
	w.closing.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// Drain returns every change queued since the last call without blocking.
func (w *Watcher) Drain() (changes []Change, errs []error) {
	if w == nil {
		return nil, nil
	}
	for {
		select {
		case c := <-w.Events:
			changes = append(changes, c)
		case err := <-w.Errors:
			errs = append(errs, err)
		default:
			return changes, errs
		}
	}
}

func (w *Watcher) pump() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			c, ok := w.accept(ev, time.Now())
			if !ok {
				continue
			}
			select {
			case w.Events <- c:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			// keep only the first error until drained
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

// accept filters ev down to prefab files and drops repeats of the same path
// inside the debounce window.
func (w *Watcher) accept(ev fsnotify.Event, now time.Time) (Change, bool) {
	if ev.Op&watchedOps == 0 {
		return Change{}, false
	}
	kind, ok := classify(ev.Name)
	if !ok {
		return Change{}, false
	}
	if prev, seen := w.lastSeen[ev.Name]; seen && now.Sub(prev) < watchDebounce {
		return Change{}, false
	}
	w.lastSeen[ev.Name] = now
	return Change{Path: ev.Name, Kind: kind}, true
}

func classify(name string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ChangeSpec, true
	case ".tengo":
		return ChangeScript, true
	}
	return ChangeSpec, false
}
