// Package watch wraps fsnotify for the "watch a file, recomplete on
// change" developer loop cmd/kbcomplete's -watch flag drives, grounded on
// internal/runtime/vfs/watch_fsnotify.go's FSNotifyWatcher.
package watch

import (
	"github.com/fsnotify/fsnotify"
)

// Op indicates what kind of change fired an Event.
type Op uint32

const (
	// OpWrite marks a modification to the watched file's contents.
	OpWrite Op = 1 << iota
	// OpCreate marks the watched path coming into existence (editors that
	// write via a temp file + rename trigger this instead of OpWrite).
	OpCreate
	// OpRemove marks the watched path being deleted.
	OpRemove
	// OpRename marks the watched path being renamed away.
	OpRename
)

// Event is a single filesystem change on a watched path.
type Event struct {
	Path string
	Op   Op
}

// Watcher delivers filesystem events for a set of watched paths. Add may
// be called after NewWatcher to watch additional paths.
type Watcher struct {
	w   *fsnotify.Watcher
	evC chan Event
	erC chan error
}

// NewWatcher starts watching path and returns a Watcher whose Events()
// and Errors() channels deliver changes to it.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{w: fw, evC: make(chan Event, 16), erC: make(chan error, 1)}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			var op Op
			if ev.Op&fsnotify.Write != 0 {
				op |= OpWrite
			}
			if ev.Op&fsnotify.Create != 0 {
				op |= OpCreate
			}
			if ev.Op&fsnotify.Remove != 0 {
				op |= OpRemove
			}
			if ev.Op&fsnotify.Rename != 0 {
				op |= OpRename
			}
			w.evC <- Event{Path: ev.Name, Op: op}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.erC <- err
		}
	}
}

// Events returns the channel on which filesystem changes are delivered.
func (w *Watcher) Events() <-chan Event { return w.evC }

// Errors returns the channel on which watcher-internal errors are
// delivered (e.g. an inotify queue overflow).
func (w *Watcher) Errors() <-chan error { return w.erC }

// Add starts watching an additional path.
func (w *Watcher) Add(path string) error { return w.w.Add(path) }

// Close stops the watcher and releases its OS resources.
func (w *Watcher) Close() error { return w.w.Close() }
