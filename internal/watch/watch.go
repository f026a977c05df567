// Package watch reports changes to the open file made by other programs.
//
// The file's directory is watched rather than the file itself so that
// editors which save by rename are still seen.
package watch

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrClosed is returned by Follow after Close.
var ErrClosed = errors.New("watcher closed")

const DefaultDebounce = 150 * time.Millisecond

type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	mu     sync.Mutex
	target string
	dir    string
	timer  *time.Timer
	closed bool

	events  chan string
	errors  chan error
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// New starts a watcher that follows nothing yet. Bursts of events for the
// followed file within debounce are reported once.
func New(debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		fsw:      fsw,
		debounce: debounce,
		events:   make(chan string, 1),
		errors:   make(chan error, 8),
		closeCh:  make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Follow switches the watched file to path. An empty path stops watching.
func (w *Watcher) Follow(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}

	target := ""
	dir := ""
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		target = abs
		dir = filepath.Dir(abs)
	}
	if target == w.target {
		return nil
	}

	if dir != w.dir {
		if w.dir != "" {
			_ = w.fsw.Remove(w.dir)
		}
		w.dir = ""
		if dir != "" {
			if err := w.fsw.Add(dir); err != nil {
				w.target = ""
				return err
			}
		}
		w.dir = dir
	}
	w.target = target
	if w.timer != nil {
		w.timer.Stop()
	}
	return nil
}

// Events delivers the absolute path of the followed file after it changed.
// Pending changes are coalesced.
func (w *Watcher) Events() <-chan string { return w.events }

func (w *Watcher) Errors() <-chan error { return w.errors }

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.closeCh)
	w.wg.Wait()
	close(w.events)
	close(w.errors)
	return w.fsw.Close()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.closeCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || w.target == "" || filepath.Clean(ev.Name) != w.target {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	target := w.target
	w.timer = time.AfterFunc(w.debounce, func() { w.fire(target) })
}

func (w *Watcher) fire(target string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || target != w.target {
		return
	}
	select {
	case w.events <- target:
	default:
	}
}
