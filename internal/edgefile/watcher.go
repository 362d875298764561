package edgefile

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single edge file using fsnotify. It watches
// the parent directory so that editors which replace the file on save are
// still seen.
type Watcher struct {
	File    string
	Changes <-chan string // Read-only external channel

	changes  chan string // Internal write channel
	done     chan struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
	started  bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher for the file at path.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan string, 16)
	return &Watcher{
		File:     abs,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Start begins watching. On error the underlying fsnotify watcher is
// closed; Stop is still safe to call.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.File)); err != nil {
		w.watcher.Close()
		return err
	}

	w.started = true
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel. It may be called
// without a successful Start, and more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.watcher.Close()
		if w.started {
			<-w.done // Wait for loop to exit
		}
		close(w.changes)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					w.emit()
				}
				return
			}
			if filepath.Clean(event.Name) != w.File {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if !pending.IsZero() && now.Sub(pending) >= w.debounce {
				w.emit()
				pending = time.Time{}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Ignore watch errors; they're non-fatal.
		}
	}
}

func (w *Watcher) emit() {
	select {
	case w.changes <- w.File:
	default:
		// A change is already queued; one reload covers both.
	}
}
