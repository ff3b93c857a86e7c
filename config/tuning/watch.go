package tuning

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/automoto/wallkick/shared/controller"
	"github.com/fsnotify/fsnotify"
)

// Debounce is how long a tuning file has to stay quiet after a change
// before it is reloaded. Editors often write a file in several steps.
const Debounce = 100 * time.Millisecond

// Watcher reloads a tuning file whenever it changes on disk.
// Reloaded tuning arrives on Updates; only the newest one is kept if the
// consumer falls behind. Load problems arrive on Errors, and when the file
// was merely corrected by validation the tuning is still delivered.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan controller.Tuning
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch starts watching path. The parent directory is watched so that
// editors that replace the file by renaming keep working.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &Watcher{
		path:    abs,
		watcher: w,
		Updates: make(chan controller.Tuning, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Poll returns the newest reloaded tuning, if any, without blocking.
func (w *Watcher) Poll() (controller.Tuning, bool) {
	select {
	case t := <-w.Updates:
		return t, true
	default:
		return controller.Tuning{}, false
	}
}

// PollError returns a pending load error, if any, without blocking.
func (w *Watcher) PollError() error {
	select {
	case err := <-w.Errors:
		return err
	default:
		return nil
	}
}

func (w *Watcher) run() {
	defer close(w.done)

	var debounce *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(Debounce)
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(Debounce)
			}
			fire = debounce.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			if debounce != nil {
				debounce.Stop()
			}
			return
		}
	}
}

func (w *Watcher) reload() {
	t, err := LoadFile(w.path)
	if err != nil {
		w.report(err)
		if errors.Is(err, ErrUnreadable) {
			return
		}
	}

	// Keep only the newest tuning.
	select {
	case <-w.Updates:
	default:
	}
	w.Updates <- t
}

func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
