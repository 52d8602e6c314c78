package layout

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a layout file whenever it changes on disk. Successfully
// parsed layouts arrive on Layouts, failures on Errors.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Layouts chan *Layout
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches the directory holding path, so editors that replace the
// file on save are still noticed.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("layout: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("layout: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		path:    filepath.Clean(path),
		watcher: w,
		Layouts: make(chan *Layout, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Layouts)
		close(w.Errors)
	})
	return err
}

// settle is how long the file must stay quiet before it is reloaded; editors
// often truncate and write in separate steps.
const settle = 100 * time.Millisecond

func (w *Watcher) run() {
	defer close(w.done)
	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(settle)
		case <-timer.C:
			l, err := Load(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(l, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send delivers the newest result, dropping a stale one nobody picked up yet.
func (w *Watcher) send(l *Layout, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		default:
		}
		return
	}
	for {
		select {
		case w.Layouts <- l:
			return
		case <-w.closeCh:
			return
		default:
			select {
			case <-w.Layouts:
			default:
			}
		}
	}
}
