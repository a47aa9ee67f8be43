package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the file must stay quiet before it is reloaded.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk.
// Valid configs arrive on Configs; read, parse and validation failures arrive
// on Errors and leave the previous config in effect.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Configs chan PlatformerConfig
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors which replace the file on save are still seen.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    abs,
		watcher: w,
		Configs: make(chan PlatformerConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Configs)
	defer close(w.Errors)

	// Reload once the file has been quiet for reloadDebounce, so a save that
	// arrives as truncate plus write is read after the write.
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

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
			timer.Reset(reloadDebounce)
		case <-timer.C:
			cfg, err := LoadFile(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(&cfg, nil)
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

// send delivers a result unless the watcher is closing.
func (w *Watcher) send(cfg *PlatformerConfig, err error) {
	if cfg != nil {
		select {
		case w.Configs <- *cfg:
		case <-w.closeCh:
		}
		return
	}
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	}
}
