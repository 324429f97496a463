package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period after the last write before a reload.
const debounce = 100 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
// Successfully validated configs are delivered on Updates, parse and
// validation failures on Errors. Both channels close when the watcher stops.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan GameConfig
	Errors  chan error
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors replacing the file through a rename are still noticed.
func NewWatcher(ctx context.Context, path string) (*Watcher, error) {
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

	watcher := &Watcher{
		path:    abs,
		watcher: w,
		Updates: make(chan GameConfig, 1),
		Errors:  make(chan error, 1),
	}
	go watcher.run(ctx)
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.Updates)
	defer close(w.Errors)
	defer w.watcher.Close()

	timer := time.NewTimer(debounce)
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
			timer.Reset(debounce)
		case <-timer.C:
			cfg, err := LoadFile(w.path)
			if err != nil {
				w.send(ctx, nil, err)
				continue
			}
			w.send(ctx, &cfg, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(ctx, nil, err)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) send(ctx context.Context, cfg *GameConfig, err error) {
	if cfg != nil {
		select {
		case w.Updates <- *cfg:
		case <-ctx.Done():
		}
		return
	}
	select {
	case w.Errors <- err:
	case <-ctx.Done():
	}
}
