package core

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher invokes a callback every time a single file is written or
// re-created. The parent directory is watched so editors that save through a
// rename are still seen.
type FileWatcher struct {
	path     string
	debounce time.Duration
	onChange func(path string)

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	closed   sync.Once
}

func NewFileWatcher(path string, debounce time.Duration, onChange func(path string)) (*FileWatcher, error) {
	if onChange == nil {
		return nil, errors.New("file watcher needs a callback")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}

	return &FileWatcher{
		path:     abs,
		debounce: debounce,
		onChange: onChange,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

// Run blocks until ctx is cancelled or Close is called.
func (fw *FileWatcher) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case e, ok := <-fw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != fw.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(fw.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(fw.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			LogDebug("watched file %s changed", fw.path)
			fw.onChange(fw.path)

		case err, ok := <-fw.fsnotify.Errors:
			if !ok {
				return
			}
			LogError(err.Error())

		case <-ctx.Done():
			return

		case <-fw.done:
			return
		}
	}
}

func (fw *FileWatcher) Close() error {
	var err error
	fw.closed.Do(func() {
		close(fw.done)
		err = fw.fsnotify.Close()
	})
	return err
}
