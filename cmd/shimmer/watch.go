package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// sceneWatcher reports changes to one scene file. It watches the parent
// directory so editors that save by rename are still seen, and collapses
// bursts of writes into one notification.
type sceneWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	changes  chan struct{}
	logger   *zap.Logger
}

func newSceneWatcher(path string, logger *zap.Logger) (*sceneWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scene path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &sceneWatcher{
		watcher:  w,
		path:     abs,
		debounce: 100 * time.Millisecond,
		changes:  make(chan struct{}, 1),
		logger:   logger,
	}, nil
}

// Changes receives a value after the scene file settles following a change.
// It is closed when Run returns.
func (sw *sceneWatcher) Changes() <-chan struct{} { return sw.changes }

// Run forwards changes until ctx is done, then closes the watcher.
func (sw *sceneWatcher) Run(ctx context.Context) error {
	defer close(sw.changes)
	defer sw.watcher.Close()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != sw.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			pending = time.After(sw.debounce)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return nil
			}
			sw.logger.Warn("scene watcher error", zap.Error(err))
		case <-pending:
			pending = nil
			select {
			case sw.changes <- struct{}{}:
			default:
			}
		}
	}
}
