// Package watcher reruns the transform whenever the schema source changes.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/achuchra/ts-types-from-strapi/internal/errors"
)

// SourceWatcher watches a single source file and invokes a callback once
// events have settled for the debounce interval. Editors usually replace
// files on save, so the parent directory is watched and events are
// filtered down to the source path.
type SourceWatcher struct {
	source       string
	watcher      *fsnotify.Watcher
	debounceTime time.Duration
	onChange     func()
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
}

// New creates a watcher for the given source file.
func New(source string, debounce time.Duration, onChange func()) (*SourceWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}

	dir := filepath.Dir(source)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", dir)
	}

	return &SourceWatcher{
		source:       source,
		watcher:      watcher,
		debounceTime: debounce,
		onChange:     onChange,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}, nil
}

// Start begins watching for file changes.
func (sw *SourceWatcher) Start(ctx context.Context) {
	go sw.watch(ctx)
}

// Stop stops the file watcher and waits for the event loop to exit.
func (sw *SourceWatcher) Stop() {
	sw.stopOnce.Do(func() {
		close(sw.stopCh)
		<-sw.doneCh
		sw.watcher.Close()
	})
}

// watch is the main event loop with debouncing logic.
func (sw *SourceWatcher) watch(ctx context.Context) {
	defer close(sw.doneCh)

	var debounceTimer *time.Timer
	changedCh := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-sw.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}

			if !sw.shouldProcessEvent(event) {
				continue
			}

			log.WithFields(log.Fields{
				"op":   event.Op.String(),
				"path": event.Name,
			}).Debug("source file changed")

			// Reset debounce timer - properly stop and drain
			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}

			debounceTimer = time.AfterFunc(sw.debounceTime, func() {
				select {
				case changedCh <- struct{}{}:
				default:
				}
			})

		case <-changedCh:
			sw.onChange()

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			log.WithField("error", err).Warn("file watcher error")
		}
	}
}

// shouldProcessEvent checks if an event should trigger a regeneration.
func (sw *SourceWatcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	return filepath.Clean(event.Name) == filepath.Clean(sw.source)
}
