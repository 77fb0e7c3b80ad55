package dataset

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Store holds the current dataset and allows it to be replaced while readers
// use it.
type Store struct {
	mu      sync.RWMutex
	dataset *Dataset
}

// NewStore wraps an initial dataset.
func NewStore(d *Dataset) *Store {
	return &Store{dataset: d}
}

// Get returns the current dataset.
func (s *Store) Get() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

// Set replaces the current dataset.
func (s *Store) Set(d *Dataset) {
	s.mu.Lock()
	s.dataset = d
	s.mu.Unlock()
}

// Watch reloads the dataset whenever one of its files is written or
// recreated and passes the result to onChange. A failed reload is logged and
// the previous dataset stays in use. Watch runs until ctx is cancelled.
func Watch(ctx context.Context, logger *zap.Logger, paths Paths, onChange func(*Dataset)) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch directories so atomic saves that replace the file are still seen.
	watched := make(map[string]struct{})
	files := make(map[string]struct{})
	for _, file := range paths.Files() {
		clean := filepath.Clean(file)
		files[clean] = struct{}{}
		dir := filepath.Dir(clean)
		if _, ok := watched[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		watched[dir] = struct{}{}
	}

	logger.Info("watching dataset for changes",
		zap.String("op", "dataset.Watch"),
		zap.Strings("files", paths.Files()),
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, relevant := files[filepath.Clean(event.Name)]; !relevant {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			d, err := Load(logger, paths)
			if err != nil {
				logger.Error("dataset reload failed, keeping previous dataset",
					zap.String("op", "dataset.Watch"),
					zap.String("file", event.Name),
					zap.Error(err),
				)
				continue
			}

			logger.Info("dataset reloaded",
				zap.String("op", "dataset.Watch"),
				zap.String("file", event.Name),
			)
			onChange(d)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("dataset watcher error",
				zap.String("op", "dataset.Watch"),
				zap.Error(err),
			)
		}
	}
}
