package content

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 200 * time.Millisecond

// Source serves the current copy and swaps it when the override file
// changes.
type Source struct {
	path     string
	logger   *zap.Logger
	debounce time.Duration
	current  atomic.Pointer[Site]
	onReload func(*Site)
}

// NewSource returns a Source. An empty path serves the embedded default and
// Watch returns immediately.
func NewSource(path string, logger *zap.Logger) (*Source, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Source{path: path, logger: logger, debounce: defaultDebounce}

	if path == "" {
		s.current.Store(Default())
		return s, nil
	}
	site, err := Load(path)
	if err != nil {
		return nil, err
	}
	s.current.Store(site)
	return s, nil
}

// Current returns the copy in effect.
func (s *Source) Current() *Site {
	return s.current.Load()
}

// Path returns the override file, or "" when serving the default.
func (s *Source) Path() string { return s.path }

// OnReload registers fn to run after each successful reload. It must be
// called before Watch.
func (s *Source) OnReload(fn func(*Site)) {
	s.onReload = fn
}

// Reload re-reads the override file. On error the previous copy stays in
// effect.
func (s *Source) Reload() error {
	if s.path == "" {
		return nil
	}
	site, err := Load(s.path)
	if err != nil {
		return err
	}
	s.current.Store(site)
	if s.onReload != nil {
		s.onReload(site)
	}
	return nil
}

// Watch reloads the override file on change until ctx is done. The parent
// directory is watched so editors that replace the file on save are seen.
func (s *Source) Watch(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating content watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	s.logger.Info("watching content file", zap.String("path", s.path))

	target := filepath.Clean(s.path)
	timer := time.NewTimer(s.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(s.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("content watcher error", zap.Error(err))

		case <-timer.C:
			if err := s.Reload(); err != nil {
				s.logger.Warn("content reload failed, keeping previous copy",
					zap.String("path", s.path),
					zap.Error(err),
				)
				continue
			}
			s.logger.Info("content reloaded", zap.String("path", s.path))
		}
	}
}
