// SPDX-License-Identifier: MPL-2.0

// Package watch re-runs a callback whenever a single file changes.
//
// The file's parent directory is watched rather than the file itself, so
// editors that save by writing a temp file and renaming it over the original
// are still observed. Bursts of events inside the debounce window collapse
// into one callback.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period used when Config.Debounce is not positive.
const DefaultDebounce = 200 * time.Millisecond

// ErrAlreadyStarted is returned by a second call to Run.
var ErrAlreadyStarted = errors.New("watch: Run called more than once")

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Path is the file to watch. It does not need to exist yet.
		Path string
		// Debounce is the quiet period after the last event before OnChange fires.
		Debounce time.Duration
		// OnChange runs on the Run goroutine, so invocations never overlap.
		// Returned errors are logged and watching continues.
		OnChange func(ctx context.Context) error
	}

	// Watcher fires a debounced callback when its file changes.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		target   string
		debounce time.Duration
		started  atomic.Bool
	}
)

// New resolves cfg.Path and starts watching its parent directory.
func New(cfg Config) (*Watcher, error) {
	target, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", cfg.Path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close() //nolint:errcheck // best-effort cleanup
		return nil, fmt.Errorf("watch: add directory %q: %w", filepath.Dir(target), err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		target:   target,
		debounce: debounce,
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.target }

// Run blocks until ctx is canceled, dispatching OnChange after each burst of
// changes to the watched file. It returns nil on cancellation and an error
// when the underlying watcher breaks.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer func() {
		if err := w.fsw.Close(); err != nil {
			log.FromContext(ctx).Warn("close fsnotify watcher", "error", err)
		}
	}()

	logger := log.FromContext(ctx)

	var (
		timer  *time.Timer
		fireCh <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: fsnotify event channel closed unexpectedly")
			}
			if filepath.Clean(evt.Name) != w.target || !evt.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("input changed", "path", w.target, "op", evt.Op.String())

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fireCh = timer.C

		case <-fireCh:
			fireCh = nil
			if w.cfg.OnChange == nil {
				continue
			}
			if err := w.cfg.OnChange(ctx); err != nil {
				logger.Warn("watch callback failed", "path", w.target, "error", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: fsnotify error channel closed unexpectedly")
			}
			if isFatal(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			logger.Warn("fsnotify error", "error", err)
		}
	}
}
