// Package watch regenerates on schema changes: it watches source
// directories and invokes a callback with batches of changed paths,
// coalesced so one save burst triggers one regeneration.
package watch

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period that closes a change batch.
const DefaultDebounce = 250 * time.Millisecond

// A Watcher reports debounced filesystem changes under a set of
// directories.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
}

// New returns a watcher over the given directories. A zero debounce means
// DefaultDebounce.
func New(dirs []string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, d := range dirs {
		if err := fsw.Add(d); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{fsw: fsw, debounce: debounce}, nil
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run blocks, invoking fn with each debounced batch of changed paths, until
// ctx is cancelled or the event source fails. Chmod-only events are
// ignored; they fire on reads on some platforms.
func (w *Watcher) Run(ctx context.Context, fn func(paths []string)) error {
	paths := make(chan string)
	done := make(chan error, 1)
	go func() {
		defer close(paths)
		for {
			select {
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case ev, ok := <-w.fsw.Events:
				if !ok {
					done <- nil
					return
				}
				if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case paths <- ev.Name:
				case <-ctx.Done():
					done <- ctx.Err()
					return
				}
			case err, ok := <-w.fsw.Errors:
				if !ok {
					done <- nil
					return
				}
				done <- err
				return
			}
		}
	}()
	coalesce(paths, w.debounce, fn)
	return <-done
}

// coalesce batches incoming paths: a batch closes after quiet time with no
// new paths, then fn runs once for the batch. Paths are deduplicated within
// a batch, preserving first-seen order. It returns when in is closed.
//
// Separated from the fsnotify plumbing so the batching behavior is
// testable without a real filesystem.
func coalesce(in <-chan string, quiet time.Duration, fn func(paths []string)) {
	var (
		batch []string
		seen  map[string]struct{}
		timer *time.Timer
		fire  <-chan time.Time
	)
	reset := func() {
		if timer == nil {
			timer = time.NewTimer(quiet)
		} else {
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(quiet)
		}
		fire = timer.C
	}
	flush := func() {
		if len(batch) > 0 {
			fn(batch)
			batch = nil
			seen = nil
		}
		fire = nil
	}
	for {
		select {
		case p, ok := <-in:
			if !ok {
				flush()
				return
			}
			if seen == nil {
				seen = make(map[string]struct{})
			}
			if _, dup := seen[p]; !dup {
				seen[p] = struct{}{}
				batch = append(batch, p)
			}
			reset()
		case <-fire:
			flush()
		}
	}
}
