package seed

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"ordertable/internal/logging"
	"ordertable/internal/orders"

	"github.com/fsnotify/fsnotify"
)

// Resetter receives a freshly loaded seed. *store.Store satisfies it.
type Resetter interface {
	Reset(seed []orders.Order)
}

// Watcher reloads a seed file into a store whenever the file changes.
// It watches the file's directory so editors that save by rename still
// trigger a reload.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	path        string
	target      Resetter
	pending     time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats WatcherStats
}

// WatcherStats counts watcher activity.
type WatcherStats struct {
	Reloads   int
	Failures  int
	LastEvent time.Time
	LastError string
}

// NewWatcher creates a watcher for path that resets target on change.
func NewWatcher(path string, target Resetter) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create seed watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to resolve seed path: %w", err)
	}
	return &Watcher{
		watcher:     fw,
		path:        abs,
		target:      target,
		debounceDur: 200 * time.Millisecond, // editors write in bursts
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.running = true
	w.mu.Unlock()

	logging.Seed("watching seed file %s", w.path)
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
// It is safe to call more than once, and before Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		select {
		case <-w.stopCh:
		default:
			close(w.stopCh)
		}
		<-w.doneCh
	}

	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategorySeed).Error("error closing seed watcher: %v", err)
	}
}

// Stats returns a copy of the watcher counters.
func (w *Watcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.SeedDebug("seed watcher: context cancelled")
			return

		case <-w.stopCh:
			logging.SeedDebug("seed watcher: stop signal received")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategorySeed).Error("seed watcher error: %v", err)

		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}
	logging.SeedDebug("seed watcher: %s %s", event.Op, event.Name)

	w.mu.Lock()
	w.pending = time.Now()
	w.stats.LastEvent = w.pending
	w.mu.Unlock()
}

// flush reloads once the last event has settled past the debounce window.
func (w *Watcher) flush() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	w.reload()
}

func (w *Watcher) reload() {
	list, err := Load(w.path)
	if err != nil {
		// Keep the current data; a half-saved file is common.
		logging.Get(logging.CategorySeed).Warn("seed reload failed: %v", err)
		logging.Audit().SeedReloaded(w.path, 0, err)
		w.mu.Lock()
		w.stats.Failures++
		w.stats.LastError = err.Error()
		w.mu.Unlock()
		return
	}

	w.target.Reset(list)
	logging.Audit().SeedReloaded(w.path, len(list), nil)

	w.mu.Lock()
	w.stats.Reloads++
	w.stats.LastError = ""
	w.mu.Unlock()
}
