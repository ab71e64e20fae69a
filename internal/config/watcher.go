package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher observes a config file and delivers reloaded configurations after
// writes settle. Editors save with bursts of events, so events are only
// recorded when they arrive; the file is re-parsed once the burst has been
// quiet for the debounce period, so the trailing write always wins.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	log      *zap.Logger
	debounce time.Duration

	dirty   bool
	lastEvt time.Time

	reloads chan *Config
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewWatcher creates a watcher for the given config file path.
func NewWatcher(path string, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		watcher:  fw,
		path:     path,
		log:      logger.Named("config-watcher"),
		debounce: 500 * time.Millisecond,
		reloads:  make(chan *Config, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Reloads delivers each successfully re-parsed configuration.
func (w *Watcher) Reloads() <-chan *Config {
	return w.reloads
}

// Start begins watching the config file's directory. Non-blocking; events
// are processed until Stop or context cancellation. On error the watcher is
// left stopped, so Stop stays safe to call.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	// Watch the directory rather than the file: editors replace files on
	// save, which drops a direct file watch.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	w.running = true
	go w.run(ctx)
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.processPending()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.recordEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}

// recordEvent marks the config file dirty. No parsing happens here: a save
// burst may leave the file half-written until its last event.
func (w *Watcher) recordEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.path) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	w.mu.Lock()
	w.dirty = true
	w.lastEvt = time.Now()
	w.mu.Unlock()
}

// processPending re-parses the file once the event burst has been quiet for
// the debounce period.
func (w *Watcher) processPending() {
	w.mu.Lock()
	if !w.dirty || time.Since(w.lastEvt) < w.debounce {
		w.mu.Unlock()
		return
	}
	w.dirty = false
	w.mu.Unlock()

	cfg, err := Load(w.path)
	if err != nil {
		w.log.Warn("reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.log.Debug("config reloaded", zap.String("path", w.path))

	// Keep only the newest pending reload.
	select {
	case w.reloads <- cfg:
	default:
		select {
		case <-w.reloads:
		default:
		}
		w.reloads <- cfg
	}
}

// Stop ends watching and releases the underlying notifier. Idempotent, and
// safe after a failed Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.watcher.Close()
}
