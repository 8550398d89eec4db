package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/shiptraffic/pkg/log"
)

// DefaultDebounceDelay coalesces the burst of events an editor produces on save.
const DefaultDebounceDelay = 100 * time.Millisecond

// Watcher reports changes to a loaded data file. It never reloads the dataset;
// the session keeps answering from the snapshot taken at startup.
type Watcher struct {
	path          string
	logger        log.Logger
	debounceDelay time.Duration
	onChange      func(path string)

	mu       sync.Mutex
	debounce *time.Timer
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounceDelay sets the delay between the last file event and the report.
func WithDebounceDelay(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounceDelay = d
		}
	}
}

// WithOnChange registers a callback invoked after each debounced change.
func WithOnChange(fn func(path string)) WatcherOption {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// NewWatcher creates a watcher for the data file at path.
func NewWatcher(path string, logger log.Logger, opts ...WatcherOption) *Watcher {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	w := &Watcher{
		path:          filepath.Clean(path),
		logger:        logger,
		debounceDelay: DefaultDebounceDelay,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. The parent directory is watched so that editors which
// replace the file by rename are still observed.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("dataset: create watcher: %w", err)
	}
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return fmt.Errorf("dataset: watch %s: %w", dir, err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.loop(watchCtx, fw)

	w.logger.Debug("watching data file", log.String("path", w.path))
	return nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()
	return nil
}

func (w *Watcher) loop(ctx context.Context, fw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fw.Close()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.debounceReport(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("data file watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) debounceReport(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(w.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		w.logger.Warn("data file changed on disk; restart to load the new records",
			log.String("path", w.path))
		if w.onChange != nil {
			w.onChange(w.path)
		}
	})
}
