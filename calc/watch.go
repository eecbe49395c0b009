package calc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

var (
	ErrAlreadyWatching = errors.New("calc: already watching")
	ErrNotWatching     = errors.New("calc: not watching")
)

// Watcher re-evaluates expression files as they change on disk.
type Watcher struct {
	engine  Engine
	logger  *zap.Logger
	watcher *fsnotify.Watcher
	dirs    []string
	report  func(Result)

	mu       sync.Mutex
	watching bool
}

// NewWatcher builds a Watcher over dirs. report, if non-nil, receives the
// result of every successful re-evaluation.
func NewWatcher(engine Engine, logger *zap.Logger, dirs []string, report func(Result)) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		engine:  engine,
		logger:  logger,
		watcher: fsWatcher,
		dirs:    dirs,
		report:  report,
	}, nil
}

// Start registers every directory under the watched roots and begins
// handling change events in the background.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watching {
		return ErrAlreadyWatching
	}

	for _, dir := range w.dirs {
		err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return w.watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	w.watching = true
	go w.watchLoop()
	return nil
}

// Stop ends the watch. The background loop drains once the underlying
// watcher closes its channels.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.watching {
		return ErrNotWatching
	}

	w.watching = false
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !hasDesiredExtension(event.Name) {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(100 * time.Millisecond)

	result, err := w.engine.EvalFile(event.Name)
	if err != nil {
		w.logger.Error("Error evaluating file", zap.String("file", event.Name), zap.Error(err))
		return
	}

	w.logger.Info("Evaluated", zap.String("file", event.Name), zap.Int("value", result.Value))
	if w.report != nil {
		w.report(result)
	}
}
