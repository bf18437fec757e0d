// Package deckwatch notifies when the deck or the config file changes on disk.
package deckwatch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/andyrewlee/carousel/internal/logging"
	"github.com/andyrewlee/carousel/internal/safego"
)

// Change reasons passed to the callback.
const (
	ReasonDeck   = "deck"
	ReasonConfig = "config"
)

const defaultDebounce = 150 * time.Millisecond

// Watcher watches a deck (file or directory) and a config file. Bursts of
// events are coalesced; each distinct reason is reported once per burst.
type Watcher struct {
	watcher *fsnotify.Watcher

	deckPath   string
	deckIsDir  bool
	configPath string

	onChanged func(reason string)
	debounce  time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	pending   map[string]struct{}
	closed    bool
	closeOnce sync.Once
	cancel    context.CancelFunc
	done      <-chan struct{}
}

// New creates a watcher. Either path may be empty to skip it. The callback
// runs on a timer goroutine.
func New(deckPath, configPath string, onChanged func(reason string)) (*Watcher, error) {
	if deckPath == "" && configPath == "" {
		return nil, errors.New("nothing to watch")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher:   fw,
		onChanged: onChanged,
		debounce:  defaultDebounce,
		pending:   make(map[string]struct{}),
	}

	dirs := map[string]struct{}{}
	if deckPath != "" {
		w.deckPath = filepath.Clean(deckPath)
		if info, err := os.Stat(w.deckPath); err == nil && info.IsDir() {
			w.deckIsDir = true
			dirs[w.deckPath] = struct{}{}
		} else {
			dirs[filepath.Dir(w.deckPath)] = struct{}{}
		}
	}
	if configPath != "" {
		w.configPath = filepath.Clean(configPath)
		dirs[filepath.Dir(w.configPath)] = struct{}{}
	}

	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// SetDebounce overrides the coalescing window.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	w.debounce = d
	w.mu.Unlock()
}

// Start runs the event loop in the background until ctx is done or Close is
// called.
func (w *Watcher) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()
	w.done = safego.Go("deckwatch", func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Warn("deck watcher stopped: %v", err)
		}
	})
}

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if reason := w.classify(event); reason != "" {
				w.scheduleNotify(reason)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Debug("deck watcher error: %v", err)
		}
	}
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		cancel := w.cancel
		w.mu.Unlock()
		if cancel != nil {
			cancel()
		}
		err = w.watcher.Close()
		if w.done != nil {
			<-w.done
		}
	})
	return err
}

func (w *Watcher) classify(event fsnotify.Event) string {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return ""
	}
	name := filepath.Clean(event.Name)
	switch {
	case w.configPath != "" && name == w.configPath:
		return ReasonConfig
	case w.deckPath == "":
		return ""
	case w.deckIsDir:
		if filepath.Dir(name) == w.deckPath && isSlideFile(name) {
			return ReasonDeck
		}
	case name == w.deckPath:
		return ReasonDeck
	}
	return ""
}

func isSlideFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(base))
	return ext == ".md" || ext == ".markdown"
}

func (w *Watcher) scheduleNotify(reason string) {
	if w.onChanged == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.pending[reason] = struct{}{}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.fire)
	} else {
		w.timer.Reset(w.debounce)
	}
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	reasons := make([]string, 0, len(w.pending))
	for r := range w.pending {
		reasons = append(reasons, r)
	}
	clear(w.pending)
	w.timer = nil
	w.mu.Unlock()

	sort.Strings(reasons)
	for _, r := range reasons {
		safego.Run("deckwatch.notify", func() { w.onChanged(r) })
	}
}
