// Package watcher reports edits to the plugin's settings file made outside
// this process, such as by the plugin itself or a text editor.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/amterp/filecolor/internal/config"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

// ChangeType indicates what type of change occurred.
type ChangeType string

const (
	ChangeCreated  ChangeType = "created"
	ChangeModified ChangeType = "modified"
	ChangeDeleted  ChangeType = "deleted"
)

// Change represents a settings file change notification.
type Change struct {
	Type ChangeType `json:"type"`
	Path string     `json:"path"`
}

// Subscriber receives change notifications.
type Subscriber interface {
	OnSettingsChange(change Change)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(change Change)

func (f SubscriberFunc) OnSettingsChange(change Change) { f(change) }

// Watcher watches the plugin directory and notifies subscribers when the
// settings file changes.
type Watcher struct {
	watcher      *fsnotify.Watcher
	dir          string
	settingsFile string
	logger       *log.Logger
	debounceFor  time.Duration

	mu          sync.RWMutex
	subscribers []Subscriber
	timer       *time.Timer
	timerMu     sync.Mutex
	stopCh      chan struct{}
	stopped     bool // Once stopped, cannot restart
	running     bool
}

// New creates a watcher for the settings file of the given vault.
func New(paths *config.Paths, logger *log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		watcher:      fsw,
		dir:          paths.PluginDir(),
		settingsFile: filepath.Base(paths.SettingsPath()),
		logger:       logger,
		debounceFor:  DefaultDebounce,
		stopCh:       make(chan struct{}),
	}, nil
}

// Subscribe adds a subscriber to receive change notifications.
func (w *Watcher) Subscribe(sub Subscriber) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, sub)
}

// Start begins watching. The plugin directory is created if missing so the
// first save by the plugin is seen.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if w.stopped {
		w.mu.Unlock()
		return fmt.Errorf("watcher cannot be restarted after stop")
	}
	w.running = true
	w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return fmt.Errorf("failed to create plugin directory: %w", err)
	}
	// Watch the directory, not the file: atomic saves replace the inode
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	w.logger.Debug("watching settings", "dir", w.dir)
	go w.run()
	return nil
}

// Stop stops watching for changes.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running || w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	w.stopped = true
	w.mu.Unlock()

	// Cancel a pending debounce so it cannot fire after stop
	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.timerMu.Unlock()

	close(w.stopCh)
	return w.watcher.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "err", err)

		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	change, ok := w.classify(event)
	if !ok {
		return
	}

	// Debounce: only the last change in a burst is emitted
	w.timerMu.Lock()
	defer w.timerMu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounceFor, func() {
		w.emit(change)
	})
}

func (w *Watcher) emit(change Change) {
	w.mu.RLock()
	if w.stopped {
		w.mu.RUnlock()
		return
	}
	subs := make([]Subscriber, len(w.subscribers))
	copy(subs, w.subscribers)
	w.mu.RUnlock()

	w.logger.Debug("settings changed on disk", "type", change.Type, "path", change.Path)
	for _, sub := range subs {
		sub.OnSettingsChange(change)
	}
}

// classify maps an event to a settings change. Events for other files,
// including the store's temp file, are dropped.
func (w *Watcher) classify(event fsnotify.Event) (Change, bool) {
	base := filepath.Base(event.Name)
	if base != w.settingsFile {
		return Change{}, false
	}

	change := Change{Path: event.Name}
	switch {
	case event.Op&fsnotify.Create != 0:
		change.Type = ChangeCreated
	case event.Op&fsnotify.Write != 0:
		change.Type = ChangeModified
	case event.Op&fsnotify.Remove != 0:
		change.Type = ChangeDeleted
	case event.Op&fsnotify.Rename != 0:
		change.Type = ChangeDeleted // Rename source is effectively deleted
	default:
		return Change{}, false
	}
	return change, true
}
