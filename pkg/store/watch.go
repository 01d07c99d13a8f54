package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventPageChanged indicates the named page was written or removed.
	EventPageChanged EventType = iota

	// EventCatalogChanged indicates the style catalog was written.
	EventCatalogChanged

	// EventInvalidated signals a change that could not be classified;
	// callers should reload everything they hold.
	EventInvalidated
)

func (t EventType) String() string {
	switch t {
	case EventPageChanged:
		return "page"
	case EventCatalogChanged:
		return "catalog"
	default:
		return "invalidated"
	}
}

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Page string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel; events are dropped while the consumer is not ready.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	for _, dir := range []string{p.basePath, filepath.Join(p.basePath, pagesDir), filepath.Join(p.basePath, catalogDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: ensure %s: %w", dir, err)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch: %v\n", err)
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev, ok := p.eventForPath(evt.Name); ok {
					throttle.Enqueue(ev, send)
				}
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// eventForPath classifies a diskv path. Temporary files are ignored.
func (p *persistence) eventForPath(path string) (Event, bool) {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return Event{}, false
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	switch {
	case len(parts) == 2 && parts[0] == pagesDir:
		name, ok := pageFromFile(parts[1])
		if !ok {
			return Event{}, false
		}
		return Event{Type: EventPageChanged, Page: name}, true
	case len(parts) == 2 && parts[0] == catalogDir && parts[1] == catalogFile:
		return Event{Type: EventCatalogChanged}, true
	case len(parts) == 1 && (parts[0] == pagesDir || parts[0] == catalogDir):
		return Event{Type: EventInvalidated}, true
	}
	return Event{}, false
}

// eventThrottle coalesces bursts of filesystem activity, a single diskv
// write produces several notifications.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[Event]struct{}
	delay   time.Duration
	stopped bool
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[Event]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev] = struct{}{}
	if t.timer == nil && !t.stopped {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

// flush sends while holding the lock so nothing is sent once Stop returns.
// send must not block.
func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	pending := t.pending
	t.pending = make(map[Event]struct{})
	t.timer = nil
	if t.stopped {
		return
	}
	for ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
