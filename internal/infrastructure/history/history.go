// Package history provides an in-memory navigation history with browser
// push/replace/back/forward semantics: an ordered entry list with a
// cursor, where only back/forward moves notify subscribers.
package history

import "sync"

const defaultInitialPath = "/"

// Memory is an in-memory ports.History implementation. Safe for
// concurrent use.
type Memory struct {
	mu        sync.Mutex
	entries   []string
	cursor    int
	nextSubID int
	subs      map[int]func(path string)
}

// New returns a Memory history positioned at initialPath. An empty
// initialPath starts at "/".
func New(initialPath string) *Memory {
	if initialPath == "" {
		initialPath = defaultInitialPath
	}
	return &Memory{
		entries: []string{initialPath},
		subs:    make(map[int]func(string)),
	}
}

// Location returns the path at the cursor.
func (h *Memory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.cursor]
}

// Push appends a new entry after the cursor and moves the cursor to it.
// Any forward entries are dropped, matching pushState semantics.
// Subscribers are not notified.
func (h *Memory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.cursor+1], path)
	h.cursor = len(h.entries) - 1
}

// Replace overwrites the entry at the cursor in place. Subscribers are
// not notified.
func (h *Memory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.cursor] = path
}

// Back moves the cursor one entry towards the oldest and notifies
// subscribers. At the oldest entry it is a no-op.
func (h *Memory) Back() {
	h.mu.Lock()
	if h.cursor == 0 {
		h.mu.Unlock()
		return
	}
	h.cursor--
	path, subs := h.entries[h.cursor], h.snapshotSubs()
	h.mu.Unlock()

	notify(subs, path)
}

// Forward moves the cursor one entry towards the newest and notifies
// subscribers. At the newest entry it is a no-op.
func (h *Memory) Forward() {
	h.mu.Lock()
	if h.cursor == len(h.entries)-1 {
		h.mu.Unlock()
		return
	}
	h.cursor++
	path, subs := h.entries[h.cursor], h.snapshotSubs()
	h.mu.Unlock()

	notify(subs, path)
}

// Subscribe registers a listener invoked after every back/forward move.
func (h *Memory) Subscribe(fn func(path string)) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextSubID
	h.nextSubID++
	h.subs[id] = fn
	return id
}

// Unsubscribe removes a listener. Unknown ids are ignored.
func (h *Memory) Unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, id)
}

// Length returns the number of entries currently held.
func (h *Memory) Length() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// snapshotSubs copies the listener set so notifications run outside the
// lock. Callers must hold h.mu.
func (h *Memory) snapshotSubs() []func(string) {
	subs := make([]func(string), 0, len(h.subs))
	for _, fn := range h.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(string), path string) {
	for _, fn := range subs {
		fn(path)
	}
}
