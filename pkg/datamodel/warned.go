package datamodel

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Warning keys used by the compatibility shims.
const (
	WarnGridAccessor     = "grid-accessor"
	WarnLegacyDataSource = "legacy-data-source"
)

// WarnedSet remembers which warnings have been logged. Keys are only ever
// added; Reset exists for tests.
type WarnedSet struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewWarnedSet creates an empty set.
func NewWarnedSet() *WarnedSet {
	return &WarnedSet{keys: make(map[string]struct{})}
}

// DefaultWarned is the process-wide set shared by every grid.
var DefaultWarned = NewWarnedSet()

// Warn logs msg under key unless key was already warned about.
// It reports whether the warning was logged by this call.
func (w *WarnedSet) Warn(key, msg string) bool {
	w.mu.Lock()
	if _, seen := w.keys[key]; seen {
		w.mu.Unlock()
		return false
	}
	if w.keys == nil {
		w.keys = make(map[string]struct{})
	}
	w.keys[key] = struct{}{}
	w.mu.Unlock()

	Logger().Warn(msg, zap.String("key", key))
	return true
}

// Has reports whether key has been warned about.
func (w *WarnedSet) Has(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.keys[key]
	return ok
}

// Keys returns the warned keys in sorted order.
func (w *WarnedSet) Keys() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	keys := make([]string, 0, len(w.keys))
	for k := range w.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset forgets every key.
func (w *WarnedSet) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.keys = make(map[string]struct{})
}
