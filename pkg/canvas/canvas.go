// Package canvas is the grid's outer event surface. Keyboard, mouse, and
// data-model notifications are all delivered to listeners registered here.
package canvas

import (
	"sync"
	"time"
)

// Event is a named notification with an opaque payload.
type Event struct {
	Type   string
	Detail any
	At     time.Time
}

// Listener receives events of the type it was registered for.
type Listener func(Event)

// Canvas fans events out to listeners and keeps a bounded history.
// The zero value is ready to use and retains DefaultHistorySize events.
type Canvas struct {
	mu        sync.Mutex
	listeners map[string][]Listener
	history   []Event
	maxEvents int
	now       func() time.Time
}

// DefaultHistorySize is the number of events retained by New.
const DefaultHistorySize = 256

// New creates a canvas retaining the last DefaultHistorySize events.
func New() *Canvas {
	return &Canvas{
		listeners: make(map[string][]Listener),
		maxEvents: DefaultHistorySize,
		now:       time.Now,
	}
}

// AddEventListener registers fn for events of the given type.
// The type "*" receives every event.
func (c *Canvas) AddEventListener(eventType string, fn Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.listeners == nil {
		c.listeners = make(map[string][]Listener)
	}
	c.listeners[eventType] = append(c.listeners[eventType], fn)
}

// Notify dispatches a new event. Listeners run synchronously on the caller's
// goroutine, after the canvas lock is released.
func (c *Canvas) Notify(eventType string, detail any) {
	c.mu.Lock()
	now, limit := c.now, c.maxEvents
	if now == nil {
		now = time.Now
	}
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	ev := Event{Type: eventType, Detail: detail, At: now()}
	c.history = append(c.history, ev)
	if over := len(c.history) - limit; over > 0 {
		c.history = c.history[over:]
	}
	listeners := make([]Listener, 0, len(c.listeners[eventType])+len(c.listeners["*"]))
	listeners = append(listeners, c.listeners[eventType]...)
	listeners = append(listeners, c.listeners["*"]...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}

// Events returns a copy of the retained event history, oldest first.
func (c *Canvas) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.history))
	copy(out, c.history)
	return out
}

// EventTypes returns the types of the retained events, oldest first.
func (c *Canvas) EventTypes() []string {
	events := c.Events()
	types := make([]string, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	return types
}
