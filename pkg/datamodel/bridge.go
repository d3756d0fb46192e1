package datamodel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// EventPrefix namespaces data model events on the host's event surface.
const EventPrefix = "fin-canvas-"

// Data model event names a provider may dispatch.
const (
	EventDataChanged       = "data-changed"
	EventDataSchemaChanged = "data-schema-changed"
	EventDataShapeChanged  = "data-shape-changed"
	EventDataPreReindex    = "data-prereindex"
	EventDataPostReindex   = "data-postreindex"
)

// ErrUnknownEvent is returned when a provider dispatches an event name
// outside EventNames.
var ErrUnknownEvent = errors.New("unrecognized data model event")

var eventNamePattern = regexp.MustCompile(`^data(-schema|-shape)?-changed$|^data-(pre|post)reindex$`)

// EventNames returns the accepted event names.
func EventNames() []string {
	return []string{
		EventDataChanged,
		EventDataSchemaChanged,
		EventDataShapeChanged,
		EventDataPreReindex,
		EventDataPostReindex,
	}
}

// ValidEventName reports whether name is an accepted data model event.
func ValidEventName(name string) bool {
	return eventNamePattern.MatchString(name)
}

// Sink is the host's outer event channel.
type Sink interface {
	Notify(eventType string, detail any)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(eventType string, detail any)

// Notify calls f(eventType, detail).
func (f SinkFunc) Notify(eventType string, detail any) { f(eventType, detail) }

// Bridge forwards validated provider notifications to a Sink.
type Bridge struct {
	sink Sink
}

// NewBridge creates a bridge forwarding to sink. A nil sink drops events
// after validation.
func NewBridge(sink Sink) *Bridge {
	return &Bridge{sink: sink}
}

// Dispatch validates name and forwards EventPrefix+name with detail.
func (b *Bridge) Dispatch(name string, detail any) error {
	if !ValidEventName(name) {
		return fmt.Errorf("%w %q (expected one of: %s)", ErrUnknownEvent, name, strings.Join(EventNames(), ", "))
	}
	Logger().Debug("data model event", zap.String("event", name))
	if b.sink != nil {
		b.sink.Notify(EventPrefix+name, detail)
	}
	return nil
}
