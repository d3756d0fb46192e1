package datamodel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBridge_Dispatch_ForwardsAcceptedEvents(t *testing.T) {
	for _, name := range EventNames() {
		t.Run(name, func(t *testing.T) {
			sink := &recordingSink{}
			detail := map[string]int{"rows": 4}

			require.NoError(t, NewBridge(sink).Dispatch(name, detail))
			assert.Equal(t, []string{EventPrefix + name}, sink.types)
			assert.Equal(t, []any{detail}, sink.details)
		})
	}
}

func TestBridge_Dispatch_RejectsUnknownEvents(t *testing.T) {
	for _, name := range []string{
		"banana",
		"",
		"data",
		"data-changed ",
		"data-rows-changed",
		"fin-canvas-data-changed",
		"data-reindex",
		"xdata-changed",
	} {
		t.Run(name, func(t *testing.T) {
			sink := &recordingSink{}
			err := NewBridge(sink).Dispatch(name, 1)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnknownEvent))
			assert.Contains(t, err.Error(), "data-postreindex")
			assert.Empty(t, sink.types, "nothing is forwarded")
		})
	}
}

func TestBridge_Dispatch_NilSinkStillValidates(t *testing.T) {
	b := NewBridge(nil)
	assert.NoError(t, b.Dispatch(EventDataChanged, nil))
	assert.Error(t, b.Dispatch("banana", nil))
}

func TestSinkFunc(t *testing.T) {
	var got string
	require.NoError(t, NewBridge(SinkFunc(func(eventType string, _ any) { got = eventType })).
		Dispatch(EventDataShapeChanged, nil))
	assert.Equal(t, "fin-canvas-data-shape-changed", got)
}
