package datamodel

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// partialProvider implements only the read side of the contract.
type partialProvider struct {
	schema Schema
	rows   []Row
}

func (p *partialProvider) GetSchema() Schema { return p.schema }
func (p *partialProvider) GetRowCount() int  { return len(p.rows) }
func (p *partialProvider) GetRow(i int) Row {
	if i < 0 || i >= len(p.rows) {
		return nil
	}
	return p.rows[i]
}

func newPartial() *partialProvider {
	return &partialProvider{
		schema: Schema{{Name: "region"}, {Name: "sales"}},
		rows: []Row{
			{"region": "north", "sales": 10},
			{"region": "south", "sales": 20},
		},
	}
}

// observeWarnings routes the package logger to an in-memory observer for the
// duration of the test.
func observeWarnings(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })
	return logs
}

type recordingSink struct {
	types   []string
	details []any
}

func (s *recordingSink) Notify(eventType string, detail any) {
	s.types = append(s.types, eventType)
	s.details = append(s.details, detail)
}

func keyField(key string) zap.Field {
	return zap.String("key", key)
}
