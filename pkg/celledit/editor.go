// Package celledit provides cell editors created by name through a Registry.
package celledit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned by Validate and Commit when input is rejected.
var ErrInvalidValue = errors.New("invalid cell value")

// ErrReadOnly is returned by Commit when the data model cannot store values.
var ErrReadOnly = errors.New("cell is read-only")

// CellEvent describes the cell an editor is opened on.
type CellEvent struct {
	Col    int
	Row    int
	Column string // schema name of the column
	Value  any

	// Commit stores an accepted value back into the data model.
	Commit func(v any) error
}

// Editor edits a single cell value.
type Editor interface {
	// Name returns the registry name the editor was created under.
	Name() string
	// Initial returns the text to seed the editor with.
	Initial() string
	// Validate checks input without committing it.
	Validate(input string) error
	// Commit converts input to a cell value and stores it via the cell event.
	Commit(input string) error
}

// TextField edits a value as free text.
type TextField struct {
	name  string
	event *CellEvent
}

// NewTextField creates a text editor for the given cell.
func NewTextField(ev *CellEvent) Editor {
	return &TextField{name: "textfield", event: ev}
}

func (e *TextField) Name() string { return e.name }

func (e *TextField) Initial() string { return initialText(e.event) }

func (e *TextField) Validate(string) error { return nil }

func (e *TextField) Commit(input string) error {
	return commit(e.event, input)
}

// NumberField edits a value that must parse as a float.
type NumberField struct {
	event *CellEvent
}

// NewNumberField creates a numeric editor for the given cell.
func NewNumberField(ev *CellEvent) Editor {
	return &NumberField{event: ev}
}

func (e *NumberField) Name() string { return "number" }

func (e *NumberField) Initial() string { return initialText(e.event) }

func (e *NumberField) Validate(input string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(input), 64); err != nil {
		return fmt.Errorf("%w: %q is not a number", ErrInvalidValue, input)
	}
	return nil
}

func (e *NumberField) Commit(input string) error {
	if err := e.Validate(input); err != nil {
		return err
	}
	f, _ := strconv.ParseFloat(strings.TrimSpace(input), 64)
	return commit(e.event, f)
}

func initialText(ev *CellEvent) string {
	if ev == nil || ev.Value == nil {
		return ""
	}
	if s, ok := ev.Value.(string); ok {
		return s
	}
	return fmt.Sprint(ev.Value)
}

func commit(ev *CellEvent, v any) error {
	if ev == nil || ev.Commit == nil {
		return nil
	}
	return ev.Commit(v)
}
