package celledit

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingEvent(value any) (*CellEvent, *[]any) {
	var got []any
	return &CellEvent{
		Col:    1,
		Row:    3,
		Column: "qty",
		Value:  value,
		Commit: func(v any) error {
			got = append(got, v)
			return nil
		},
	}, &got
}

func TestRegistry_Create_BuildsFreshInstances(t *testing.T) {
	r := NewRegistry()
	ev, _ := recordingEvent("a")

	first, err := r.Create("textfield", ev)
	require.NoError(t, err)
	second, err := r.Create("textfield", ev)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, "textfield", first.Name())
	assert.Equal(t, []string{"external", "number", "textfield"}, r.Names())
}

func TestRegistry_Create_UnknownNameIsError(t *testing.T) {
	_, err := NewRegistry().Create("colorpicker", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEditor))
}

func TestTextField_CommitsRawInput(t *testing.T) {
	ev, got := recordingEvent(12)
	ed := NewTextField(ev)

	assert.Equal(t, "12", ed.Initial())
	require.NoError(t, ed.Commit("thirteen"))
	assert.Equal(t, []any{"thirteen"}, *got)
}

func TestNumberField_RejectsNonNumbers(t *testing.T) {
	ev, got := recordingEvent(1.5)
	ed := NewNumberField(ev)

	err := ed.Commit("lots")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidValue))
	assert.Empty(t, *got)

	require.NoError(t, ed.Commit(" 2.25 "))
	assert.Equal(t, []any{2.25}, *got)
}

func TestEditors_NilEventIsTolerated(t *testing.T) {
	ed := NewTextField(nil)
	assert.Equal(t, "", ed.Initial())
	assert.NoError(t, ed.Commit("x"))
}

func TestNewExternal_FallsBackToEnvThenVim(t *testing.T) {
	t.Setenv("EDITOR", "nano -w")
	assert.Equal(t, "nano -w", NewExternal("", nil).Command())

	t.Setenv("EDITOR", "")
	assert.Equal(t, "vim", NewExternal("", nil).Command())

	t.Setenv("EDITOR", "   ")
	assert.Equal(t, "vim", NewExternal(" ", nil).Command())
	assert.Equal(t, "code", NewExternal("code", nil).Command())
}

func TestExternal_EditRoundTripsUnchangedFile(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true(1) not available")
	}
	ev, got := recordingEvent("north\n")
	ed := NewExternal("true", ev)

	require.NoError(t, ed.Edit())
	assert.Equal(t, []any{"north"}, *got)
}

func TestExternal_PrepareWithoutCommandIsError(t *testing.T) {
	var ed External
	cmd, path, err := ed.Prepare()
	assert.Error(t, err)
	assert.Nil(t, cmd)
	assert.Empty(t, path)
}
