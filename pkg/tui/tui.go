// Package tui is an interactive terminal viewer for a grid.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/fogrid/pkg/celledit"
	"github.com/dkoosis/fogrid/pkg/grid"
)

// chrome is the number of lines outside the viewport: header, rule, status.
const chrome = 3

// externalEditor edits a cell outside the viewer, in a child process.
type externalEditor interface {
	Prepare() (cmd *exec.Cmd, path string, err error)
	Finish(path string) error
}

// externalEditedMsg reports that the external editor process has exited.
type externalEditedMsg struct {
	editor externalEditor
	path   string
	err    error
}

// Run starts the viewer and blocks until the user quits.
func Run(ctx context.Context, g *grid.Grid) error {
	program := tea.NewProgram(New(g), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model is the bubbletea model of the viewer.
type Model struct {
	grid     *grid.Grid
	viewport viewport.Model
	input    textinput.Model
	editor   celledit.Editor

	header []string
	row    int
	col    int
	width  int
	ready  bool
	status string
	err    error
}

// New creates a viewer over g.
func New(g *grid.Grid) Model {
	in := textinput.New()
	in.Prompt = "edit> "
	return Model{grid: g, viewport: viewport.New(0, 0), input: in}
}

func (m Model) Init() tea.Cmd { return nil }

// Cursor returns the selected row and column.
func (m Model) Cursor() (row, col int) { return m.row, m.col }

// Editing reports whether a cell editor is open.
func (m Model) Editing() bool { return m.editor != nil }

// Status returns the status line message.
func (m Model) Status() string { return m.status }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-chrome, 1)
		m.ready = true
		m.refresh()
	case tea.KeyMsg:
		if m.editor != nil {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	case externalEditedMsg:
		return m.finishExternal(msg)
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, keys.Down):
		m.moveRow(1)
	case key.Matches(msg, keys.Left):
		m.moveCol(-1)
	case key.Matches(msg, keys.Right):
		m.moveCol(1)
	case key.Matches(msg, keys.Toggle):
		if m.grid.CellClicked(m.col, m.row) {
			m.moveRow(0)
		}
	case key.Matches(msg, keys.Edit):
		return m.openEditor()
	case key.Matches(msg, keys.ExtEdit):
		return m.openExternal()
	default:
		return m, nil
	}
	m.refresh()
	return m, nil
}

func (m Model) openEditor() (tea.Model, tea.Cmd) {
	if m.grid.RowCount() == 0 {
		return m, nil
	}
	ed, err := m.grid.EditorFor(m.col, m.row, m.grid.EditorName(m.col))
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.editor = ed
	m.status = ""
	m.input.SetValue(ed.Initial())
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// openExternal suspends the viewer and edits the cell in $EDITOR.
func (m Model) openExternal() (tea.Model, tea.Cmd) {
	if m.grid.RowCount() == 0 {
		return m, nil
	}
	ed, err := m.grid.EditorFor(m.col, m.row, "external")
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	ext, ok := ed.(externalEditor)
	if !ok {
		m.status = fmt.Sprintf("editor %q does not run externally", ed.Name())
		return m, nil
	}
	cmd, path, err := ext.Prepare()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = ""
	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		return externalEditedMsg{editor: ext, path: path, err: err}
	})
}

func (m Model) finishExternal(msg externalEditedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		_ = os.Remove(msg.path)
		m.status = "editor: " + msg.err.Error()
		return m, nil
	}
	if err := msg.editor.Finish(msg.path); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = "saved"
	m.refresh()
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Cancel):
		m.closeEditor("edit cancelled")
		return m, nil
	case key.Matches(msg, keys.Submit):
		if err := m.editor.Commit(m.input.Value()); err != nil {
			if errors.Is(err, celledit.ErrReadOnly) {
				m.closeEditor(err.Error())
				return m, nil
			}
			m.status = err.Error()
			return m, nil
		}
		m.closeEditor("saved")
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeEditor(status string) {
	m.editor = nil
	m.input.Blur()
	m.input.Reset()
	m.status = status
}

func (m *Model) moveRow(delta int) {
	m.row = clamp(m.row+delta, 0, m.grid.RowCount()-1)
}

func (m *Model) moveCol(delta int) {
	m.col = clamp(m.col+delta, 0, len(m.grid.Schema())-1)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

// refresh repaints the grid into the viewport and scrolls the cursor row
// into view.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	lines, err := m.grid.RenderLines(grid.View{Width: m.width, Highlight: true, Cursor: m.row})
	m.err = err
	if err != nil {
		m.viewport.SetContent("")
		return
	}
	if len(lines) < 2 {
		m.header = nil
		m.viewport.SetContent("(no data)")
		return
	}
	m.header = lines[:2]
	m.viewport.SetContent(strings.Join(lines[2:], "\n"))

	switch {
	case m.row < m.viewport.YOffset:
		m.viewport.SetYOffset(m.row)
	case m.row >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.row - m.viewport.Height + 1)
	}
}

func (m Model) View() string {
	if !m.ready {
		return "Loading grid..."
	}
	theme := m.grid.Theme()
	var sb strings.Builder
	for _, h := range m.header {
		sb.WriteString(h)
		sb.WriteString("\n")
	}
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")

	switch {
	case m.err != nil:
		sb.WriteString(theme.Muted.Render("error: " + m.err.Error()))
	case m.editor != nil:
		sb.WriteString(m.input.View())
		sb.WriteString(theme.Muted.Render("  " + helpLine(keys.editHelp())))
	default:
		pos := fmt.Sprintf("row %d/%d  col %d/%d", m.row+1, m.grid.RowCount(), m.col+1, len(m.grid.Schema()))
		line := pos + "  " + helpLine(keys.browseHelp())
		if m.status != "" {
			line = m.status + "  " + line
		}
		sb.WriteString(theme.Muted.Render(line))
	}
	return sb.String()
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
