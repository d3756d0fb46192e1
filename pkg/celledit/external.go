package celledit

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

var errNoEditor = errors.New("no editor command")

// External edits a cell value in an external editor such as vim or code.
type External struct {
	editorCmd string
	event     *CellEvent
}

// NewExternal creates an external editor for the given cell.
// If editor is blank, it falls back to $EDITOR and then vim.
func NewExternal(editor string, ev *CellEvent) *External {
	if strings.TrimSpace(editor) == "" {
		editor = os.Getenv("EDITOR")
		if strings.TrimSpace(editor) == "" {
			editor = "vim"
		}
	}
	return &External{editorCmd: editor, event: ev}
}

func (e *External) Name() string { return "external" }

func (e *External) Initial() string { return initialText(e.event) }

func (e *External) Validate(string) error { return nil }

func (e *External) Commit(input string) error {
	return commit(e.event, strings.TrimRight(input, "\n"))
}

// Command returns the editor command being used.
func (e *External) Command() string {
	return e.editorCmd
}

// Prepare writes the initial value to a temp file and returns the command
// that opens it. The caller runs cmd (for example via tea.ExecProcess) and
// then calls Finish.
func (e *External) Prepare() (cmd *exec.Cmd, path string, err error) {
	parts := strings.Fields(e.editorCmd)
	if len(parts) == 0 {
		return nil, "", errNoEditor
	}
	tmpFile, err := os.CreateTemp("", "fogrid-cell-*.txt")
	if err != nil {
		return nil, "", err
	}
	if _, err := tmpFile.WriteString(e.Initial()); err != nil {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
		return nil, "", err
	}
	tmpFile.Close()

	cmd = exec.Command(parts[0], append(parts[1:], tmpFile.Name())...)
	return cmd, tmpFile.Name(), nil
}

// Finish reads the edited file, commits its content, and removes the file.
func (e *External) Finish(path string) error {
	defer os.Remove(path)
	edited, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return e.Commit(string(edited))
}

// Edit runs the editor attached to the current terminal and commits the result.
func (e *External) Edit() error {
	cmd, path, err := e.Prepare()
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		os.Remove(path)
		return err
	}
	return e.Finish(path)
}
