package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// IsCommandNotFound checks if the error indicates the command was not found.
// This handles exec.ErrNotFound and platform-specific string fallbacks.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	// Fallback string matching for edge cases
	errStr := err.Error()
	if strings.Contains(errStr, "executable file not found") {
		return true
	}
	if strings.Contains(errStr, "no such file or directory") {
		return true
	}
	return false
}

// Run executes a labelled command with its output sent to Out.
func Run(label, name string, args ...string) error {
	fmt.Fprintln(Out, mutedStyle.Render("▸ "+label))
	cmd := exec.Command(name, args...)
	cmd.Stdout = Out
	cmd.Stderr = Out
	if err := cmd.Run(); err != nil {
		PrintError(label + " failed")
		return err
	}
	return nil
}

// Output runs a command and returns its trimmed stdout.
func Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return strings.TrimSpace(string(out)), err
}
