package magetasks

import (
	"errors"
	"fmt"
	"strings"
)

const golangciDisabled = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

// LintAll runs all linters.
func LintAll() error {
	var errs []error

	if err := LintFormat(); err != nil {
		errs = append(errs, err)
	}
	if err := LintVet(); err != nil {
		errs = append(errs, err)
	}
	// Golangci-lint (optional)
	if err := LintGolangci(); err != nil && !IsCommandNotFound(err) {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat fails when any file needs gofmt.
func LintFormat() error {
	out, err := Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt failed: %w", err)
	}
	if out != "" {
		files := strings.Split(out, "\n")
		PrintError(fmt.Sprintf("%d file(s) need formatting", len(files)))
		for _, f := range files {
			PrintInfo(f)
		}
		return fmt.Errorf("gofmt: %d file(s) need formatting", len(files))
	}
	return nil
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return golangci()
}

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	return golangci("--fix")
}

func golangci(extra ...string) error {
	args := append([]string{"run"}, extra...)
	args = append(args, golangciDisabled, "--timeout=5m", "./...")
	if err := Run("Golangci-lint", "golangci-lint", args...); err != nil {
		if IsCommandNotFound(err) {
			PrintWarning("Golangci-lint not found (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
			return err
		}
		return fmt.Errorf("golangci-lint failed: %w", err)
	}
	return nil
}
