package magetasks

import (
	"fmt"
	"os"
	"time"
)

// Ldflags returns the linker flags that stamp internal/version.
func Ldflags(version, commit, date string) string {
	return fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		ModulePath, version, ModulePath, commit, ModulePath, date)
}

// BuildAll builds the fogrid binary.
func BuildAll() error {
	PrintH2Header("Build")

	ldflags := Ldflags(getGitVersion(), getGitCommit(), time.Now().UTC().Format(time.RFC3339))
	if err := Run("Building fogrid", "go", "build", "-ldflags", ldflags, "-o", BinPath, MainPackage); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")

	if err := os.RemoveAll("./bin"); err != nil {
		return err
	}
	_ = os.Remove("coverage.out")
	_ = Run("Go Clean", "go", "clean", "-cache")

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func getGitVersion() string {
	out, err := Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil || out == "" {
		return "dev"
	}
	return out
}

func getGitCommit() string {
	out, err := Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || out == "" {
		return "unknown"
	}
	return out
}
