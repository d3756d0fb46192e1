package main

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/fogrid/internal/config"
	"github.com/dkoosis/fogrid/pkg/datamodel"
)

const flatYAML = `- name: apple
  qty: 3
- name: kiwi
  qty: 12
`

const treeYAML = `- name: fruit
  children:
    - name: apple
- name: bread
`

// isolate runs the test in an empty directory with no config or env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, key := range []string{"FOGRID_THEME", "FOGRID_NO_COLOR", "NO_COLOR", "FOGRID_DEBUG"} {
		t.Setenv(key, "")
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(args []string, stdin string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_RendersFlatYAML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "fruit.yaml", flatYAML)

	code, stdout, stderr := runCLI([]string{path}, "")
	require.Equal(t, 0, code, stderr)

	want := "Name   Qty\n" +
		"──────────\n" +
		"apple    3\n" +
		"kiwi    12\n"
	assert.Equal(t, want, stdout)
	assert.NotContains(t, stdout, "\033[", "piped output must be plain")
}

func TestRun_ReadsStdin(t *testing.T) {
	isolate(t)
	code, stdout, _ := runCLI([]string{"-"}, `[{"name": "pear", "qty": 2}]`)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "pear")
}

func TestRun_StdinRejectsUnknownFormat(t *testing.T) {
	isolate(t)
	code, _, stderr := runCLI([]string{"-"}, "just some words")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unrecognized data format")
}

func TestRun_SniffsExtensionlessFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "fruit", flatYAML)

	code, stdout, stderr := runCLI([]string{path}, "")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "kiwi")
}

func TestRun_TreeCollapsedByDefault(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "tree.yml", treeYAML)

	code, stdout, _ := runCLI([]string{path}, "")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "▸ fruit")
	assert.NotContains(t, stdout, "apple")
}

func TestRun_ExpandAll(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "tree.yml", treeYAML)

	code, stdout, _ := runCLI([]string{"--expand-all", path}, "")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "▾ fruit")
	assert.Contains(t, stdout, "\n   apple")
}

func TestRun_ConfigFileDrillDownChars(t *testing.T) {
	dir := isolate(t)
	writeFile(t, dir, ".fogrid.yaml", "drill_down:\n  closed: \"+\"\n")
	path := writeFile(t, dir, "tree.json", `[{"name": "fruit", "children": [{"name": "apple"}]}]`)

	code, stdout, stderr := runCLI([]string{path}, "")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "+ fruit")
}

func TestRun_SQLite(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "shop.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE orders (id INTEGER, item TEXT);
		INSERT INTO orders VALUES (1, 'tea'), (2, 'scones');`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	code, stdout, stderr := runCLI([]string{path}, "")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "scones")

	code, stdout, stderr = runCLI([]string{"--table", "orders", path}, "")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "tea")

	code, _, stderr = runCLI([]string{"--table", "missing", path}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "fogrid:")
}

func TestRun_SQLiteNeedsTableWhenAmbiguous(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "shop.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE a (x TEXT); CREATE TABLE b (y TEXT);`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	code, _, stderr := runCLI([]string{path}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--table is required")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       func(t *testing.T, dir string) []string
		wantCode   int
		wantStderr string
	}{
		{name: "no file", args: func(*testing.T, string) []string { return nil }, wantCode: 2, wantStderr: "Usage"},
		{name: "bad flag", args: func(*testing.T, string) []string { return []string{"--bogus"} }, wantCode: 2},
		{name: "unknown theme", args: func(t *testing.T, d string) []string { return []string{"--theme", "neon", "x.yaml"} }, wantCode: 2, wantStderr: "unknown theme"},
		{name: "bad format", args: func(t *testing.T, d string) []string { return []string{"--format", "html", "x.yaml"} }, wantCode: 2, wantStderr: "invalid format"},
		{name: "interactive without tty", args: func(*testing.T, string) []string { return []string{"--interactive", "x.yaml"} }, wantCode: 2, wantStderr: "requires a terminal"},
		{name: "missing file", args: func(t *testing.T, d string) []string { return []string{filepath.Join(d, "nope.yaml")} }, wantCode: 1, wantStderr: "fogrid:"},
		{name: "unrecognized format", args: func(t *testing.T, d string) []string { return []string{writeFile(t, d, "data.csv", "a,b\n1,2\n")} }, wantCode: 1, wantStderr: "unrecognized data format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			code, _, stderr := runCLI(tt.args(t, dir), "")
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, stderr, tt.wantStderr)
		})
	}
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI([]string{"--version"}, "")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "fogrid dev"), stdout)
}

func TestRun_DebugLogsToStderr(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "fruit.yaml", flatYAML)

	code, _, stderr := runCLI([]string{"--debug", path}, "")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "config resolved")
	assert.Contains(t, stderr, "data model bound")
}

func TestApplyDrillDownChars(t *testing.T) {
	cm := datamodel.DefaultCharMap()
	datamodel.InstallCharMapAliases(cm)

	applyDrillDownChars(cm, config.DrillDownChars{Open: "-", Indent: "."})

	open, _ := cm.Get(true)
	closed, _ := cm.Get(false)
	indent, _ := cm.Get(nil)
	assert.Equal(t, "-", open)
	assert.Equal(t, "▸", closed)
	assert.Equal(t, ".", indent)

	assert.NotPanics(t, func() { applyDrillDownChars(nil, config.DrillDownChars{Open: "-"}) })
}
