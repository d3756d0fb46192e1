// fogrid renders tabular and tree-shaped data as a terminal grid.
//
// Usage:
//
//	fogrid data.yaml
//	fogrid --expand-all --theme orca tree.json
//	fogrid --table orders shop.db
//	kubectl get pods -o yaml | yq '.items' | fogrid -
//
// Input is YAML or JSON (a list of rows, or a mapping with schema and rows;
// nested rows go under "children"), or a SQLite database. Files without a
// known extension are sniffed.
//
// Output modes:
//
//	terminal  — styled output (default when stdout is a TTY)
//	plain     — no escape sequences (default when piped)
//
// With --interactive the grid opens in a full-screen viewer.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/dkoosis/fogrid/internal/config"
	"github.com/dkoosis/fogrid/internal/detect"
	"github.com/dkoosis/fogrid/internal/version"
	"github.com/dkoosis/fogrid/pkg/datamodel"
	"github.com/dkoosis/fogrid/pkg/datamodel/local"
	"github.com/dkoosis/fogrid/pkg/datamodel/sqlsource"
	"github.com/dkoosis/fogrid/pkg/grid"
	"github.com/dkoosis/fogrid/pkg/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fogrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	formatFlag := fs.String("format", "auto", "Output format: auto, terminal, plain")
	themeFlag := fs.String("theme", "", "Theme: default, orca, mono, plain")
	noColorFlag := fs.Bool("no-color", false, "Disable colors")
	debugFlag := fs.Bool("debug", false, "Log debug output to stderr")
	expandFlag := fs.Bool("expand-all", false, "Expand every tree row")
	maxColFlag := fs.Int("max-col-width", config.DefaultMaxColWidth, "Maximum column width")
	tableFlag := fs.String("table", "", "Table to show when FILE is a SQLite database")
	interactiveFlag := fs.Bool("interactive", false, "Open the interactive viewer")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fogrid [flags] FILE\n\nFILE is .yaml, .yml, .json, .db, or - for stdin.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "fogrid %s\n", version.String())
		return 0
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	format := *formatFlag
	if format == "auto" {
		format = config.FormatPlain
		if isTTYWriter(stdout) {
			format = config.FormatTerminal
		}
	}

	cfg, err := config.ResolveConfig(config.CliFlags{
		ThemeName:      *themeFlag,
		Format:         format,
		FormatSet:      set["format"] || format == config.FormatPlain,
		NoColor:        *noColorFlag,
		NoColorSet:     set["no-color"],
		Debug:          *debugFlag,
		DebugSet:       set["debug"],
		ExpandAll:      *expandFlag,
		ExpandAllSet:   set["expand-all"],
		MaxColWidth:    *maxColFlag,
		MaxColWidthSet: set["max-col-width"],
	})
	if err != nil {
		fmt.Fprintf(stderr, "fogrid: %v\n", err)
		return 2
	}

	logger := newLogger(cfg.Debug, stderr)
	defer func() { _ = logger.Sync() }()
	datamodel.SetLogger(logger)
	logger.Debug("config resolved",
		zap.String("theme", cfg.Theme.Name),
		zap.String("theme_source", cfg.ThemeSource),
		zap.String("format", cfg.Format),
		zap.String("format_source", cfg.FormatSource),
		zap.String("no_color_source", cfg.NoColorSource))

	if *interactiveFlag && !isTTYWriter(stdout) {
		fmt.Fprintf(stderr, "fogrid: --interactive requires a terminal\n")
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	provider, closeFn, err := loadProvider(ctx, fs.Arg(0), *tableFlag, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "fogrid: %v\n", err)
		return 1
	}
	defer closeFn()

	g := grid.New(grid.WithTheme(cfg.Theme))
	g.Bind(grid.Options{Provider: provider})
	applyDrillDownChars(g.DrillDownCharMap(), cfg.DrillDown)
	if e, ok := provider.(interface{ ExpandAll(bool) }); ok && cfg.ExpandAll {
		e.ExpandAll(true)
	}

	if *interactiveFlag {
		if err := tui.Run(ctx, g); err != nil {
			fmt.Fprintf(stderr, "fogrid: %v\n", err)
			return 1
		}
		return 0
	}

	view := grid.View{MaxColWidth: cfg.MaxColWidth}
	if isTTYWriter(stdout) {
		view.Width, _ = termSize(stdout)
	}
	out, err := g.Render(view)
	if err != nil {
		fmt.Fprintf(stderr, "fogrid: rendering: %v\n", err)
		return 1
	}
	if out != "" {
		fmt.Fprintln(stdout, out)
	}
	return 0
}

// loadProvider opens the data file named by path. The returned func releases
// any resources the provider holds.
func loadProvider(ctx context.Context, path, table string, stdin io.Reader) (any, func(), error) {
	noop := func() {}
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, noop, fmt.Errorf("reading stdin: %w", err)
		}
		switch format := detect.Sniff(data); format {
		case detect.JSON, detect.YAML:
			p, err := local.LoadYAML(bytes.NewReader(data))
			if err != nil {
				return nil, noop, fmt.Errorf("reading stdin: %w", err)
			}
			return p, noop, nil
		case detect.SQLite:
			return nil, noop, errors.New("reading stdin: SQLite databases must be passed as a file")
		default:
			return nil, noop, errors.New("reading stdin: unrecognized data format (expected YAML or JSON)")
		}
	}

	format, err := formatOf(path)
	if err != nil {
		return nil, noop, err
	}
	switch format {
	case detect.SQLite:
		return loadSQLite(ctx, path, table)
	case detect.JSON, detect.YAML:
		p, err := local.LoadFile(path)
		if err != nil {
			return nil, noop, err
		}
		return p, noop, nil
	default:
		return nil, noop, fmt.Errorf("%s: unrecognized data format (expected YAML, JSON, or SQLite)", path)
	}
}

// formatOf trusts well-known extensions and sniffs everything else.
func formatOf(path string) (detect.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return detect.SQLite, nil
	case ".yaml", ".yml":
		return detect.YAML, nil
	case ".json":
		return detect.JSON, nil
	default:
		return detect.SniffFile(path)
	}
}

func loadSQLite(ctx context.Context, path, table string) (any, func(), error) {
	noop := func() {}
	db, err := sqlsource.Open(path)
	if err != nil {
		return nil, noop, err
	}
	closeDB := func() { _ = db.Close() }

	if table == "" {
		tables, err := sqlsource.Tables(ctx, db)
		if err != nil {
			closeDB()
			return nil, noop, err
		}
		if len(tables) != 1 {
			closeDB()
			return nil, noop, errors.New("--table is required; tables: " + strings.Join(tables, ", "))
		}
		table = tables[0]
	}

	p, err := sqlsource.Load(ctx, db, table)
	if err != nil {
		closeDB()
		return nil, noop, err
	}
	return p, closeDB, nil
}

// applyDrillDownChars writes configured characters through the char map's
// alias names.
func applyDrillDownChars(cm *datamodel.CharMap, chars config.DrillDownChars) {
	if cm == nil {
		return
	}
	for alias, ch := range map[string]string{
		datamodel.AliasOpen:   chars.Open,
		datamodel.AliasClose:  chars.Closed,
		datamodel.AliasIndent: chars.Indent,
	} {
		if ch != "" {
			cm.Set(alias, ch)
		}
	}
}

func newLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel))
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termSize returns the terminal dimensions for w, defaulting to 80x24.
func termSize(w io.Writer) (width, height int) {
	width, height = 80, 24
	if f, ok := w.(*os.File); ok {
		if tw, th, err := term.GetSize(int(f.Fd())); err == nil {
			if tw > 0 {
				width = tw
			}
			if th > 0 {
				height = th
			}
		}
	}
	return width, height
}
