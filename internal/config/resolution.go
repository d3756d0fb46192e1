package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/fogrid/pkg/cellrender"
)

// Priority order (highest to lowest):
//  1. CLI flags (--theme, --format, --no-color, --debug, --expand-all, --max-col-width)
//  2. Environment variables (FOGRID_THEME, FOGRID_NO_COLOR, NO_COLOR, FOGRID_DEBUG)
//  3. .fogrid.yaml
//  4. Defaults
const (
	PriorityCLI     = 1
	PriorityEnv     = 2
	PriorityFile    = 3
	PriorityDefault = 4
)

// Value sources recorded on ResolvedConfig.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// maxDrillDownWidth bounds the display width of each drill-down character.
const maxDrillDownWidth = 2

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Theme       cellrender.Theme
	Format      string
	NoColor     bool
	Debug       bool
	ExpandAll   bool
	MaxColWidth int
	DrillDown   DrillDownChars

	// Resolution metadata (for debugging)
	ThemeSource   string
	FormatSource  string
	NoColorSource string
	DebugSource   string
}

// ResolveConfig loads .fogrid.yaml and resolves it against CLI flags and the
// environment. A config file that cannot be read is reported as an error.
func ResolveConfig(cli CliFlags) (*ResolvedConfig, error) {
	appCfg, _, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return Resolve(cli, appCfg)
}

// Resolve applies the priority rules to an already loaded file config.
func Resolve(cli CliFlags, appCfg *AppConfig) (*ResolvedConfig, error) {
	if appCfg == nil {
		appCfg = Defaults()
	}
	resolved := &ResolvedConfig{
		Format:        appCfg.Format,
		NoColor:       appCfg.NoColor,
		Debug:         appCfg.Debug,
		ExpandAll:     appCfg.ExpandAll,
		MaxColWidth:   appCfg.MaxColWidth,
		DrillDown:     appCfg.DrillDown,
		FormatSource:  sourceOf(appCfg.Format != DefaultFormat),
		NoColorSource: sourceOf(appCfg.NoColor),
		DebugSource:   sourceOf(appCfg.Debug),
	}

	themeName, themeSource, err := resolveThemeName(cli, appCfg)
	if err != nil {
		return nil, err
	}
	resolved.ThemeSource = themeSource

	if cli.FormatSet {
		resolved.Format = cli.Format
		resolved.FormatSource = SourceCLI
	}

	if cli.NoColorSet {
		resolved.NoColor = cli.NoColor
		resolved.NoColorSource = SourceCLI
	} else if env := getEnvBool("FOGRID_NO_COLOR", "NO_COLOR"); env != nil {
		resolved.NoColor = *env
		resolved.NoColorSource = SourceEnv
	}

	if cli.DebugSet {
		resolved.Debug = cli.Debug
		resolved.DebugSource = SourceCLI
	} else if os.Getenv("FOGRID_DEBUG") != "" {
		resolved.Debug = true
		resolved.DebugSource = SourceEnv
	}

	if cli.ExpandAllSet {
		resolved.ExpandAll = cli.ExpandAll
	}
	if cli.MaxColWidthSet {
		resolved.MaxColWidth = cli.MaxColWidth
	}

	// Plain output drops all styling; no-color keeps bold and reverse.
	switch {
	case resolved.Format == FormatPlain:
		resolved.Theme = cellrender.PlainTheme()
	case resolved.NoColor:
		resolved.Theme = cellrender.MonoTheme()
	default:
		resolved.Theme = cellrender.ThemeByName(themeName)
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

func sourceOf(fromFile bool) string {
	if fromFile {
		return SourceFile
	}
	return SourceDefault
}

// resolveThemeName picks the theme name with priority CLI > env > file > default.
// Unknown names from the CLI or file are errors; an unknown env value is ignored.
func resolveThemeName(cli CliFlags, appCfg *AppConfig) (string, string, error) {
	if cli.ThemeName != "" {
		if !knownTheme(cli.ThemeName) {
			return "", "", fmt.Errorf("unknown theme %q (valid: %v)", cli.ThemeName, cellrender.ThemeNames())
		}
		return cli.ThemeName, SourceCLI, nil
	}
	if env := os.Getenv("FOGRID_THEME"); env != "" && knownTheme(env) {
		return env, SourceEnv, nil
	}
	if appCfg.Theme != "" && appCfg.Theme != DefaultTheme {
		if !knownTheme(appCfg.Theme) {
			return "", "", fmt.Errorf("unknown theme %q in %s (valid: %v)", appCfg.Theme, FileName, cellrender.ThemeNames())
		}
		return appCfg.Theme, SourceFile, nil
	}
	return DefaultTheme, SourceDefault, nil
}

func knownTheme(name string) bool {
	for _, n := range cellrender.ThemeNames() {
		if n == name {
			return true
		}
	}
	return false
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// validateResolvedConfig validates the resolved configuration and returns errors for invalid states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	switch cfg.Format {
	case FormatTerminal, FormatPlain:
	default:
		return fmt.Errorf("invalid format: %s (must be: %s, %s)", cfg.Format, FormatTerminal, FormatPlain)
	}

	if cfg.MaxColWidth <= 0 {
		return fmt.Errorf("max_col_width must be positive, got: %d", cfg.MaxColWidth)
	}

	for name, ch := range map[string]string{
		"open":   cfg.DrillDown.Open,
		"closed": cfg.DrillDown.Closed,
		"indent": cfg.DrillDown.Indent,
	} {
		if w := runewidth.StringWidth(ch); w > maxDrillDownWidth {
			return fmt.Errorf("drill_down.%s %q is %d columns wide (max %d)", name, ch, w, maxDrillDownWidth)
		}
	}
	return nil
}
