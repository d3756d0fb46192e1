package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file.
const FileName = ".fogrid.yaml"

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ThemeName   string
	Format      string
	NoColor     bool
	Debug       bool
	ExpandAll   bool
	MaxColWidth int

	// Flags to track if they were explicitly set by the user
	FormatSet      bool
	NoColorSet     bool
	DebugSet       bool
	ExpandAllSet   bool
	MaxColWidthSet bool
}

// DrillDownChars overrides the drill-down characters of the bound provider.
// Empty fields keep the provider's own characters.
type DrillDownChars struct {
	Open   string `yaml:"open,omitempty"`
	Closed string `yaml:"closed,omitempty"`
	Indent string `yaml:"indent,omitempty"`
}

// AppConfig represents the contents of .fogrid.yaml.
type AppConfig struct {
	Theme       string         `yaml:"theme,omitempty"`
	Format      string         `yaml:"format,omitempty"`
	NoColor     bool           `yaml:"no_color"`
	Debug       bool           `yaml:"debug"`
	ExpandAll   bool           `yaml:"expand_all"`
	MaxColWidth int            `yaml:"max_col_width,omitempty"`
	DrillDown   DrillDownChars `yaml:"drill_down,omitempty"`
}

// Constants for default values.
const (
	DefaultTheme       = "default"
	DefaultFormat      = FormatTerminal
	DefaultMaxColWidth = 32
)

// Output formats.
const (
	FormatTerminal = "terminal"
	FormatPlain    = "plain"
)

// Defaults returns the built-in configuration.
func Defaults() *AppConfig {
	return &AppConfig{
		Theme:       DefaultTheme,
		Format:      DefaultFormat,
		MaxColWidth: DefaultMaxColWidth,
	}
}

// LoadConfig loads .fogrid.yaml from the working directory or the user
// config directory. It returns the path that was read, or "" when no file
// exists. On a read or parse error the defaults are returned with the error.
func LoadConfig() (*AppConfig, string, error) {
	path := getConfigPath()
	if path == "" {
		return Defaults(), "", nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Defaults(), path, err
	}
	return cfg, path, nil
}

// LoadFile reads a config file and merges it onto the defaults.
func LoadFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fromFile AppConfig
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return merge(Defaults(), &fromFile), nil
}

func merge(base, over *AppConfig) *AppConfig {
	if over.Theme != "" {
		base.Theme = over.Theme
	}
	if over.Format != "" {
		base.Format = over.Format
	}
	base.NoColor = over.NoColor
	base.Debug = over.Debug
	base.ExpandAll = over.ExpandAll
	if over.MaxColWidth > 0 {
		base.MaxColWidth = over.MaxColWidth
	}
	base.DrillDown = over.DrillDown
	return base
}

// getConfigPath tries to find the .fogrid.yaml configuration file.
// It checks local directory first, then XDG UserConfigDir (if valid).
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// UserConfigDir may return "" or "/" in stripped-down environments.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "fogrid", FileName)
	if _, err := os.Stat(xdgPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return xdgPath // let LoadFile report the problem
		}
		return ""
	}
	return xdgPath
}
