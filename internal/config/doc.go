// Package config handles configuration loading and merging for fogrid.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--theme, --format, --no-color, --debug, --expand-all, --max-col-width)
//  2. Environment variables (FOGRID_THEME, FOGRID_NO_COLOR, NO_COLOR, FOGRID_DEBUG)
//  3. YAML config file (.fogrid.yaml in local directory or ~/.config/fogrid/.fogrid.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - Theme: cell theme (default, orca, mono, plain)
//   - Format: terminal (styled) or plain (no escape sequences at all)
//   - NoColor: monochrome styling; bold and reverse video remain
//   - ExpandAll: expand every tree row before the first render
//   - DrillDown: replacement characters for the open, closed, and indent markers
//
// # Environment Variables
//
//   - FOGRID_THEME: theme name; unknown names are ignored
//   - FOGRID_NO_COLOR or NO_COLOR: set to "true" or "1" to disable colors
//   - FOGRID_DEBUG: set to any non-empty value to enable debug logging
package config
