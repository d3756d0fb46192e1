// Package cellrender paints individual grid cells as styled terminal text.
// Renderers are looked up by name through a Registry owned by the grid.
package cellrender

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Renderer paints a single cell.
type Renderer interface {
	Paint(cfg *Config) string
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(cfg *Config) string

// Paint calls f(cfg).
func (f RendererFunc) Paint(cfg *Config) string { return f(cfg) }

// Host is the widget that owns a renderer registry.
type Host interface {
	CellRenderers() *Registry
}

// CharMap is the read side of a drill-down character map.
type CharMap interface {
	Get(key any) (string, bool)
}

// Config carries everything a renderer needs to paint one cell.
type Config struct {
	Host  Host
	Col   int
	Row   int
	Value any
	Width int // 0 = no fitting

	// Tree state, only meaningful in the drill-down column.
	Depth      int
	Expandable bool
	Expanded   bool
	CharMap    CharMap

	Selected bool
	Theme    Theme
}

// SimpleCell paints the value left-aligned.
var SimpleCell = RendererFunc(func(cfg *Config) string {
	text := fit(FormatValue(cfg.Value), cfg.Width, false)
	return cfg.style(cfg.Theme.Primary).Render(text)
})

// Number paints the value right-aligned.
var Number = RendererFunc(func(cfg *Config) string {
	text := fit(FormatValue(cfg.Value), cfg.Width, true)
	return cfg.style(cfg.Theme.Number).Render(text)
})

// TreeCell paints the value prefixed by its depth indent and the drill-down
// marker: OPEN (true) for expanded rows, CLOSE (false) for collapsed ones.
var TreeCell = RendererFunc(func(cfg *Config) string {
	indent := lookupChar(cfg.CharMap, nil, " ")
	var sb strings.Builder
	for i := 0; i < cfg.Depth; i++ {
		sb.WriteString(indent)
	}
	switch {
	case cfg.Expandable && cfg.Expanded:
		sb.WriteString(lookupChar(cfg.CharMap, true, "▾"))
	case cfg.Expandable:
		sb.WriteString(lookupChar(cfg.CharMap, false, "▸"))
	default:
		sb.WriteString(indent)
	}
	sb.WriteString(" ")
	sb.WriteString(FormatValue(cfg.Value))
	text := fit(sb.String(), cfg.Width, false)
	return cfg.style(cfg.Theme.Tree).Render(text)
})

func (cfg *Config) style(base lipgloss.Style) lipgloss.Style {
	if cfg.Selected {
		return cfg.Theme.Selected
	}
	return base
}

func lookupChar(cm CharMap, key any, fallback string) string {
	if cm == nil {
		return fallback
	}
	if s, ok := cm.Get(key); ok {
		return s
	}
	return fallback
}

// FormatValue converts a cell value to display text.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

// fit pads or truncates s to exactly width display columns.
func fit(s string, width int, alignRight bool) string {
	if width <= 0 {
		return s
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	if alignRight {
		return runewidth.FillLeft(s, width)
	}
	return runewidth.FillRight(s, width)
}
