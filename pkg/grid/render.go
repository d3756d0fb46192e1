package grid

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/fogrid/pkg/cellrender"
	"github.com/dkoosis/fogrid/pkg/datamodel"
)

// DefaultMaxColWidth caps a column's natural width.
const DefaultMaxColWidth = 32

const (
	columnGap    = "  "
	minColWidth  = 3
	headerRuleCh = "─"
)

// View controls how Render lays out the grid.
type View struct {
	Width       int // total width; 0 = unbounded
	MaxColWidth int // 0 = DefaultMaxColWidth

	Highlight bool
	Cursor    int // highlighted row when Highlight is set
}

// Render paints the header and every visible row.
func (g *Grid) Render(v View) (string, error) {
	lines, err := g.RenderLines(v)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// RenderLines paints the grid as one string per terminal line: the header,
// a rule, then one line per visible row.
func (g *Grid) RenderLines(v View) ([]string, error) {
	m := g.Model()
	schema := m.GetSchema()
	if len(schema) == 0 {
		return nil, nil
	}

	count := m.GetRowCount()
	rows := make([]datamodel.Row, count)
	for i := range rows {
		rows[i] = m.GetRow(i)
	}

	// First pass paints unconstrained to measure natural widths.
	widths := make([]int, len(schema))
	for c, col := range schema {
		widths[c] = runewidth.StringWidth(headerText(col))
	}
	for r, row := range rows {
		for c, col := range schema {
			cell, err := g.paint(c, r, row, col, 0, v)
			if err != nil {
				return nil, err
			}
			if w := lipgloss.Width(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	fitWidths(widths, v)

	lines := make([]string, 0, count+2)
	lines = append(lines, g.renderHeader(schema, widths))
	total := 0
	for _, w := range widths {
		total += w
	}
	total += len(columnGap) * (len(widths) - 1)
	lines = append(lines, g.theme.Muted.Render(strings.Repeat(headerRuleCh, total)))

	for r, row := range rows {
		cells := make([]string, len(schema))
		for c, col := range schema {
			cell, err := g.paint(c, r, row, col, widths[c], v)
			if err != nil {
				return nil, err
			}
			cells[c] = cell
		}
		lines = append(lines, strings.Join(cells, columnGap))
	}
	return lines, nil
}

func (g *Grid) paint(col, row int, r datamodel.Row, c datamodel.Column, width int, v View) (string, error) {
	cfg := &cellrender.Config{
		Host:     g,
		Col:      col,
		Row:      row,
		Value:    r[c.Name],
		Width:    width,
		Selected: v.Highlight && v.Cursor == row,
		Theme:    g.theme,
	}
	drill := g.IsDrillDown(col)
	if drill {
		cfg.Depth = r.Depth()
		cfg.Expandable, cfg.Expanded = r.Expandable()
		if cm := g.DrillDownCharMap(); cm != nil {
			cfg.CharMap = cm
		}
	}

	renderer, err := g.Model().GetCell(cfg, rendererName(c, drill))
	if err != nil {
		return "", fmt.Errorf("render cell %d,%d: %w", col, row, err)
	}
	return renderer.Paint(cfg), nil
}

func rendererName(c datamodel.Column, drill bool) string {
	switch {
	case drill:
		return "TreeCell"
	case c.Type == "number":
		return "Number"
	default:
		return "SimpleCell"
	}
}

func (g *Grid) renderHeader(schema datamodel.Schema, widths []int) string {
	cells := make([]string, len(schema))
	for c, col := range schema {
		text := headerText(col)
		if runewidth.StringWidth(text) > widths[c] {
			text = runewidth.Truncate(text, widths[c], "…")
		}
		if col.Type == "number" {
			text = runewidth.FillLeft(text, widths[c])
		} else {
			text = runewidth.FillRight(text, widths[c])
		}
		cells[c] = g.theme.Header.Render(text)
	}
	return strings.Join(cells, columnGap)
}

func headerText(c datamodel.Column) string {
	if c.Header != "" {
		return c.Header
	}
	return c.Name
}

// fitWidths caps every column at the view's max width, then shrinks the
// widest column until the row fits the view width or nothing can shrink.
func fitWidths(widths []int, v View) {
	maxCol := v.MaxColWidth
	if maxCol <= 0 {
		maxCol = DefaultMaxColWidth
	}
	for i, w := range widths {
		if w > maxCol {
			widths[i] = maxCol
		}
		if widths[i] < minColWidth {
			widths[i] = minColWidth
		}
	}
	if v.Width <= 0 {
		return
	}
	budget := v.Width - len(columnGap)*(len(widths)-1)
	for {
		sum, widest := 0, 0
		for i, w := range widths {
			sum += w
			if w > widths[widest] {
				widest = i
			}
		}
		if sum <= budget || widths[widest] <= minColWidth {
			return
		}
		widths[widest]--
	}
}
