package cellrender

import "github.com/charmbracelet/lipgloss"

// Theme defines the cell styles used by the built-in renderers.
type Theme struct {
	Name     string
	Primary  lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Number   lipgloss.Style
	Tree     lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:     "default",
		Primary:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true), // blue
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		Tree:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),  // green
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")), // gray
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:     "orca",
		Primary:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true), // pale blue
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("60")),
		Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("179")), // muted gold
		Tree:     lipgloss.NewStyle().Foreground(lipgloss.Color("108")), // sage green
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:     "mono",
		Primary:  lipgloss.NewStyle(),
		Header:   lipgloss.NewStyle().Bold(true),
		Selected: lipgloss.NewStyle().Reverse(true),
		Number:   lipgloss.NewStyle(),
		Tree:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
	}
}

// PlainTheme returns a theme that applies no styling at all, for piped output.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Name:     "plain",
		Primary:  plain,
		Header:   plain,
		Selected: plain,
		Number:   plain,
		Tree:     plain,
		Muted:    plain,
	}
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string {
	return []string{"default", "orca", "mono", "plain"}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	case "plain":
		return PlainTheme()
	default:
		return DefaultTheme()
	}
}
