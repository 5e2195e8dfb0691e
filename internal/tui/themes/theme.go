// Package themes defines the visual styles for the TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Selected      lipgloss.Style
	PinCell       lipgloss.Style
	PinCellFocus  lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusPending lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	Primary       lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Border        lipgloss.Color
	MutedColor    lipgloss.Color
}

// Default is the default theme: a blue banking palette.
var Default = Theme{
	Primary:    lipgloss.Color("#2563eb"),
	Success:    lipgloss.Color("#10b981"),
	Warning:    lipgloss.Color("#f59e0b"),
	Error:      lipgloss.Color("#dc2626"),
	Border:     lipgloss.Color("#475569"),
	MutedColor: lipgloss.Color("#64748b"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f8fafc")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f8fafc")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f8fafc")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748b")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#2563eb")).
		Foreground(lipgloss.Color("#f8fafc")).
		Bold(true),

	PinCell: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#475569")).
		Width(3).
		Align(lipgloss.Center),
	PinCellFocus: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#2563eb")).
		Width(3).
		Align(lipgloss.Center).
		Bold(true),

	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#dc2626")).
		Bold(true),
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#64748b")).
		Italic(true),

	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#475569")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#475569")).
		Padding(1, 2),
}

// Midnight is a darker variant for low-light terminals.
var Midnight = Theme{
	Primary:    lipgloss.Color("#7c3aed"),
	Success:    lipgloss.Color("#a6e3a1"),
	Warning:    lipgloss.Color("#f9e2af"),
	Error:      lipgloss.Color("#f38ba8"),
	Border:     lipgloss.Color("#45475a"),
	MutedColor: lipgloss.Color("#6c7086"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6adc8")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7c3aed")).
		Foreground(lipgloss.Color("#cdd6f4")).
		Bold(true),

	PinCell: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Width(3).
		Align(lipgloss.Center),
	PinCellFocus: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7c3aed")).
		Width(3).
		Align(lipgloss.Center).
		Bold(true),

	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Bold(true),
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a6e3a1")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#89dceb")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")).
		Italic(true),

	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#45475a")).
		Padding(1, 2),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "midnight":
		return Midnight
	default:
		return Default
	}
}

// AccountTypeIcons maps account types to emoji icons.
var AccountTypeIcons = map[string]string{
	"savings": "🏦",
	"current": "💼",
	"salary":  "💰",
}

// GetAccountTypeIcon returns an icon for an account type.
func GetAccountTypeIcon(accountType string) string {
	if icon, ok := AccountTypeIcons[accountType]; ok {
		return icon
	}
	return "🏦"
}
