package watch

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used by the watch TUI.
// Use DarkTheme() or LightTheme() to get a pre-built theme.
type Theme struct {
	Primary   lipgloss.Color // title
	Error     lipgloss.Color // dropped navigations
	Success   lipgloss.Color // internal moves
	Info      lipgloss.Color // forwarded moves
	Text      lipgloss.Color // primary text
	TextMuted lipgloss.Color // secondary text — timestamps, hints
	Border    lipgloss.Color // separators, headers
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#fab283"),
		Error:     lipgloss.Color("#e06c75"),
		Success:   lipgloss.Color("#7fd88f"),
		Info:      lipgloss.Color("#56b6c2"),
		Text:      lipgloss.Color("#eeeeee"),
		TextMuted: lipgloss.Color("#808080"),
		Border:    lipgloss.Color("#484848"),
	}
}

// LightTheme returns a light theme for bright terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#b35c00"),
		Error:     lipgloss.Color("#cf222e"),
		Success:   lipgloss.Color("#116329"),
		Info:      lipgloss.Color("#0969da"),
		Text:      lipgloss.Color("#1f2328"),
		TextMuted: lipgloss.Color("#656d76"),
		Border:    lipgloss.Color("#d0d7de"),
	}
}

// ThemeByName returns a theme by name. Defaults to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// styles holds all lipgloss styles derived from a Theme.
type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	text      lipgloss.Style
	dim       lipgloss.Style
	internal  lipgloss.Style
	forwarded lipgloss.Style
	dropped   lipgloss.Style
	status    lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		header:    lipgloss.NewStyle().Foreground(t.Border),
		text:      lipgloss.NewStyle().Foreground(t.Text),
		dim:       lipgloss.NewStyle().Foreground(t.TextMuted),
		internal:  lipgloss.NewStyle().Foreground(t.Success),
		forwarded: lipgloss.NewStyle().Foreground(t.Info),
		dropped:   lipgloss.NewStyle().Foreground(t.Error),
		status:    lipgloss.NewStyle().Foreground(t.TextMuted),
	}
}
