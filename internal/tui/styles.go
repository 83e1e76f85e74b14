package tui

import "github.com/charmbracelet/lipgloss"

// ThemeTokens defines the semantic color roles for the panel.
type ThemeTokens struct {
	Text      string
	TextMuted string
	Border    string
	Accent    string
	Focus     string
	Success   string
	Warning   string
	Error     string
}

// DefaultTokens is the baseline palette.
var DefaultTokens = ThemeTokens{
	Text:      "#E6EDF3",
	TextMuted: "#8B9AAE",
	Border:    "#223043",
	Accent:    "#5B8DEF",
	Focus:     "#7AA2F7",
	Success:   "#3FB950",
	Warning:   "#D29922",
	Error:     "#F85149",
}

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Focus   lipgloss.Style
	Field   lipgloss.Style
	Editing lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles builds styles from the default tokens.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTokens)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(tokens ThemeTokens) Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)).Bold(true),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true).Underline(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Focus:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Field:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)).BorderTop(false).BorderBottom(false).Padding(0, 1),
		Editing: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Focus)).BorderTop(false).BorderBottom(false).Padding(0, 1),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
	}
}

// Swatch renders a small block filled with the given color.
func (s Styles) Swatch(value string) string {
	if value == "" {
		return s.Muted.Render("  ")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ")
}
