package main

import "github.com/charmbracelet/lipgloss"

// Terminal styles for consistent output formatting.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// styleCyan is used for file counts and section headers.
	styleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// styleYellow is used for warnings.
	styleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// styleGreen is used for success messages.
	styleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
)

// renderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
