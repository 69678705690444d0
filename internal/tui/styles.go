package tui

import "github.com/charmbracelet/lipgloss"

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#06B6D4")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWhite     = lipgloss.Color("#F9FAFB")

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Editor chrome
	styleLineNo = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleCursorLineNo = lipgloss.NewStyle().
				Foreground(colorSecondary)

	styleCursor = lipgloss.NewStyle().
			Reverse(true)

	styleSelection = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151"))

	styleAnnotation = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	styleHeading = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleNotice = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleNoticeError = lipgloss.NewStyle().
				Foreground(colorError)

	stylePlain = lipgloss.NewStyle().
			Foreground(colorWhite)
)
