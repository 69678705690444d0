package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/gloss/internal/action"
)

func (a *App) renderProcessing() string {
	var b strings.Builder

	title := styleTitle.Render("Working")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	stages := []action.Stage{action.StageLocate, action.StagePrompt, action.StageComplete, action.StageApply}
	current := action.StageLocate
	if a.state.progress != nil {
		current = a.state.progress.Stage
	}

	var stageLines []string
	for _, stage := range stages {
		var icon string
		var style lipgloss.Style

		switch {
		case stage < current:
			icon = "[x]"
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		case stage == current:
			icon = "[>]"
			style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
		default:
			icon = "[ ]"
			style = lipgloss.NewStyle().Foreground(colorMuted)
		}

		stageLines = append(stageLines, style.Render("  "+icon+"  "+stage.String()))
	}

	box := styleBox.Width(min(48, a.width-4)).Render(strings.Join(stageLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	if a.state.progress != nil && a.state.progress.Message != "" {
		msg := styleSubtitle.Render(truncate(a.state.progress.Message, 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, msg))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[esc] Abandon")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
