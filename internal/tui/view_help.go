package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleTitle.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	bindings := []key.Binding{
		keys.Palette,
		keys.Save,
		keys.Undo,
		keys.Redo,
		keys.Settings,
		keys.Reload,
		keys.SelUp,
		keys.SelDown,
		keys.Esc,
		keys.Quit,
	}

	var rows []string
	rows = append(rows, styleTitle.Render("Keys"))
	for _, bind := range bindings {
		h := bind.Help()
		rows = append(rows, "  "+padRight(h.Key, 12)+styleSubtitle.Render(h.Desc))
	}

	rows = append(rows, "")
	rows = append(rows, styleTitle.Render("Actions (ctrl+k)"))
	for _, item := range builtinItems {
		rows = append(rows, "  "+padRight(item.name, 12)+styleSubtitle.Render(item.desc))
	}

	rows = append(rows, "")
	rows = append(rows, styleSubtitle.Render("Annotate a paragraph, then run Rewrite to fold the"))
	rows = append(rows, styleSubtitle.Render("notes back in. Wrap an inline request in {braces}"))
	rows = append(rows, styleSubtitle.Render("and run Instruct to apply it in place."))

	box := styleBox.Width(min(60, a.width-4)).Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
