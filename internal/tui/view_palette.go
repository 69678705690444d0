package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/gloss/internal/action"
)

type paletteItem struct {
	name       string
	desc       string
	kind       action.Kind
	tmpl       *action.Template
	needsInput bool
}

var builtinItems = []paletteItem{
	{name: "annotate", desc: "Attach notes to the paragraph", kind: action.Annotate, needsInput: true},
	{name: "suggest", desc: "Let the model suggest annotations", kind: action.Suggest},
	{name: "rewrite", desc: "Rewrite using the paragraph's annotations", kind: action.Rewrite},
	{name: "instruct", desc: "Apply the embedded {...} instruction", kind: action.Instruct},
	{name: "translate", desc: "Translate the paragraph", kind: action.Translate},
	{name: "example", desc: "Add a concrete example", kind: action.Example},
	{name: "expand", desc: "Expand with more detail", kind: action.Expand},
	{name: "eli5", desc: "Explain it simply", kind: action.ELI5},
	{name: "ask", desc: "Ask a question, insert the answer below", kind: action.Ask, needsInput: true},
	{name: "inspire", desc: "Append ideas that continue the paragraph", kind: action.Inspire},
}

func (a *App) paletteItems() []paletteItem {
	items := make([]paletteItem, len(builtinItems))
	copy(items, builtinItems)
	for i := range a.state.templates {
		tmpl := &a.state.templates[i]
		items = append(items, paletteItem{
			name: tmpl.Name,
			desc: tmpl.Description,
			kind: action.Custom,
			tmpl: tmpl,
		})
	}
	return items
}

func (a *App) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state
	items := a.paletteItems()

	switch {
	case key.Matches(msg, keys.Esc):
		a.view = viewEditor

	case key.Matches(msg, keys.Up):
		if s.paletteIndex > 0 {
			s.paletteIndex--
		}

	case key.Matches(msg, keys.Down):
		if s.paletteIndex < len(items)-1 {
			s.paletteIndex++
		}

	case key.Matches(msg, keys.Enter):
		item := items[s.paletteIndex]
		a.view = viewEditor
		if item.needsInput {
			if item.kind == action.Annotate {
				s.inputMode = inputAnnotate
				s.input.Placeholder = "comma-separated annotations"
			} else {
				s.inputMode = inputAsk
				s.input.Placeholder = "your question"
			}
			s.input.Focus()
			return textinput.Blink
		}
		return a.startAction(item.kind, "", item.tmpl)
	}

	return nil
}

func (a *App) renderPalette() string {
	var b strings.Builder

	title := styleTitle.Render("Actions")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	items := a.paletteItems()
	var rows []string
	for i, item := range items {
		marker := "  "
		style := styleSubtitle
		if i == a.state.paletteIndex {
			marker = "> "
			style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
		}
		row := style.Render(marker+padRight(item.name, 12)) + styleSubtitle.Render(item.desc)
		rows = append(rows, row)
	}

	box := styleBox.Width(min(64, a.width-4)).Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[enter] Run  [esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
