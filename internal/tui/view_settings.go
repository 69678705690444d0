package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/gloss/internal/config"
)

const (
	settingsRowProvider = iota
	settingsRowModel
	settingsRowAPIKey
	settingsRowLanguage
	settingsRowCount
)

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	if s.apiKeyInput.Focused() {
		switch {
		case key.Matches(msg, keys.Esc):
			s.apiKeyInput.Blur()
			s.apiKeyInput.Reset()
			return nil
		case key.Matches(msg, keys.Enter):
			s.config.APIKey = s.apiKeyInput.Value()
			s.apiKeyInput.Blur()
			s.apiKeyInput.Reset()
			return nil
		}
		var cmd tea.Cmd
		s.apiKeyInput, cmd = s.apiKeyInput.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, keys.Esc):
		return a.saveSettings()

	case key.Matches(msg, keys.Up):
		if s.settingsRow > 0 {
			s.settingsRow--
		}

	case key.Matches(msg, keys.Down):
		if s.settingsRow < settingsRowCount-1 {
			s.settingsRow++
		}

	case key.Matches(msg, keys.Left):
		a.cycleSetting(-1)

	case key.Matches(msg, keys.Right):
		a.cycleSetting(1)

	case key.Matches(msg, keys.Enter):
		if s.settingsRow == settingsRowAPIKey {
			s.apiKeyInput.Focus()
			return textinput.Blink
		}
	}

	return nil
}

func (a *App) cycleSetting(delta int) {
	s := a.state

	switch s.settingsRow {
	case settingsRowProvider:
		idx := 0
		for i, p := range config.Providers {
			if p.ID == s.config.Provider {
				idx = i
				break
			}
		}
		idx = wrap(idx+delta, len(config.Providers))
		s.config.Provider = config.Providers[idx].ID
		s.config.Model = config.Providers[idx].DefaultModel

	case settingsRowModel:
		info := config.GetProvider(s.config.Provider)
		if info == nil || len(info.Models) == 0 {
			return
		}
		idx := 0
		for i, m := range info.Models {
			if m == s.config.Model {
				idx = i
				break
			}
		}
		s.config.Model = info.Models[wrap(idx+delta, len(info.Models))]

	case settingsRowLanguage:
		idx := 0
		for i, l := range config.Languages {
			if l.ID == s.config.Language {
				idx = i
				break
			}
		}
		s.config.Language = config.Languages[wrap(idx+delta, len(config.Languages))].ID
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// saveSettings persists the config and re-pings the provider, since the
// user may have just switched to one that is not reachable.
func (a *App) saveSettings() tea.Cmd {
	a.view = viewEditor
	a.state.providerReady = false

	if err := a.state.config.Save(); err != nil {
		a.showNotice("save settings: "+err.Error(), true)
		return nil
	}
	a.showNotice("settings saved", false)
	return a.testProvider()
}

func (a *App) renderSettings() string {
	s := a.state
	var b strings.Builder

	title := styleTitle.Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	keyDisplay := "(not set)"
	if s.config.APIKey != "" {
		keyDisplay = strings.Repeat("*", 8)
	}
	if s.apiKeyInput.Focused() {
		keyDisplay = s.apiKeyInput.View()
	}

	languageName := "Model default"
	if l := config.GetLanguage(s.config.Language); l != nil {
		languageName = l.Name
	}

	rows := []struct {
		label string
		value string
	}{
		{"Provider", s.config.Provider},
		{"Model", s.config.Model},
		{"API key", keyDisplay},
		{"Language", languageName},
	}

	var lines []string
	for i, row := range rows {
		marker := "  "
		style := styleSubtitle
		if i == s.settingsRow {
			marker = "> "
			style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
		}
		lines = append(lines, style.Render(marker+padRight(row.label, 10))+row.value)
	}

	box := styleBox.Width(min(60, a.width-4)).Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[left/right] Change  [enter] Edit key  [esc] Save & back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
