package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/gloss/internal/config"
)

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch s.setupStep {
	case 0: // Provider selection
		switch msg.String() {
		case "up", "k":
			if s.selectedProvider > 0 {
				s.selectedProvider--
			}
		case "down", "j":
			if s.selectedProvider < len(config.Providers)-1 {
				s.selectedProvider++
			}
		case "enter":
			provider := config.Providers[s.selectedProvider]
			s.config.Provider = provider.ID
			s.config.Model = provider.DefaultModel

			if provider.NeedsAPIKey {
				s.setupStep = 1
				s.apiKeyInput.Focus()
				return textinput.Blink
			}
			return a.finishSetup()
		}

	case 1: // API key entry
		switch msg.String() {
		case "esc":
			s.setupStep = 0
			s.apiKeyInput.Blur()
			s.apiKeyInput.Reset()
		case "enter":
			s.config.APIKey = s.apiKeyInput.Value()
			s.apiKeyInput.Blur()
			return a.finishSetup()
		default:
			var cmd tea.Cmd
			s.apiKeyInput, cmd = s.apiKeyInput.Update(msg)
			return cmd
		}
	}

	return nil
}

func (a *App) finishSetup() tea.Cmd {
	return func() tea.Msg {
		if err := a.state.config.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

func (a *App) renderSetup() string {
	s := a.state
	var b strings.Builder

	title := styleTitle.Render("Welcome to gloss")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	sub := styleSubtitle.Render("Pick a model provider to get started")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, sub))
	b.WriteString("\n\n")

	if s.setupStep == 0 {
		var rows []string
		for i, p := range config.Providers {
			marker := "  "
			style := styleSubtitle
			if i == s.selectedProvider {
				marker = "> "
				style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
			}
			rows = append(rows, style.Render(marker+padRight(p.Name, 12))+styleSubtitle.Render(p.Description))
		}
		box := styleBox.Width(min(56, a.width-4)).Render(strings.Join(rows, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
		b.WriteString("\n\n")

		status := styleStatusBar.Render("[up/down] Select  [enter] Confirm")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
	} else {
		provider := config.Providers[s.selectedProvider]
		label := styleSubtitle.Render(provider.Name + " needs an API key")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, label))
		b.WriteString("\n")
		if provider.SignupURL != "" {
			url := styleSubtitle.Render("Get one at " + provider.SignupURL)
			b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, url))
		}
		b.WriteString("\n\n")

		box := styleBox.Width(min(56, a.width-4)).Render(s.apiKeyInput.View())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
		b.WriteString("\n\n")

		status := styleStatusBar.Render("[enter] Save  [esc] Back")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
	}

	return a.centerVertically(b.String())
}
