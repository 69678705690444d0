package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/gloss/internal/llm"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	errMsg := "Unknown error"
	if a.state.runErr != nil {
		errMsg = a.state.runErr.Error()
	} else if a.state.providerError != nil {
		errMsg = a.state.providerError.Error()
	}

	errBox := styleBox.
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := suggestionsFor(a.state.runErr); len(suggestions) > 0 {
		suggBox := styleBox.
			Width(min(60, a.width-4)).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	status := styleStatusBar.Render("[ctrl+o] Settings  [esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// suggestionsFor maps classified completion failures to next steps. The
// document was not touched in any of these cases, so every suggestion is
// safe to follow immediately.
func suggestionsFor(err error) []string {
	if errors.Is(err, llm.ErrEmptyCompletion) {
		return []string{
			"The model returned nothing usable",
			"Try again, or rephrase the instruction",
		}
	}

	var lerr *llm.Error
	if !errors.As(err, &lerr) {
		return nil
	}

	switch lerr.Kind {
	case llm.KindAuth:
		return []string{
			"Check your API key in ~/.config/gloss/config.yaml",
			"Or press ctrl+o to open settings",
		}
	case llm.KindRateLimit:
		return []string{
			"You've hit the API rate limit",
			"Wait a moment and try again",
		}
	case llm.KindNetwork:
		return []string{
			"Check your internet connection",
			"Or switch to Ollama for offline use",
		}
	case llm.KindServer:
		return []string{
			"The provider is having trouble",
			"Try again shortly, or switch providers in settings",
		}
	case llm.KindBadRequest:
		return []string{
			"The provider rejected the request",
			"Check the model name in settings",
		}
	case llm.KindParse:
		return []string{
			"The provider sent an unreadable response",
			"Try again, or switch providers in settings",
		}
	default:
		return nil
	}
}
