package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/gloss/internal/action"
	"github.com/sant0-9/gloss/internal/note"
)

func (a *App) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	if s.inputMode != inputNone {
		switch {
		case key.Matches(msg, keys.Esc):
			s.inputMode = inputNone
			s.input.Reset()
			return nil
		case key.Matches(msg, keys.Enter):
			value := s.input.Value()
			mode := s.inputMode
			s.inputMode = inputNone
			s.input.Reset()
			if mode == inputAnnotate {
				return a.startAction(action.Annotate, value, nil)
			}
			return a.startAction(action.Ask, value, nil)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, keys.Save):
		if err := s.buf.Save(); err != nil {
			a.showNotice(err.Error(), true)
		} else {
			a.showNotice("saved", false)
		}

	case key.Matches(msg, keys.Undo):
		if !s.buf.Undo() {
			a.showNotice("nothing to undo", true)
		}

	case key.Matches(msg, keys.Redo):
		if !s.buf.Redo() {
			a.showNotice("nothing to redo", true)
		}

	case key.Matches(msg, keys.Palette):
		s.paletteIndex = 0
		a.view = viewPalette

	case key.Matches(msg, keys.Settings):
		s.settingsRow = 0
		a.view = viewSettings

	case key.Matches(msg, keys.Help):
		a.view = viewHelp

	case key.Matches(msg, keys.Reload):
		if s.reloadPending {
			if err := s.buf.Reload(); err != nil {
				a.showNotice(err.Error(), true)
			} else {
				s.reloadPending = false
				a.showNotice("reloaded from disk", false)
			}
		}

	case key.Matches(msg, keys.Esc):
		s.buf.ClearSelection()
		s.selAnchor = -1
		s.notice = ""

	case key.Matches(msg, keys.SelUp):
		a.extendSelection(-1)

	case key.Matches(msg, keys.SelDown):
		a.extendSelection(1)

	case key.Matches(msg, keys.Up):
		a.moveCursorLine(-1)

	case key.Matches(msg, keys.Down):
		a.moveCursorLine(1)

	case key.Matches(msg, keys.Left):
		a.moveCursorCh(-1)

	case key.Matches(msg, keys.Right):
		a.moveCursorCh(1)

	case key.Matches(msg, keys.Enter):
		s.buf.InsertNewline()

	default:
		switch msg.Type {
		case tea.KeyRunes:
			s.buf.InsertText(string(msg.Runes))
		case tea.KeySpace:
			s.buf.InsertText(" ")
		case tea.KeyBackspace:
			s.buf.DeleteBack()
		case tea.KeyTab:
			width := s.config.Editor.TabWidth
			if width <= 0 {
				width = 4
			}
			s.buf.InsertText(strings.Repeat(" ", width))
		}
	}

	a.ensureVisible()
	return nil
}

func (a *App) moveCursorLine(delta int) {
	s := a.state
	c := s.buf.Cursor()
	s.buf.SetCursor(note.Position{Line: c.Line + delta, Ch: c.Ch})
	if s.selAnchor < 0 {
		s.buf.ClearSelection()
	}
}

func (a *App) moveCursorCh(delta int) {
	s := a.state
	c := s.buf.Cursor()
	line := s.buf.Line(c.Line)

	if delta < 0 {
		if c.Ch > 0 {
			_, size := utf8.DecodeLastRuneInString(line[:c.Ch])
			s.buf.SetCursor(note.Position{Line: c.Line, Ch: c.Ch - size})
		} else if c.Line > 0 {
			s.buf.SetCursor(note.Position{Line: c.Line - 1, Ch: len(s.buf.Line(c.Line - 1))})
		}
		return
	}

	if c.Ch < len(line) {
		_, size := utf8.DecodeRuneInString(line[c.Ch:])
		s.buf.SetCursor(note.Position{Line: c.Line, Ch: c.Ch + size})
	} else if c.Line < s.buf.LineCount()-1 {
		s.buf.SetCursor(note.Position{Line: c.Line + 1, Ch: 0})
	}
}

// extendSelection grows a line selection by moving the cursor while
// keeping an anchor at the line where shift was first pressed.
func (a *App) extendSelection(delta int) {
	s := a.state
	c := s.buf.Cursor()
	if s.selAnchor < 0 {
		s.selAnchor = c.Line
	}
	s.buf.SetCursor(note.Position{Line: c.Line + delta, Ch: c.Ch})
	s.buf.Select(s.selAnchor, s.buf.Cursor().Line)
}

func (a *App) editorHeight() int {
	h := a.height - 2
	if a.state.inputMode != inputNone {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (a *App) ensureVisible() {
	s := a.state
	h := a.editorHeight()
	cur := s.buf.Cursor().Line
	if cur < s.topLine {
		s.topLine = cur
	}
	if cur >= s.topLine+h {
		s.topLine = cur - h + 1
	}
	if s.topLine < 0 {
		s.topLine = 0
	}
}

func (a *App) renderEditor() string {
	s := a.state
	var b strings.Builder

	h := a.editorHeight()
	gutter := len(fmt.Sprintf("%d", s.buf.LineCount()))
	cursor := s.buf.Cursor()
	selStart, selEnd, hasSel := s.buf.Selection()

	for row := 0; row < h; row++ {
		i := s.topLine + row
		if i >= s.buf.LineCount() {
			b.WriteString(styleLineNo.Render(strings.Repeat(" ", gutter) + " ~"))
			b.WriteString("\n")
			continue
		}

		lineNo := fmt.Sprintf("%*d ", gutter, i+1)
		if i == cursor.Line {
			b.WriteString(styleCursorLineNo.Render(lineNo))
		} else {
			b.WriteString(styleLineNo.Render(lineNo))
		}

		b.WriteString(a.renderLine(i, cursor, hasSel && i >= selStart && i <= selEnd))
		b.WriteString("\n")
	}

	b.WriteString(a.renderStatusBar())

	if s.inputMode != inputNone {
		label := "annotate: "
		if s.inputMode == inputAsk {
			label = "ask: "
		}
		b.WriteString("\n")
		b.WriteString(styleTitle.Render(label))
		b.WriteString(s.input.View())
	}

	return b.String()
}

// renderLine styles one buffer line: annotation lines dimmed, headings
// bold, selected lines on a background, and the cursor cell reversed.
func (a *App) renderLine(i int, cursor note.Position, selected bool) string {
	line := a.state.buf.Line(i)

	base := styleFor(line)
	if selected {
		base = base.Background(styleSelection.GetBackground())
	}

	if i != cursor.Line {
		return base.Render(line)
	}

	ch := cursor.Ch
	if ch > len(line) {
		ch = len(line)
	}
	head := line[:ch]
	cell := " "
	tail := ""
	if ch < len(line) {
		r, size := utf8.DecodeRuneInString(line[ch:])
		cell = string(r)
		tail = line[ch+size:]
	}

	return base.Render(head) + styleCursor.Render(cell) + base.Render(tail)
}

func styleFor(line string) lipgloss.Style {
	switch {
	case note.IsAnnotationLine(line):
		return styleAnnotation
	case note.IsHeading(line):
		return styleHeading
	default:
		return stylePlain
	}
}

func (a *App) renderStatusBar() string {
	s := a.state
	cursor := s.buf.Cursor()

	name := s.buf.Path()
	if name == "" {
		name = "[scratch]"
	}
	if s.buf.Dirty() {
		name += " *"
	}

	left := fmt.Sprintf("%s  Ln %d, Col %d", name, cursor.Line+1, cursor.Ch+1)

	model := s.config.Provider + "/" + s.config.Model
	if s.config.Language != "" {
		model += "  [" + s.config.Language + "]"
	}

	bar := styleStatusBar.Render(truncate(left, max(10, a.width/2))) +
		"  " + styleStatusBar.Render(truncate(model, max(10, a.width/3)))

	if s.notice != "" {
		style := styleNotice
		if s.noticeErr {
			style = styleNoticeError
		}
		bar += "  " + style.Render(truncate(s.notice, max(10, a.width/3)))
	}

	return bar
}
