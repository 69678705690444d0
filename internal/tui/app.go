package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sant0-9/gloss/internal/action"
	"github.com/sant0-9/gloss/internal/buffer"
	"github.com/sant0-9/gloss/internal/config"
	"github.com/sant0-9/gloss/internal/llm"
	"github.com/sant0-9/gloss/internal/note"
)

type view int

const (
	viewSetup view = iota
	viewEditor
	viewPalette
	viewProcessing
	viewError
	viewSettings
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool

	progCh chan action.Progress
	doneCh chan actionDoneMsg
}

// NewApp builds the editor around an already-loaded buffer. A nil config
// routes through the first-run setup wizard.
func NewApp(cfg *config.Config, buf *buffer.Buffer, logger *zap.Logger) *App {
	s := newState(cfg, buf, logger)
	if cfg == nil {
		s.needsSetup = true
		s.config = config.DefaultConfig()
	}

	return &App{
		view:  viewEditor,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.testProvider(),
		a.loadTemplates(),
		a.watchFile(),
	)
}

func (a *App) testProvider() tea.Cmd {
	return func() tea.Msg {
		provider, err := llm.NewProvider(a.state.config)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{}
	}
}

func (a *App) loadTemplates() tea.Cmd {
	return func() tea.Msg {
		templates, err := action.LoadTemplates()
		if err != nil {
			return templatesLoadedMsg(nil)
		}
		return templatesLoadedMsg(templates)
	}
}

func (a *App) watchFile() tea.Cmd {
	if a.state.buf.Path() == "" {
		return nil
	}
	w, err := buffer.WatchFile(a.state.buf.Path())
	if err != nil {
		a.state.logger.Warn("file watcher unavailable", zap.Error(err))
		return nil
	}
	a.state.watcher = w
	return a.waitFileChange()
}

func (a *App) waitFileChange() tea.Cmd {
	return func() tea.Msg {
		<-a.state.watcher.Changed
		return fileChangedMsg{}
	}
}

func (a *App) waitProgress() tea.Cmd {
	return func() tea.Msg {
		p, ok := <-a.progCh
		if !ok {
			return nil
		}
		return progressMsg(p)
	}
}

func (a *App) waitDone() tea.Cmd {
	return func() tea.Msg {
		return <-a.doneCh
	}
}

// startAction kicks one runner invocation off as a background command.
// The goroutine works against a clone of the buffer and never mutates
// anything; the edit comes back inside actionDoneMsg and is applied on
// the Update thread, so the live buffer has exactly one writer.
func (a *App) startAction(kind action.Kind, input string, tmpl *action.Template) tea.Cmd {
	if !a.state.providerReady {
		a.showNotice("provider not ready", true)
		return nil
	}

	runner := action.NewRunner(a.state.provider, a.state.config.Model, a.state.config.Language, a.state.logger)

	a.progCh = make(chan action.Progress, 8)
	a.doneCh = make(chan actionDoneMsg, 1)
	progCh := a.progCh
	runner.SetProgressCallback(func(p action.Progress) {
		select {
		case progCh <- p:
		default:
		}
	})

	req := action.Request{
		Kind:     kind,
		Line:     a.state.buf.Cursor().Line,
		Input:    input,
		Template: tmpl,
	}
	if start, end, ok := a.state.buf.Selection(); ok {
		req.Bounds = &note.Bounds{Start: start, End: end}
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.state.cancelRun = cancel
	a.state.processing = true
	a.state.progress = nil
	a.state.runErr = nil
	a.view = viewProcessing

	doneCh := a.doneCh
	doc := a.state.buf.Clone()
	go func() {
		res, err := runner.Run(ctx, doc, req)
		close(progCh)
		doneCh <- actionDoneMsg{result: res, err: err}
	}()

	return tea.Batch(a.waitProgress(), a.waitDone())
}

func (a *App) finishAction(msg actionDoneMsg) {
	wasProcessing := a.state.processing
	a.state.processing = false
	if a.state.cancelRun != nil {
		a.state.cancelRun()
		a.state.cancelRun = nil
	}

	if !wasProcessing {
		// Run was abandoned with Esc; the edit is dropped unapplied.
		return
	}

	if msg.err != nil {
		if isUserInputAbsent(msg.err) {
			a.showNotice(msg.err.Error(), true)
			a.view = viewEditor
			return
		}
		a.state.runErr = msg.err
		a.view = viewError
		return
	}

	// The one ReplaceRange per action happens here, on the Update thread,
	// against whatever the buffer holds now.
	msg.result.Apply(a.state.buf)
	a.state.buf.ClearSelection()
	a.state.selAnchor = -1
	a.showNotice(msg.result.Message, false)
	a.view = viewEditor
}

func isUserInputAbsent(err error) bool {
	return errors.Is(err, action.ErrNoParagraph) ||
		errors.Is(err, action.ErrNoInstruction) ||
		errors.Is(err, action.ErrNoAnnotations)
}

func (a *App) showNotice(text string, isErr bool) {
	a.state.notice = text
	a.state.noticeErr = isErr
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.view = viewEditor
		return a, tea.Batch(a.testProvider(), a.loadTemplates(), a.watchFile())

	case setupErrorMsg:
		a.showNotice(msg.error.Error(), true)
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		provider, _ := llm.NewProvider(a.state.config)
		a.state.provider = provider
		return a, nil

	case providerErrorMsg:
		a.state.providerError = msg.error
		a.showNotice("provider: "+msg.error.Error(), true)
		return a, nil

	case templatesLoadedMsg:
		a.state.templates = msg
		return a, nil

	case progressMsg:
		p := action.Progress(msg)
		a.state.progress = &p
		return a, a.waitProgress()

	case actionDoneMsg:
		a.finishAction(msg)
		return a, nil

	case fileChangedMsg:
		a.state.reloadPending = true
		a.showNotice("file changed on disk - ctrl+l to reload", true)
		return a, a.waitFileChange()
	}

	// Route non-key messages (blink ticks) into the focused input. Key
	// messages already reach it through the per-view handlers.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		if a.state.inputMode != inputNone {
			var cmd tea.Cmd
			a.state.input, cmd = a.state.input.Update(msg)
			cmds = append(cmds, cmd)
		} else if a.state.apiKeyInput.Focused() {
			var cmd tea.Cmd
			a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		if a.state.watcher != nil {
			a.state.watcher.Stop()
		}
		return tea.Quit
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewEditor:
		return a.handleEditorKey(msg)
	case viewPalette:
		return a.handlePaletteKey(msg)
	case viewProcessing:
		if key.Matches(msg, keys.Esc) {
			// Abandon: cancel the context and return to the editor. A
			// result arriving later is dropped unapplied in finishAction.
			if a.state.cancelRun != nil {
				a.state.cancelRun()
			}
			a.state.processing = false
			a.showNotice("action abandoned", true)
			a.view = viewEditor
		}
	case viewError:
		if key.Matches(msg, keys.Esc) || key.Matches(msg, keys.Enter) {
			a.state.runErr = nil
			a.view = viewEditor
		}
		if key.Matches(msg, keys.Settings) {
			a.state.runErr = nil
			a.state.settingsRow = 0
			a.view = viewSettings
		}
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Esc) {
			a.view = viewEditor
		}
	}

	return nil
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{}
type providerErrorMsg struct{ error }
type templatesLoadedMsg []action.Template
type progressMsg action.Progress
type fileChangedMsg struct{}

type actionDoneMsg struct {
	result *action.Result
	err    error
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewPalette:
		return a.renderPalette()
	case viewProcessing:
		return a.renderProcessing()
	case viewError:
		return a.renderError()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderEditor()
	}
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
