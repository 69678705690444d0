package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/sant0-9/gloss/internal/action"
	"github.com/sant0-9/gloss/internal/buffer"
	"github.com/sant0-9/gloss/internal/config"
	"github.com/sant0-9/gloss/internal/llm"
)

// inputMode says what the bottom text input overlay is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputAnnotate
	inputAsk
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model

	// Buffer under edit
	buf     *buffer.Buffer
	watcher *buffer.Watcher
	topLine int

	// Selection anchor while shift-extending; -1 when none.
	selAnchor int

	// Provider
	provider      llm.Provider
	providerReady bool
	providerError error

	// Custom action templates
	templates []action.Template

	// Palette
	paletteIndex int

	// Overlay input
	inputMode inputMode
	input     textinput.Model

	// Processing
	processing bool
	progress   *action.Progress
	runErr     error
	cancelRun  context.CancelFunc

	// Transient status-bar notice
	notice    string
	noticeErr bool

	// External change waiting for a reload decision
	reloadPending bool

	// Settings cursor
	settingsRow int

	logger *zap.Logger
}

func newState(cfg *config.Config, buf *buffer.Buffer, logger *zap.Logger) *state {
	input := textinput.New()
	input.CharLimit = 500
	input.Width = 60

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	if logger == nil {
		logger = zap.NewNop()
	}

	return &state{
		config:      cfg,
		buf:         buf,
		selAnchor:   -1,
		input:       input,
		apiKeyInput: apiKey,
		logger:      logger,
	}
}
