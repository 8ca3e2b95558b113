// Package tui implements the interactive comment browser.
package tui

import (
	"context"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/hay-kot/threads/internal/core/config"
	"github.com/hay-kot/threads/internal/core/render"
	"github.com/hay-kot/threads/internal/threads"
	"github.com/hay-kot/threads/internal/tui/components"
)

// UIState is the mode the model is in. Every mode except stateNormal owns
// the keyboard.
type UIState int

const (
	stateNormal UIState = iota
	stateComposing
	stateSearching
	stateReplying
	stateConfirming
	statePreview
	stateHelp
	stateAlert
)

// Options configures the TUI.
type Options struct {
	Controller  *threads.Controller
	Dispatcher  *threads.Dispatcher
	Keybindings map[string]config.Keybinding
	TimeFormat  string
	IndentWidth int
	Logger      zerolog.Logger
}

// intentDoneMsg reports the outcome of a dispatched intent.
type intentDoneMsg struct {
	intent threads.Intent
	id     int
	err    error
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	ctrl       *threads.Controller
	dispatcher *threads.Dispatcher
	buffer     *render.Buffer
	keys       *KeybindingHandler
	logger     zerolog.Logger

	timeFormat  string
	indentWidth int

	state       UIState
	alertReturn UIState
	cursor      int
	width       int
	height      int
	quitting    bool
	loadFailed  bool

	compose       ComposeForm
	search        textinput.Model
	reply         textarea.Model
	replyID       int
	confirm       components.ConfirmModal
	pendingDelete int
	alert         components.AlertModal
	preview       PreviewModal
}

// New creates the TUI model.
func New(opts Options) Model {
	keybindings := opts.Keybindings
	if keybindings == nil {
		keybindings = config.DefaultKeybindings()
	}

	return Model{
		ctrl:        opts.Controller,
		dispatcher:  opts.Dispatcher,
		buffer:      opts.Controller.Coordinator().Surface(),
		keys:        NewKeybindingHandler(keybindings),
		logger:      opts.Logger,
		timeFormat:  opts.TimeFormat,
		indentWidth: opts.IndentWidth,
		compose:     NewComposeForm(),
		search:      newSearchInput(),
		reply:       newReplyArea(),
	}
}

// Init loads the complete tree.
func (m Model) Init() tea.Cmd {
	return m.dispatch(threads.IntentReload, threads.Args{})
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case intentDoneMsg:
		return m.handleIntentDone(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

// dispatch runs intent off the update loop and reports back with an
// intentDoneMsg.
func (m Model) dispatch(intent threads.Intent, args threads.Args) tea.Cmd {
	d := m.dispatcher
	return func() tea.Msg {
		err := d.Dispatch(context.Background(), intent, args)
		return intentDoneMsg{intent: intent, id: args.ID, err: err}
	}
}

// dispatchNow runs a local intent that never touches the network.
func (m Model) dispatchNow(intent threads.Intent, args threads.Args) {
	if err := m.dispatcher.Dispatch(context.Background(), intent, args); err != nil {
		m.logger.Error().Err(err).Str("intent", string(intent)).Msg("local intent failed")
	}
}

// selected returns the row under the cursor.
func (m Model) selected() (render.Row, bool) {
	rows := m.buffer.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return render.Row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.buffer.Rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) showAlert(err error) {
	if m.state != stateAlert {
		m.alertReturn = m.state
	}
	m.state = stateAlert
	m.alert = components.NewAlertModal(err.Error())
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateComposing:
		m.compose, cmd = m.compose.Update(msg)
	case stateSearching:
		m.search, cmd = m.search.Update(msg)
	case stateReplying:
		m.reply, cmd = m.reply.Update(msg)
	}
	return m, cmd
}
