package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/threads/internal/core/config"
	"github.com/hay-kot/threads/internal/threads"
	"github.com/hay-kot/threads/internal/tui/components"
)

func (m Model) handleIntentDone(msg intentDoneMsg) (tea.Model, tea.Cmd) {
	m.clampCursor()

	switch msg.intent {
	case threads.IntentReload, threads.IntentClearSearch:
		m.loadFailed = msg.err != nil
	}

	if threads.Committed(msg.err) {
		switch msg.intent {
		case threads.IntentCreate:
			m.compose.Reset()
			if m.state == stateComposing {
				m.state = stateNormal
			}
		case threads.IntentSubmitReply:
			m.reply.Reset()
		case threads.IntentSearch:
			if m.state == stateSearching {
				m.search.Blur()
				m.state = stateNormal
			}
			m.cursor = 0
		case threads.IntentClearSearch:
			m.cursor = 0
		}
	}

	// Every redraw collapses reply panels; follow the buffer.
	if m.state == stateReplying && !m.ctrl.Expanded(m.replyID) {
		m.reply.Blur()
		m.state = stateNormal
	}

	if msg.err != nil {
		m.logger.Debug().Err(msg.err).Str("intent", string(msg.intent)).Msg("intent failed")
		m.showAlert(msg.err)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateAlert:
		m.alert, _ = m.alert.Update(msg)
		if m.alert.Dismissed() {
			m.state = m.alertReturn
		}
		return m, nil
	case stateConfirming:
		return m.handleConfirmKey(msg)
	case stateHelp:
		switch msg.String() {
		case "esc", "?", "q", "enter":
			m.state = stateNormal
		}
		return m, nil
	case statePreview:
		return m.handlePreviewKey(msg)
	case stateComposing:
		return m.handleComposeKey(msg)
	case stateSearching:
		return m.handleSearchKey(msg)
	case stateReplying:
		return m.handleReplyKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	switch keyStr {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.buffer.Rows())-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "g", "home":
		m.cursor = 0
		return m, nil
	case "G", "end":
		m.cursor = max(len(m.buffer.Rows())-1, 0)
		return m, nil
	case "?":
		m.state = stateHelp
		return m, nil
	}

	action, ok := m.keys.Resolve(keyStr)
	if !ok {
		return m, nil
	}
	return m.runAction(action)
}

func (m Model) runAction(action Action) (tea.Model, tea.Cmd) {
	switch action.Intent {
	case config.IntentCreate:
		m.state = stateComposing
		return m, nil
	case config.IntentSearch:
		m.state = stateSearching
		cmd := m.search.Focus()
		return m, cmd
	case config.IntentReload:
		return m, m.dispatch(threads.IntentReload, threads.Args{})
	case config.IntentClearSearch:
		return m, m.dispatch(threads.IntentClearSearch, threads.Args{})
	}

	row, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch action.Intent {
	case config.IntentReply:
		m.dispatchNow(threads.IntentReply, threads.Args{ID: row.ID})
		if !m.ctrl.Expanded(row.ID) {
			return m, nil
		}
		m.state = stateReplying
		m.replyID = row.ID
		cmd := m.reply.Focus()
		return m, cmd
	case config.IntentDelete:
		m.state = stateConfirming
		m.pendingDelete = row.ID
		m.confirm = components.NewConfirmModal("Delete Comment", action.Confirm)
		return m, nil
	case config.IntentPreview:
		m.state = statePreview
		m.preview = NewPreviewModal(row, m.timeFormat, m.screenWidth(), m.screenHeight())
		return m, nil
	}

	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirm, _ = m.confirm.Update(msg)
	switch {
	case m.confirm.Confirmed():
		m.state = stateNormal
		// The modal already asked; the controller must not ask again.
		return m, m.dispatch(threads.IntentDelete, threads.Args{ID: m.pendingDelete, Confirm: threads.Approve})
	case m.confirm.Cancelled():
		m.state = stateNormal
	}
	return m, nil
}

func (m Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.preview.ScrollUp()
	case "down", "j":
		m.preview.ScrollDown()
	case "enter", "esc", "q":
		m.state = stateNormal
	}
	return m, nil
}

func (m Model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateNormal
		return m, nil
	case "enter":
		text, parentID := m.compose.Values()
		return m, m.dispatch(threads.IntentCreate, threads.Args{Text: text, ParentID: parentID})
	}

	var cmd tea.Cmd
	m.compose, cmd = m.compose.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Blur()
		m.state = stateNormal
		return m, nil
	case "enter":
		return m, m.dispatch(threads.IntentSearch, threads.Args{Text: m.search.Value()})
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleReplyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dispatchNow(threads.IntentCancel, threads.Args{ID: m.replyID})
		m.reply.Blur()
		m.state = stateNormal
		return m, nil
	case "ctrl+s":
		return m, m.dispatch(threads.IntentSubmitReply, threads.Args{ID: m.replyID, Text: m.reply.Value()})
	}

	var cmd tea.Cmd
	m.reply, cmd = m.reply.Update(msg)
	return m, cmd
}
