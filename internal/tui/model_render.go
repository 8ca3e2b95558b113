package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/threads/internal/core/config"
	"github.com/hay-kot/threads/internal/core/render"
	"github.com/hay-kot/threads/internal/core/sanitize"
	"github.com/hay-kot/threads/internal/core/styles"
	"github.com/hay-kot/threads/internal/threads"
	"github.com/hay-kot/threads/internal/tui/components"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	cursorMarker  = "▌ "
)

// View renders the TUI.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.screenWidth(), m.screenHeight()

	content := m.renderMain(w, h)
	switch m.state {
	case stateComposing:
		content = m.compose.Overlay(content, w, h)
	case stateConfirming:
		content = m.confirm.Overlay(content, w, h)
	case statePreview:
		content = m.preview.Overlay(content, w, h)
	case stateHelp:
		content = m.helpDialog().Overlay(content, w, h)
	case stateAlert:
		content = m.alert.Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) screenWidth() int {
	if m.width == 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) screenHeight() int {
	if m.height == 0 {
		return defaultHeight
	}
	return m.height
}

func (m Model) renderMain(width, height int) string {
	header := m.renderHeader()
	footer := styles.HelpStyle.Width(width).Render(m.keys.HelpString() + "  [?] help  [q] quit")

	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	body := m.renderBody(width, max(bodyHeight, 1))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	mode, query := m.ctrl.Coordinator().Mode()

	title := "All comments"
	if mode == threads.ModeSearch {
		title = fmt.Sprintf("Search: %s", sanitize.Terminal(query))
	}

	count := len(m.buffer.Rows())
	noun := "comments"
	if count == 1 {
		noun = "comment"
	}

	line := styles.HeaderStyle.Render("threads") + " " +
		styles.HeaderModeStyle.Render(title) + " " +
		styles.TextMutedStyle.Render(fmt.Sprintf("%d %s", count, noun))

	if m.state == stateSearching {
		line = lipgloss.JoinVertical(lipgloss.Left, line, m.search.View())
	}
	return line
}

// renderBody draws every row and scrolls so the cursor row stays visible.
func (m Model) renderBody(width, height int) string {
	rows := m.buffer.Rows()

	var lines []string
	switch {
	case len(rows) == 0 && m.buffer.Draws() == 0 && m.loadFailed:
		lines = []string{styles.TextMutedStyle.Render(m.retryHint())}
	case len(rows) == 0 && m.buffer.Draws() == 0:
		lines = []string{styles.TextMutedStyle.Render("Loading comments…")}
	case len(rows) == 0:
		lines = []string{styles.TextMutedStyle.Render(m.buffer.PlaceholderText())}
	}

	cursorEnd := 0
	for i, row := range rows {
		lines = append(lines, m.renderRow(row, i == m.cursor, width)...)
		if i == m.cursor {
			cursorEnd = len(lines)
		}
	}

	start := 0
	if cursorEnd > height {
		start = cursorEnd - height
	}
	end := min(start+height, len(lines))

	visible := lines[start:end]
	for len(visible) < height {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n")
}

func (m Model) retryHint() string {
	k, ok := m.keys.KeyFor(config.IntentReload)
	if !ok {
		return "Could not load comments."
	}
	return fmt.Sprintf("Could not load comments. Press %s to retry.", k)
}

func (m Model) renderRow(row render.Row, selected bool, width int) []string {
	pad := strings.Repeat(" ", row.Depth*m.indentWidth)

	marker := "  "
	if selected {
		marker = styles.RowCursorStyle.Render(cursorMarker)
	}

	meta := styles.RowMetaStyle.Render(fmt.Sprintf("#%d · %s", row.ID, render.FormatTime(row.CreatedAt, m.timeFormat)))
	lines := []string{pad + marker + meta}

	textStyle := styles.TextForegroundStyle
	if selected {
		textStyle = styles.RowSelectedStyle
	}
	textWidth := max(width-lipgloss.Width(pad)-4, 10)
	for _, line := range strings.Split(sanitize.Terminal(row.Text), "\n") {
		wrapped := lipgloss.NewStyle().Width(textWidth).Render(line)
		for _, part := range strings.Split(wrapped, "\n") {
			lines = append(lines, pad+marker+"  "+textStyle.Render(strings.TrimRight(part, " ")))
		}
	}

	if m.state == stateReplying && m.replyID == row.ID && m.ctrl.Expanded(row.ID) {
		panel := styles.FormFieldFocusedStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			styles.FormTitleStyle.Render(fmt.Sprintf("Reply to #%d", row.ID)),
			m.reply.View(),
			styles.ModalHelpStyle.Render("ctrl+s send  esc cancel"),
		))
		for _, part := range strings.Split(panel, "\n") {
			lines = append(lines, pad+"    "+part)
		}
	}

	return lines
}

func (m Model) helpDialog() *components.HelpDialog {
	var bindings []components.HelpEntry
	for _, b := range m.keys.KeyBindings() {
		h := b.Help()
		bindings = append(bindings, components.HelpEntry{Key: h.Key, Desc: h.Desc})
	}

	return components.NewHelpDialog("Keyboard Shortcuts", []components.HelpDialogSection{
		{Title: "Comments", Entries: bindings},
		{Title: "Navigation", Entries: []components.HelpEntry{
			{Key: "j/↓", Desc: "next comment"},
			{Key: "k/↑", Desc: "previous comment"},
			{Key: "g/G", Desc: "first / last"},
			{Key: "q", Desc: "quit"},
		}},
		{Title: "Reply panel", Entries: []components.HelpEntry{
			{Key: "ctrl+s", Desc: "send reply"},
			{Key: "esc", Desc: "cancel"},
		}},
	})
}
