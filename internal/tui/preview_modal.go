package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/threads/internal/core/render"
	"github.com/hay-kot/threads/internal/core/sanitize"
	"github.com/hay-kot/threads/internal/core/styles"
	"github.com/hay-kot/threads/internal/tui/components"
)

const (
	previewModalMaxWidth  = 100
	previewModalMaxHeight = 30
	previewModalMargin    = 4
	previewModalChrome    = 7
	previewModalPadding   = 4
)

// PreviewModal displays a comment's text rendered as markdown.
type PreviewModal struct {
	row        render.Row
	timeFormat string
	viewport   viewport.Model
}

// NewPreviewModal creates a preview of row sized for a width x height screen.
func NewPreviewModal(row render.Row, timeFormat string, width, height int) PreviewModal {
	modalWidth := max(min(width-previewModalMargin, previewModalMaxWidth), 20)
	modalHeight := max(min(height-previewModalMargin, previewModalMaxHeight), previewModalChrome+1)

	vp := viewport.New(
		viewport.WithWidth(modalWidth-previewModalPadding),
		viewport.WithHeight(modalHeight-previewModalChrome),
	)

	m := PreviewModal{
		row:        row,
		timeFormat: timeFormat,
		viewport:   vp,
	}
	m.renderContent(modalWidth - previewModalPadding)
	return m
}

func (m *PreviewModal) renderContent(width int) {
	text := sanitize.Terminal(m.row.Text)

	style := styles.GlamourStyle()
	noMargin := uint(0)
	style.Document.Margin = &noMargin

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		m.viewport.SetContent(text)
		return
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		m.viewport.SetContent(text)
		return
	}

	m.viewport.SetContent(trimBlankLines(strings.TrimSpace(rendered)))
}

// CommentID returns the id of the previewed comment.
func (m PreviewModal) CommentID() int {
	return m.row.ID
}

// ScrollUp scrolls the viewport up.
func (m *PreviewModal) ScrollUp() {
	m.viewport.ScrollUp(1)
}

// ScrollDown scrolls the viewport down.
func (m *PreviewModal) ScrollDown() {
	m.viewport.ScrollDown(1)
}

// View renders the preview box.
func (m PreviewModal) View() string {
	title := fmt.Sprintf("Comment #%d", m.row.ID)
	if m.viewport.TotalLineCount() > m.viewport.VisibleLineCount() {
		title += styles.TextMutedStyle.Render(fmt.Sprintf(" (%.0f%%)", m.viewport.ScrollPercent()*100))
	}

	meta := styles.TextMutedStyle.Render(render.FormatTime(m.row.CreatedAt, m.timeFormat))
	if m.row.ParentID != nil {
		meta += styles.TextMutedStyle.Render(fmt.Sprintf(" · reply to #%d", *m.row.ParentID))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		meta,
		styles.TextSurfaceStyle.Render(strings.Repeat("─", 40)),
		m.viewport.View(),
		styles.ModalHelpStyle.Render("[↑/↓/j/k] scroll  [enter/esc] close"),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay renders the preview as a layer over the given background.
func (m PreviewModal) Overlay(background string, width, height int) string {
	return components.Layer(background, m.View(), width, height)
}

// trimBlankLines drops leading and trailing lines that are empty once
// styling is removed.
func trimBlankLines(content string) string {
	lines := strings.Split(content, "\n")
	blank := func(s string) bool { return strings.TrimSpace(ansi.Strip(s)) == "" }

	start, end := 0, len(lines)
	for start < end && blank(lines[start]) {
		start++
	}
	for end > start && blank(lines[end-1]) {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
