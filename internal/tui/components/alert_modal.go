package components

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/threads/internal/core/styles"
)

// AlertModal blocks the view with a message until it is dismissed.
type AlertModal struct {
	message   string
	dismissed bool
}

// NewAlertModal creates an alert showing message.
func NewAlertModal(message string) AlertModal {
	return AlertModal{message: message}
}

// Update dismisses the alert on enter, esc or space.
func (m AlertModal) Update(msg tea.Msg) (AlertModal, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "esc", "space", " ":
		m.dismissed = true
	}
	return m, nil
}

// View renders the alert.
func (m AlertModal) View() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.TextErrorStyle.Bold(true).Render("Error"),
		"",
		styles.TextForegroundStyle.Render(m.message),
		styles.ModalHelpStyle.Render("enter dismiss"),
	)
	return styles.AlertModalStyle.Render(content)
}

// Overlay renders the alert as a layer over the given background.
func (m AlertModal) Overlay(background string, width, height int) string {
	return Layer(background, m.View(), width, height)
}

// Message returns the alert text.
func (m AlertModal) Message() string {
	return m.message
}

// Dismissed reports whether the user closed the alert.
func (m AlertModal) Dismissed() bool {
	return m.dismissed
}
