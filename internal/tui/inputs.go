package tui

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/threads/internal/core/styles"
	"github.com/hay-kot/threads/internal/tui/components"
)

const inputWidth = 48

func newTextInput(prompt, placeholder string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = placeholder
	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Focused.Prompt = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	inputStyles.Cursor.Color = styles.ColorPrimary
	input.SetStyles(inputStyles)
	input.SetWidth(inputWidth)
	return input
}

// ComposeForm collects a new comment and an optional parent id.
type ComposeForm struct {
	text   textinput.Model
	parent textinput.Model
	focus  int // 0 = text, 1 = parent
}

// NewComposeForm returns an empty form with the text field focused.
func NewComposeForm() ComposeForm {
	f := ComposeForm{
		text:   newTextInput("> ", "Write a comment"),
		parent: newTextInput("# ", "Parent ID (optional)"),
	}
	f.text.Focus()
	return f
}

// Update handles tab navigation and forwards everything else to the focused
// field.
func (f ComposeForm) Update(msg tea.Msg) (ComposeForm, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab", "up", "down":
			cmd := f.toggleFocus()
			return f, cmd
		}
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.text, cmd = f.text.Update(msg)
	} else {
		f.parent, cmd = f.parent.Update(msg)
	}
	return f, cmd
}

func (f *ComposeForm) toggleFocus() tea.Cmd {
	if f.focus == 0 {
		f.focus = 1
		f.text.Blur()
		return f.parent.Focus()
	}
	f.focus = 0
	f.parent.Blur()
	return f.text.Focus()
}

// Values returns the typed comment text and parent id.
func (f ComposeForm) Values() (text, parentID string) {
	return f.text.Value(), f.parent.Value()
}

// SetValues fills both fields.
func (f *ComposeForm) SetValues(text, parentID string) {
	f.text.SetValue(text)
	f.parent.SetValue(parentID)
}

// Reset clears both fields and focuses the text field.
func (f *ComposeForm) Reset() {
	f.text.Reset()
	f.parent.Reset()
	if f.focus != 0 {
		f.toggleFocus()
	}
}

// View renders the form.
func (f ComposeForm) View() string {
	field := func(label string, input textinput.Model, focused bool) string {
		titleStyle, borderStyle := styles.TextMutedStyle, styles.FormFieldStyle
		if focused {
			titleStyle, borderStyle = styles.FormTitleStyle, styles.FormFieldFocusedStyle
		}
		return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(label), input.View()))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render("New Comment"),
		"",
		field("Comment", f.text, f.focus == 0),
		field("Parent ID", f.parent, f.focus == 1),
		styles.ModalHelpStyle.Render("tab switch field  enter post  esc cancel"),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay renders the form as a layer over the given background.
func (f ComposeForm) Overlay(background string, width, height int) string {
	return components.Layer(background, f.View(), width, height)
}

// newSearchInput returns the input shown in the header while searching.
func newSearchInput() textinput.Model {
	return newTextInput("/", "search text")
}

// newReplyArea returns the reply panel's text area.
func newReplyArea() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Write a reply"
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(inputWidth)
	return ta
}
