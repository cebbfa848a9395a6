package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Character sets for answer fields.
const (
	NumberChars   = "0123456789-+."
	FractionChars = "0123456789/ "
)

// TextInput wraps bubbles/textinput with Mathdrill styling.
type TextInput struct {
	Model textinput.Model

	// Charset limits typed characters when non-empty.
	Charset  string
	MaxWidth int

	submitted bool
	valid     bool
	shaking   bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder, charset string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		Charset:  charset,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Typed text outside Charset is dropped.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && t.Charset != "" && kmsg.Text != "" {
		for _, r := range kmsg.Text {
			if !strings.ContainsRune(t.Charset, r) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input inside its frame.
func (t TextInput) View() string {
	frame := theme.InputFrame
	if t.shaking {
		frame = theme.InputShake
	}
	view := frame.Render(t.Model.View())
	if t.submitted {
		mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if t.valid {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}
		view = lipgloss.JoinHorizontal(lipgloss.Center, view, " ", mark)
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Reset clears the typed text and any submit or shake state.
func (t *TextInput) Reset() {
	t.Model.Reset()
	t.submitted = false
	t.shaking = false
}

// Submit marks the input as submitted with a validation result.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Shake clears the text and turns the frame red until StopShake.
func (t *TextInput) Shake() {
	t.Model.Reset()
	t.shaking = true
}

// StopShake restores the normal frame.
func (t *TextInput) StopShake() {
	t.shaking = false
}

// Shaking reports whether the error frame is showing.
func (t TextInput) Shaking() bool {
	return t.shaking
}
