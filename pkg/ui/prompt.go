package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPromptCancelled is returned when the user leaves a prompt with Esc or Ctrl+C
var ErrPromptCancelled = errors.New("prompt cancelled")

// PromptModel asks for a single line of text
type PromptModel struct {
	label     string
	input     textinput.Model
	done      bool
	cancelled bool
	err       string
}

// NewPromptModel creates a focused prompt with the given label and placeholder
func NewPromptModel(label, placeholder string) PromptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 60
	ti.Focus()

	return PromptModel{
		label: label,
		input: ti,
	}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			if strings.TrimSpace(m.input.Value()) == "" {
				m.err = "a value is required"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	m.err = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleHeading.Render(m.label))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.err != "" {
		b.WriteString(styleError.Render(m.err))
		b.WriteString("\n")
	}
	b.WriteString(FormatMuted("enter to confirm • esc to cancel"))
	b.WriteString("\n")
	return b.String()
}

// Value returns the trimmed text entered so far
func (m PromptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Prompt runs an inline prompt and returns the entered value
func Prompt(label, placeholder string) (string, error) {
	final, err := tea.NewProgram(NewPromptModel(label, placeholder)).Run()
	if err != nil {
		return "", err
	}

	m := final.(PromptModel)
	if m.cancelled {
		return "", ErrPromptCancelled
	}
	return m.Value(), nil
}
