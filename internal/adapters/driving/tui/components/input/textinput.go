// Package input provides the expression input component for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/styles"
)

// maxRecall bounds the expressions kept for up/down recall.
const maxRecall = 100

// ExprInput wraps a bubbles textinput with a prompt and recall of
// previously submitted expressions.
type ExprInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int

	// recall holds submitted expressions, oldest first.
	recall []string
	// cursor indexes recall while browsing; len(recall) means "not browsing".
	cursor int
	// draft is what was typed before browsing started.
	draft string
}

// NewExprInput creates a new expression input component.
func NewExprInput(s *styles.Styles) *ExprInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "2 + 2, sqrt(2), sin(pi/4)..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	return &ExprInput{
		textinput: ti,
		styles:    s,
		width:     50,
	}
}

// Init initialises the input.
func (e *ExprInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (e *ExprInput) Update(msg tea.Msg) (*ExprInput, tea.Cmd) {
	var cmd tea.Cmd
	e.textinput, cmd = e.textinput.Update(msg)
	return e, cmd
}

// View renders the input.
func (e *ExprInput) View() string {
	prompt := e.styles.Prompt.Render("> ")
	field := e.styles.InputField.Render(e.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, prompt, field)
}

// Value returns the current input value.
func (e *ExprInput) Value() string {
	return e.textinput.Value()
}

// SetValue sets the input value and moves the cursor to the end.
func (e *ExprInput) SetValue(value string) {
	e.textinput.SetValue(value)
	e.textinput.CursorEnd()
}

// Submit records value for recall and clears the input.
func (e *ExprInput) Submit(value string) {
	if value != "" && (len(e.recall) == 0 || e.recall[len(e.recall)-1] != value) {
		e.recall = append(e.recall, value)
		if len(e.recall) > maxRecall {
			e.recall = e.recall[len(e.recall)-maxRecall:]
		}
	}
	e.cursor = len(e.recall)
	e.draft = ""
	e.textinput.Reset()
}

// Previous replaces the input with the previous submitted expression.
func (e *ExprInput) Previous() {
	if e.cursor == 0 {
		return
	}
	if e.cursor == len(e.recall) {
		e.draft = e.textinput.Value()
	}
	e.cursor--
	e.SetValue(e.recall[e.cursor])
}

// Next moves forward through submitted expressions, ending at the draft.
func (e *ExprInput) Next() {
	if e.cursor >= len(e.recall) {
		return
	}
	e.cursor++
	if e.cursor == len(e.recall) {
		e.SetValue(e.draft)
		return
	}
	e.SetValue(e.recall[e.cursor])
}

// Recall returns submitted expressions, oldest first.
func (e *ExprInput) Recall() []string {
	return e.recall
}

// Focus sets focus on the input.
func (e *ExprInput) Focus() tea.Cmd {
	return e.textinput.Focus()
}

// Blur removes focus from the input.
func (e *ExprInput) Blur() {
	e.textinput.Blur()
}

// Focused returns whether the input is focused.
func (e *ExprInput) Focused() bool {
	return e.textinput.Focused()
}

// SetWidth sets the width of the input.
func (e *ExprInput) SetWidth(width int) {
	e.width = width
	// Account for prompt and border
	e.textinput.Width = max(width-8, 20)
}

// Width returns the current width.
func (e *ExprInput) Width() int {
	return e.width
}

// Reset clears the input without touching recall.
func (e *ExprInput) Reset() {
	e.textinput.Reset()
	e.cursor = len(e.recall)
	e.draft = ""
}
