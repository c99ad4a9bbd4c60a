// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/styles"
)

// State represents what the status bar reports on its left side.
type State string

const (
	StateReady State = "ready"
	StateInfo  State = "info"
	StateError State = "error"
)

// Bar displays the current service, a message, and keybinding hints.
type Bar struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	state   State
	message string
	service string
	hints   []key.Binding
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateReady,
		hints:  km.ShortHelp(),
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := max(s.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	service := s.styles.Warning.Render("no service")
	if s.service != "" {
		service = s.styles.Success.Render(s.service)
	}

	switch s.state {
	case StateError:
		msg := "Error"
		if s.message != "" {
			msg = fmt.Sprintf("Error: %s", s.message)
		}
		return service + "  " + s.styles.Error.Render(msg)
	case StateInfo:
		return service + "  " + s.styles.Normal.Render(s.message)
	case StateReady:
	}
	return service
}

func (s *Bar) renderRight() string {
	hints := make([]string, 0, len(s.hints))
	for _, b := range s.hints {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetState sets the current state.
func (s *Bar) SetState(state State) {
	s.state = state
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// SetMessage sets the message shown for the info and error states.
func (s *Bar) SetMessage(message string) {
	s.message = message
}

// Message returns the current message.
func (s *Bar) Message() string {
	return s.message
}

// Info shows message in the info state.
func (s *Bar) Info(message string) {
	s.state = StateInfo
	s.message = message
}

// Error shows err in the error state.
func (s *Bar) Error(err error) {
	s.state = StateError
	s.message = err.Error()
}

// SetService sets the name of the current service. Empty means none.
func (s *Bar) SetService(name string) {
	s.service = name
}

// Service returns the displayed service name.
func (s *Bar) Service() string {
	return s.service
}

// SetHints sets the keybindings shown on the right.
func (s *Bar) SetHints(bindings []key.Binding) {
	s.hints = bindings
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the message and state; the service name is kept.
func (s *Bar) Clear() {
	s.state = StateReady
	s.message = ""
}
