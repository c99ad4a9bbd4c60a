// Package keymap defines keybindings for the TUI.
package keymap

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the calculator.
	Back key.Binding

	// NextView cycles calculator, services and history.
	NextView key.Binding

	// Evaluate submits the expression in the input.
	Evaluate key.Binding

	// Up navigates up in a list or back through typed expressions.
	Up key.Binding

	// Down navigates down in a list or forward through typed expressions.
	Down key.Binding

	// Select makes the highlighted service current.
	Select key.Binding

	// NewService registers a new service.
	NewService key.Binding

	// Destroy destroys the highlighted service.
	Destroy key.Binding

	// Unset clears the current service.
	Unset key.Binding

	// Reload re-reads history.
	Reload key.Binding

	// Clear empties the result log or the history.
	Clear key.Binding
}

// DefaultKeyMap returns the default keybindings.
// Keys used outside the calculator view are letters, since the
// calculator input takes every printable key.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Evaluate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "evaluate"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "use"),
		),
		NewService: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Destroy: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "destroy"),
		),
		Unset: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unset"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
	}
}

// ShortHelp returns the bindings shown in the calculator status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.NextView, k.Help, k.Quit}
}

// ServicesHelp returns the bindings shown in the services view.
func (k *KeyMap) ServicesHelp() []key.Binding {
	return []key.Binding{k.Select, k.NewService, k.Destroy, k.Unset, k.NextView}
}

// HistoryHelp returns the bindings shown in the history view.
func (k *KeyMap) HistoryHelp() []key.Binding {
	return []key.Binding{k.Reload, k.Clear, k.NextView, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Evaluate, k.Up, k.Down, k.Clear},
		{k.Select, k.NewService, k.Destroy, k.Unset},
		{k.Reload, k.NextView, k.Back},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	return slices.Contains(binding.Keys(), keyStr)
}
