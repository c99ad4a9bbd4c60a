// Package services provides the view that binds the UI to one registry service.
package services

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driving"
)

// maxEvents bounds the change log shown under the list.
const maxEvents = 8

// View lists registry services and shows which one is current.
//
// The view observes the current reference for its whole life. Changes,
// including those caused by a destroyed service, are reported to the app
// as messages.ServiceChanged after the key press that caused them.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap

	registry   driving.ServiceRegistry
	current    driving.ServiceRef
	disconnect func()

	services []*domain.Service
	selected int
	created  int

	// changes counts notifications from current; pending is set until
	// the next ServiceChanged is emitted.
	changes int
	pending bool
	events  []string

	width  int
	height int
}

// NewView creates a services view observing current.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	registry driving.ServiceRegistry,
	current driving.ServiceRef,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:   s,
		keymap:   km,
		registry: registry,
		current:  current,
		width:    80,
		height:   24,
	}
	v.disconnect = current.OnChanged(v.serviceChanged)
	return v
}

// Init loads the service list.
func (v *View) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh reloads services from the registry.
func (v *View) Refresh() {
	v.services = v.registry.List()
	v.selected = min(v.selected, max(len(v.services)-1, 0))
}

// Update handles messages for the services view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		cmd := v.handleKeyMsg(msg)
		if changed := v.flush(); changed != nil {
			return v, tea.Batch(cmd, changed)
		}
		return v, cmd
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch {
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}

	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.services)-1 {
			v.selected++
		}

	case keymap.Matches(key, v.keymap.Select):
		if svc := v.Selected(); svc != nil {
			v.current.SetService(svc)
		}

	case keymap.Matches(key, v.keymap.Unset):
		v.current.SetService(nil)

	case keymap.Matches(key, v.keymap.NewService):
		v.created++
		v.registry.Create(fmt.Sprintf("service-%d", v.created), nil)
		v.Refresh()
		v.selected = len(v.services) - 1

	case keymap.Matches(key, v.keymap.Destroy):
		svc := v.Selected()
		if svc == nil {
			return nil
		}
		err := v.registry.Destroy(svc.ID)
		v.Refresh()
		if err != nil {
			return func() tea.Msg {
				return messages.ErrorOccurred{Err: fmt.Errorf("destroying %s: %w", svc, err)}
			}
		}
	}
	return nil
}

// serviceChanged runs synchronously inside SetService or the owner's Destroy.
func (v *View) serviceChanged(svc *domain.Service) {
	v.changes++
	v.pending = true
	v.events = append(v.events, fmt.Sprintf("current -> %s", svc))
	if len(v.events) > maxEvents {
		v.events = v.events[len(v.events)-maxEvents:]
	}
}

// flush reports the current service once after any number of changes.
func (v *View) flush() tea.Cmd {
	if !v.pending {
		return nil
	}
	v.pending = false
	svc := v.current.Service()
	return func() tea.Msg {
		return messages.ServiceChanged{Service: svc}
	}
}

// View renders the services list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Services"))
	b.WriteString("\n\n")

	current := v.current.Service()
	b.WriteString(v.styles.Muted.Render("Current: "))
	if current == nil {
		b.WriteString(v.styles.Warning.Render("none"))
	} else {
		b.WriteString(v.styles.Success.Render(current.String()))
	}
	b.WriteString("\n\n")

	if len(v.services) == 0 {
		b.WriteString(v.styles.Muted.Render("No services. Press n to create one."))
		b.WriteString("\n")
	}
	for i, svc := range v.services {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}

		marker := " "
		if svc == current {
			marker = "*"
		}

		state := "stopped"
		if svc.Running() {
			state = "running"
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(fmt.Sprintf("%s %-16s", marker, svc)))
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  %s, %d consumers", state, svc.Consumers())))
		b.WriteString("\n")
	}

	if len(v.events) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("Changes (%d)", v.changes)))
		b.WriteString("\n")
		for _, e := range v.events {
			b.WriteString(v.styles.Muted.Render("  " + e))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Selected returns the highlighted service, or nil when the list is empty.
func (v *View) Selected() *domain.Service {
	if v.selected < 0 || v.selected >= len(v.services) {
		return nil
	}
	return v.services[v.selected]
}

// Services returns the listed services.
func (v *View) Services() []*domain.Service {
	return v.services
}

// Changes returns how many change notifications the view has seen.
func (v *View) Changes() int {
	return v.changes
}

// Events returns the recent change descriptions, oldest first.
func (v *View) Events() []string {
	return v.events
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Close stops observing the current reference.
func (v *View) Close() error {
	if v.disconnect != nil {
		v.disconnect()
		v.disconnect = nil
	}
	return nil
}
