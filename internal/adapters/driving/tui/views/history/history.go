// Package history provides the view of recorded evaluations.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driving"
)

// Limit is how many evaluations the view loads.
const Limit = 100

// View lists recorded evaluations, newest first.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	history driving.HistoryService
	ctx     context.Context

	evaluations []domain.Evaluation
	offset      int
	loading     bool
	err         error

	width  int
	height int
}

// NewView creates a history view. history may be nil.
func NewView(s *styles.Styles, km *keymap.KeyMap, history driving.HistoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:  s,
		keymap:  km,
		history: history,
		ctx:     context.Background(),
		width:   80,
		height:  24,
	}
}

// WithContext sets the context for store access.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the history.
func (v *View) Init() tea.Cmd {
	return v.load()
}

func (v *View) load() tea.Cmd {
	if v.history == nil {
		return nil
	}
	v.loading = true
	history, ctx := v.history, v.ctx
	return func() tea.Msg {
		evals, err := history.Recent(ctx, Limit)
		return messages.HistoryLoaded{Evaluations: evals, Err: err}
	}
}

func (v *View) clear() tea.Cmd {
	if v.history == nil {
		return nil
	}
	history, ctx := v.history, v.ctx
	return func() tea.Msg {
		return messages.HistoryCleared{Err: history.Clear(ctx)}
	}
}

// Update handles messages for the history view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		key := msg.String()
		switch {
		case keymap.Matches(key, v.keymap.Up):
			if v.offset > 0 {
				v.offset--
			}
		case keymap.Matches(key, v.keymap.Down):
			if v.offset < len(v.evaluations)-1 {
				v.offset++
			}
		case keymap.Matches(key, v.keymap.Reload):
			return v, v.load()
		case keymap.Matches(key, v.keymap.Clear):
			return v, v.clear()
		}
		return v, nil

	case messages.HistoryLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.evaluations = msg.Evaluations
			v.offset = 0
		}
		return v, nil

	case messages.HistoryCleared:
		v.err = msg.Err
		if msg.Err != nil {
			return v, nil
		}
		return v, v.load()
	}
	return v, nil
}

// View renders the history.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("History"))
	b.WriteString("\n\n")

	switch {
	case v.history == nil:
		b.WriteString(v.styles.Muted.Render("History is not available."))
		b.WriteString("\n")
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
		return b.String()
	case v.loading && len(v.evaluations) == 0:
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n")
		return b.String()
	case len(v.evaluations) == 0:
		b.WriteString(v.styles.Muted.Render("No calculations recorded."))
		b.WriteString("\n")
		return b.String()
	}

	// title, blank line, status bar
	room := max(v.height-3, 1)
	end := min(v.offset+room, len(v.evaluations))
	for _, eval := range v.evaluations[v.offset:end] {
		b.WriteString(v.styles.Muted.Render(eval.EvaluatedAt.Local().Format("15:04:05")))
		b.WriteString("  ")
		b.WriteString(v.styles.Expression.Render(eval.Expression))
		b.WriteString("  ")
		if eval.Failed() {
			b.WriteString(v.styles.Error.Render("error: " + eval.Err))
		} else {
			b.WriteString(v.styles.Result.Render(eval.Result))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Evaluations returns the loaded evaluations.
func (v *View) Evaluations() []domain.Evaluation {
	return v.evaluations
}

// Err returns the last load or clear error.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
