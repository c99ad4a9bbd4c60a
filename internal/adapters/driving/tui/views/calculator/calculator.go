// Package calculator provides the expression input and result log view.
package calculator

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/shellit/internal/core/domain"
	"github.com/custodia-labs/shellit/internal/core/ports/driving"
)

// maxEntries bounds the result log.
const maxEntries = 500

// Entry is one line of the result log.
type Entry struct {
	Expression string
	Output     string
	Failed     bool
}

// View shows an expression input above the log of results.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.ExprInput

	calculator driving.Calculator
	history    driving.HistoryService
	ctx        context.Context

	entries []Entry
	width   int
	height  int
	ready   bool
	err     error
}

// NewView creates a calculator view. history may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	calculator driving.Calculator,
	history driving.HistoryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewExprInput(s),
		calculator: calculator,
		history:    history,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context used for history writes.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the calculator view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.EvaluationCompleted:
		v.addEntry(msg)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Evaluate):
		expr := strings.TrimSpace(v.input.Value())
		v.input.Submit(expr)
		if expr == "" {
			return v, nil
		}
		return v, v.evaluate(expr)

	case msg.Type == tea.KeyUp:
		v.input.Previous()
		return v, nil

	case msg.Type == tea.KeyDown:
		v.input.Next()
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Clear):
		v.entries = nil
		v.err = nil
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Back):
		v.input.Reset()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// evaluate returns a command producing EvaluationCompleted for expr.
// Echo follows the calculator's settings at the time of the key press.
func (v *View) evaluate(expr string) tea.Cmd {
	echo := v.calculator.Settings().EchoInput
	calculator, history, ctx := v.calculator, v.history, v.ctx

	return func() tea.Msg {
		var (
			eval domain.Evaluation
			err  error
		)
		if history == nil {
			eval, _ = calculator.Evaluate(expr)
		} else {
			eval, err = history.Record(ctx, expr)
		}
		if eval.Expression == "" {
			return messages.EvaluationCompleted{Expression: expr, Err: err}
		}
		return messages.EvaluationCompleted{
			Expression: expr,
			Output:     eval.Display(echo),
			Failed:     eval.Failed(),
			Err:        err,
		}
	}
}

func (v *View) addEntry(msg messages.EvaluationCompleted) {
	v.err = msg.Err
	if msg.Output == "" {
		return
	}
	v.entries = append(v.entries, Entry{
		Expression: msg.Expression,
		Output:     msg.Output,
		Failed:     msg.Failed,
	})
	if len(v.entries) > maxEntries {
		v.entries = v.entries[len(v.entries)-maxEntries:]
	}
}

// View renders the calculator.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("shellit"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(describeSettings(v.calculator.Settings())))
	b.WriteString("\n\n")

	for _, e := range v.visibleEntries() {
		switch {
		case e.Failed:
			b.WriteString(v.styles.Expression.Render(e.Expression))
			b.WriteString("  ")
			b.WriteString(v.styles.Error.Render(e.Output))
		default:
			b.WriteString(v.styles.Result.Render(e.Output))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.input.View())
	return b.String()
}

// visibleEntries returns the newest entries that fit above the input.
func (v *View) visibleEntries() []Entry {
	// title, blank line, blank line, bordered input (3), status bar
	room := max(v.height-7, 1)
	if len(v.entries) <= room {
		return v.entries
	}
	return v.entries[len(v.entries)-room:]
}

func describeSettings(s domain.CalculatorSettings) string {
	precision := "shortest"
	if s.Precision != domain.ShortestPrecision {
		precision = fmt.Sprintf("%d digits", s.Precision)
	}
	return fmt.Sprintf("%s · %s", precision, s.AngleUnit)
}

// Entries returns the result log, oldest first.
func (v *View) Entries() []Entry {
	return v.entries
}

// Input returns the expression input.
func (v *View) Input() *input.ExprInput {
	return v.input
}

// Err returns the last history error.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// Focus focuses the input.
func (v *View) Focus() tea.Cmd {
	return v.input.Focus()
}

// Blur removes focus from the input.
func (v *View) Blur() {
	v.input.Blur()
}
