package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/views/calculator"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/views/history"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/views/services"
	"github.com/custodia-labs/shellit/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Everything the App touches, including the current service reference,
// is used only from the Bubbletea update loop. Events from other
// goroutines, such as config reloads, must arrive through Program.Send.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	calculatorView *calculator.View
	servicesView   *services.View
	historyView    *history.View
	statusbar      *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		help:           help.New(),
		calculatorView: calculator.NewView(s, km, ports.Calculator, ports.History),
		servicesView:   services.NewView(s, km, ports.Registry, ports.Current),
		historyView:    history.NewView(s, km, ports.History),
		statusbar:      status.NewBar(s, km),
		currentView:    messages.ViewCalculator,
	}
	a.statusbar.SetService(serviceName(ports.Current.Service()))
	return a, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.calculatorView.WithContext(ctx)
	a.historyView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("shellit"),
		a.calculatorView.Init(),
		a.servicesView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.EvaluationCompleted:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
		if msg.Err != nil {
			a.setError(fmt.Errorf("recording history: %w", msg.Err))
		} else {
			a.statusbar.Clear()
		}
		return a, cmd

	case messages.HistoryLoaded, messages.HistoryCleared:
		a.historyView, cmd = a.historyView.Update(msg)
		if err := a.historyView.Err(); err != nil {
			a.setError(err)
		}
		return a, cmd

	case messages.ServiceChanged:
		name := serviceName(msg.Service)
		a.statusbar.SetService(name)
		if name == "" {
			a.statusbar.Info("No current service")
		} else {
			a.statusbar.Info("Current service: " + name)
		}
		return a, nil

	case messages.ConfigReloaded:
		a.reloadSettings(msg.Err)
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink and the like) to the active view
	switch a.currentView {
	case messages.ViewCalculator:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
	case messages.ViewServices:
		a.servicesView, cmd = a.servicesView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	var cmd tea.Cmd

	switch {
	case keymap.Matches(key, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(key, a.keymap.Help):
		if a.currentView == messages.ViewHelp {
			return a, a.switchTo(messages.ViewCalculator)
		}
		return a, a.switchTo(messages.ViewHelp)
	case keymap.Matches(key, a.keymap.NextView):
		return a, a.switchTo(a.currentView.Next())
	}

	switch a.currentView {
	case messages.ViewCalculator:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
		return a, cmd
	case messages.ViewServices, messages.ViewHistory, messages.ViewHelp:
		if keymap.Matches(key, a.keymap.Back) {
			return a, a.switchTo(messages.ViewCalculator)
		}
	}

	switch a.currentView {
	case messages.ViewServices:
		a.servicesView, cmd = a.servicesView.Update(msg)
	case messages.ViewHistory:
		a.historyView, cmd = a.historyView.Update(msg)
	case messages.ViewCalculator, messages.ViewHelp:
	}
	return a, cmd
}

// switchTo activates view and returns its start-up command.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	a.statusbar.Clear()

	if view != messages.ViewCalculator {
		a.calculatorView.Blur()
	}

	switch view {
	case messages.ViewCalculator:
		a.statusbar.SetHints(a.keymap.ShortHelp())
		return a.calculatorView.Focus()
	case messages.ViewServices:
		a.statusbar.SetHints(a.keymap.ServicesHelp())
		return a.servicesView.Init()
	case messages.ViewHistory:
		a.statusbar.SetHints(a.keymap.HistoryHelp())
		return a.historyView.Init()
	case messages.ViewHelp:
		a.statusbar.SetHints([]key.Binding{a.keymap.Back, a.keymap.Quit})
	}
	return nil
}

// reloadSettings applies settings re-read after the config file changed.
func (a *App) reloadSettings(reloadErr error) {
	if reloadErr != nil {
		a.setError(fmt.Errorf("reloading config: %w", reloadErr))
		return
	}
	if a.ports.Settings == nil {
		return
	}

	settings, err := a.ports.Settings.Get()
	if err != nil {
		a.setError(fmt.Errorf("reading settings: %w", err))
		return
	}
	if err := a.ports.Calculator.Configure(settings); err != nil {
		a.setError(fmt.Errorf("applying settings: %w", err))
		return
	}
	a.statusbar.Info("Settings reloaded")
}

func (a *App) setError(err error) {
	a.err = err
	a.statusbar.Error(err)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewServices:
		body = a.servicesView.View()
	case messages.ViewHistory:
		body = a.historyView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.calculatorView.View()
	}
	return body + "\n" + a.statusbar.View()
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + "\n\n" +
		a.help.FullHelpView(a.keymap.FullHelp()) + "\n\n" +
		a.styles.Muted.Render("Functions: sqrt cbrt sin cos tan asin acos atan ln log log2 exp pow hypot") + "\n" +
		a.styles.Muted.Render("Constants: pi e    Operators: + - * / % ^ **")
}

// NewProgram creates the Bubbletea program running the app.
// Use Program.Send to deliver messages such as ConfigReloaded.
func (a *App) NewProgram(opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(a.ctx)}, opts...)
	return tea.NewProgram(a, opts...)
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	_, err := a.NewProgram().Run()
	return err
}

// Close stops observing the current service reference. The reference
// itself belongs to the caller.
func (a *App) Close() error {
	return a.servicesView.Close()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been sized.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and its views.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.statusbar.SetWidth(width)
	a.calculatorView.SetDimensions(width, height)
	a.servicesView.SetDimensions(width, height)
	a.historyView.SetDimensions(width, height)
}

func serviceName(s *domain.Service) string {
	if s == nil {
		return ""
	}
	return s.String()
}
