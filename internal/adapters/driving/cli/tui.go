package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shellit/internal/adapters/driving/tui"
	"github.com/custodia-labs/shellit/internal/adapters/driving/tui/messages"
	coreservices "github.com/custodia-labs/shellit/internal/core/services"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	Long: `Launch the interactive terminal calculator.

Type an expression and press Enter to evaluate it. The services view lists
registered services and picks the one the UI is bound to; destroying the
current service clears the binding immediately.

Settings changes written to the config file are applied while the TUI runs.

Controls:
  Enter    - Evaluate / use service
  ↑/↓      - Recall expressions / navigate
  Tab      - Next view (calculator, services, history)
  Esc      - Back to calculator
  F1       - Toggle help
  Ctrl+C   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	if calculator == nil || serviceRegistry == nil {
		return errors.New("calculator not configured")
	}

	// The scope owns the reference the UI is bound to.
	scope := coreservices.NewScope()
	defer scope.Close()
	current := coreservices.NewServiceRef(nil, scope)

	ports := tui.NewPorts(calculator, serviceRegistry, current)
	ports.History = historyService
	ports.Settings = settingsService

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	scope.Adopt(app)
	app.WithContext(cmd.Context())

	p := app.NewProgram()

	// Reloads arrive on the watcher's goroutine; Send hands them to the
	// update loop, which owns the calculator view and the reference.
	stop, err := startConfigWatcher(cmd.Context(), func(reloadErr error) {
		p.Send(messages.ConfigReloaded{Err: reloadErr})
	})
	if err != nil {
		return err
	}
	defer stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
