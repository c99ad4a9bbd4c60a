// Package cli implements the shellit command line with cobra.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shellit/internal/core/ports/driving"
	"github.com/custodia-labs/shellit/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Options carries the global flags to the bootstrap function.
type Options struct {
	// ConfigDir overrides ~/.shellit.
	ConfigDir string

	// Memory keeps settings and history in memory only.
	Memory bool
}

// ConfigWatcher reports changes to the configuration file.
type ConfigWatcher interface {
	Run(ctx context.Context) error
	Close() error
}

// Services are the core services commands run against.
type Services struct {
	Calculator driving.Calculator
	History    driving.HistoryService
	Settings   driving.SettingsService
	Registry   driving.ServiceRegistry

	// WatchConfig creates a watcher that calls onReload after the config
	// file is reloaded. Nil when settings are not file-backed.
	WatchConfig func(onReload func(error)) (ConfigWatcher, error)

	// Close releases stores. May be nil.
	Close func() error
}

// Bootstrap builds Services once global flags are parsed.
type Bootstrap func(Options) (*Services, error)

var (
	verbose    bool
	configDir  string
	memoryMode bool

	bootstrap Bootstrap
	services  *Services

	calculator      driving.Calculator
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	serviceRegistry driving.ServiceRegistry
)

var rootCmd = &cobra.Command{
	Use:   "shellit",
	Short: "Calculator and service toolkit for desktop shells",
	Long: `shellit evaluates calculator expressions for launchers and status bars,
keeps a history of results, and serves them to terminals and AI assistants.

Run 'shellit eval 2+2' for a one-shot result, 'shellit tui' for the
interactive calculator, or 'shellit mcp serve' to expose it over MCP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.shellit)")
	rootCmd.PersistentFlags().BoolVar(&memoryMode, "memory", false, "Keep settings and history in memory only")
}

// SetVersion sets the version reported by 'shellit version'.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices installs services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	services = s
	if s == nil {
		calculator, historyService, settingsService, serviceRegistry = nil, nil, nil, nil
		return
	}
	calculator = s.Calculator
	historyService = s.History
	settingsService = s.Settings
	serviceRegistry = s.Registry
}

// Execute runs the root command and releases services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	return errors.Join(err, closeServices())
}

func initServices() error {
	if bootstrap == nil || services != nil {
		return nil
	}

	s, err := bootstrap(Options{ConfigDir: configDir, Memory: memoryMode})
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(s)
	return nil
}

func closeServices() error {
	if services == nil || services.Close == nil {
		return nil
	}
	err := services.Close()
	SetServices(nil)
	return err
}
