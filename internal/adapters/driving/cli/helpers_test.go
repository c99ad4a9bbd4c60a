package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/shellit/internal/adapters/driven/expression/exprlang"
	"github.com/custodia-labs/shellit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/shellit/internal/core/domain"
	coreservices "github.com/custodia-labs/shellit/internal/core/services"
)

// testEnv holds in-memory services installed for one test.
type testEnv struct {
	calc     *coreservices.Evaluator
	history  *coreservices.HistoryService
	settings *coreservices.SettingsService
	registry *coreservices.ServiceRegistry
	config   *memory.ConfigStore
}

// useTestServices installs in-memory services with the real expression
// engine and removes them when the test ends.
func useTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		calc:     coreservices.NewEvaluator(exprlang.New(), domain.DefaultCalculatorSettings()),
		config:   memory.NewConfigStore(),
		registry: coreservices.NewServiceRegistry(),
	}
	env.history = coreservices.NewHistoryService(env.calc, memory.NewHistoryStore())
	env.settings = coreservices.NewSettingsService(env.config)

	SetServices(&Services{
		Calculator: env.calc,
		History:    env.history,
		Settings:   env.settings,
		Registry:   env.registry,
	})
	t.Cleanup(func() { SetServices(nil) })
	return env
}

// execute runs the root command with args and stdin, returning
// everything written to stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag of cmd and its children to its default,
// since cobra keeps flag values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
