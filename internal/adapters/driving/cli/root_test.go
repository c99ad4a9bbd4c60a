package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetVersion(t *testing.T) {
	original := version
	t.Cleanup(func() { version = original })

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version, "empty version is ignored")
}

func TestInitServices_UsesBootstrapWithFlags(t *testing.T) {
	env := useTestServices(t)
	SetServices(nil)

	var got Options
	SetBootstrap(func(opts Options) (*Services, error) {
		got = opts
		return &Services{Calculator: env.calc, Settings: env.settings}, nil
	})
	t.Cleanup(func() { SetBootstrap(nil) })

	out, err := execute(t, "", "--memory", "--config-dir", "/tmp/shellit-test", "eval", "1+2")

	require.NoError(t, err)
	assert.Equal(t, Options{ConfigDir: "/tmp/shellit-test", Memory: true}, got)
	assert.Equal(t, "1+2 = 3\n", out)
	assert.NotNil(t, calculator)
	assert.Nil(t, historyService)
}

func TestInitServices_KeepsInstalledServices(t *testing.T) {
	useTestServices(t)

	called := false
	SetBootstrap(func(Options) (*Services, error) {
		called = true
		return nil, errors.New("unexpected")
	})
	t.Cleanup(func() { SetBootstrap(nil) })

	_, err := execute(t, "", "eval", "1")

	require.NoError(t, err)
	assert.False(t, called)
}

func TestInitServices_BootstrapError(t *testing.T) {
	SetServices(nil)
	boom := errors.New("disk on fire")
	SetBootstrap(func(Options) (*Services, error) { return nil, boom })
	t.Cleanup(func() { SetBootstrap(nil) })

	_, err := execute(t, "", "eval", "1")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "initialising services")
}

func TestCloseServices(t *testing.T) {
	env := useTestServices(t)

	closed := 0
	SetServices(&Services{
		Calculator: env.calc,
		Close: func() error {
			closed++
			return nil
		},
	})

	require.NoError(t, closeServices())
	assert.Equal(t, 1, closed)
	assert.Nil(t, services)
	assert.Nil(t, calculator)

	require.NoError(t, closeServices(), "closing twice is a no-op")
	assert.Equal(t, 1, closed)
}

func TestCloseServices_ReturnsError(t *testing.T) {
	t.Cleanup(func() { SetServices(nil) })
	boom := errors.New("close failed")
	SetServices(&Services{Close: func() error { return boom }})

	assert.ErrorIs(t, closeServices(), boom)
}

func TestSetServices_Nil(t *testing.T) {
	useTestServices(t)
	require.NotNil(t, calculator)

	SetServices(nil)

	assert.Nil(t, services)
	assert.Nil(t, calculator)
	assert.Nil(t, historyService)
	assert.Nil(t, settingsService)
	assert.Nil(t, serviceRegistry)
}

func TestRootCmd_Subcommands(t *testing.T) {
	for _, name := range []string{"eval", "history", "settings", "tui", "mcp", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}
