package initcmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuetools/svgswap/config"
)

// chdir changes the working directory for the duration of the test,
// matching t.Chdir (Go 1.24+) on the Go 1.21 toolchain used here.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Error(err)
		}
	})
}

func executeInit(t *testing.T, args ...string) error {
	t.Helper()

	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetErr(&out)
	Cmd.SetArgs(args)
	return Cmd.Execute()
}

func TestInit_WritesStarterConfig(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, executeInit(t, "--force=false"))

	cfg, err := config.Load(config.DefaultFileName)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, []string{".vue"}, cfg.Extensions)
	assert.False(t, cfg.DryRun)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(config.DefaultFileName, []byte("root: ./keep\n"), 0o644))

	err := executeInit(t, "--force=false")

	assert.Error(t, err)

	cfg, cfgErr := config.Load(config.DefaultFileName)
	require.NoError(t, cfgErr)
	assert.Equal(t, "./keep", cfg.Root)
}

func TestInit_ForceOverwrites(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(config.DefaultFileName, []byte("root: ./old\n"), 0o644))

	require.NoError(t, executeInit(t, "--force"))

	cfg, err := config.Load(config.DefaultFileName)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Root)
}
