package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/umbrellacheck/cmd/umbrellacheck/commands"
)

func runConfigValidate(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := commands.NewConfigCommand()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"validate"}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestConfigValidate_ValidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".umbrellacheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("umbrella_prefix: \"Material\"\n"), 0o600))

	out, err := runConfigValidate(t, "--no-color", path)

	require.NoError(t, err)
	assert.Contains(t, out, "config is valid")
}

func TestConfigValidate_SchemaViolations(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".umbrellacheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("filtered_prefixes: 42\n"), 0o600))

	out, err := runConfigValidate(t, "--no-color", path)

	require.ErrorIs(t, err, commands.ErrInvalidConfig)
	assert.Contains(t, out, "SCHEMA: filtered_prefixes")
}

func TestConfigValidate_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := runConfigValidate(t, "--no-color", filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, commands.ErrInvalidConfig)
}
