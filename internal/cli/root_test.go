package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geometryzen/multivectors-sub001/internal/dimension"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "uom", cmd.Use)
	assert.Contains(t, cmd.Long, "rational exponents")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"format", "check", "table", "tags", "test"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	for _, name := range []string{"config", "policy"} {
		flag := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "", flag.DefValue)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := executeRoot(t, "--format", "xml", "tags")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestInvalidPolicyFlag(t *testing.T) {
	_, _, err := executeRoot(t, "--policy", "lenient", "tags")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.ErrorIs(t, err, dimension.ErrInvalidPolicy)
}

func TestMissingConfigFile(t *testing.T) {
	_, _, err := executeRoot(t, "--config", "testdata/does-not-exist.yaml", "tags")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConfigFileApplied(t *testing.T) {
	t.Cleanup(func() { _ = dimension.SetCheckingPolicy("strict") })

	// uom.yaml selects policy none, radix 16, no compaction and M..J labels.
	out, _, err := executeRoot(t, "--config", "../config/testdata/uom.yaml",
		"format", "--exponents", "0,1,0,0,0,0,0", "--multiplier", "255")
	require.NoError(t, err)
	assert.Equal(t, "ff * m\n", out)
	assert.Equal(t, dimension.None, dimension.CheckingPolicy())

	out, _, err = executeRoot(t, "--config", "../config/testdata/uom.yaml",
		"format", "--exponents", "0,0,0,0,0,3,-1")
	require.NoError(t, err)
	assert.Equal(t, "1 N ** 3·J ** -1\n", out)
}

func TestPolicyFlagOverridesConfig(t *testing.T) {
	t.Cleanup(func() { _ = dimension.SetCheckingPolicy("strict") })

	_, _, err := executeRoot(t, "--config", "../config/testdata/uom.yaml", "--policy", "strict",
		"check", "--lhs", "0,1,0,0,0,0,0", "--rhs", "0,0,1,0,0,0,0")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, dimension.Strict, dimension.CheckingPolicy())
}

func TestVerboseWritesToStderr(t *testing.T) {
	out, errOut, err := executeRoot(t, "-v", "--format", "json", "format", "--exponents", "1,1,-2,0,0,0,0")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Contains(t, errOut, "dimensions: mass * length * time ** -2 (tag force)")
}
