package mcpserver

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckInput(t *testing.T) {
	assert.NoError(t, checkInput("short"))
	assert.NoError(t, checkInput(""))

	old := cfg.MaxInputBytes
	cfg.MaxInputBytes = 8
	t.Cleanup(func() { cfg.MaxInputBytes = old })

	assert.NoError(t, checkInput("12345678"))
	err := checkInput("123456789")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RECASE_MAX_INPUT_BYTES")
}

func TestSeedOptions(t *testing.T) {
	old := cfg.Seed
	t.Cleanup(func() { cfg.Seed = old })

	cfg.Seed = 0
	assert.Nil(t, seedOptions(), "zero seed means process randomness")

	cfg.Seed = 42
	assert.Len(t, seedOptions(), 1)
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestServerInstructions_MentionEnvVars(t *testing.T) {
	for _, key := range []string{"RECASE_SEED", "RECASE_MAX_INPUT_BYTES"} {
		assert.True(t, strings.Contains(serverInstructions, key),
			"instructions should document %s", key)
	}
}
