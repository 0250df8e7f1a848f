package cmd_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/callbacks/cmd"
	"github.com/yaoapp/callbacks/logger"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger.SetConsole(nil)

	var out bytes.Buffer
	root := cmd.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--env", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestFire_Defaults(t *testing.T) {
	out, err := run(t, "fire")
	require.NoError(t, err)

	assert.Contains(t, out, "Dispatching with value: Testing\n")
	assert.Contains(t, out, "Global function says: Testing - Returned 0\n")
	assert.Contains(t, out, "Static member function says: Testing - Returned 1\n")
	assert.Contains(t, out, "Instance member function says: Testing - Returned 2\n")
	assert.Contains(t, out, "Lambda function says: Testing - Returned 3\n")
	assert.Contains(t, out, "Function object says: Testing - Returned 7\n")
	assert.Contains(t, out, "Results: [0 1 2 3 7]\n")
}

func TestFire_Args(t *testing.T) {
	out, err := run(t, "fire", "hey", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "Dispatching with value: hey\n")
	assert.Contains(t, out, "Instance member function says: hey - Returned 10\n")
	assert.Contains(t, out, "Results: [0 1 10 3 3]\n")
}

func TestFire_Environment(t *testing.T) {
	t.Setenv("CALLBACKS_VALUE", "env")
	t.Setenv("CALLBACKS_INSTANCE_VALUE", "8")

	out, err := run(t, "fire")
	require.NoError(t, err)
	assert.Contains(t, out, "Results: [0 1 8 3 3]\n")
}

func TestFire_BadInstanceValue(t *testing.T) {
	_, err := run(t, "fire", "x", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "instance-value")
}

func TestFire_TooManyArgs(t *testing.T) {
	_, err := run(t, "fire", "a", "1", "extra")
	assert.Error(t, err)
}
