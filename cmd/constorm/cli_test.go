package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drake200120xx/constorm/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWrap(t *testing.T) {
	out, err := execute(t, "", "wrap", "--columns", "10", "The quick brown fox")

	require.NoError(t, err)
	assert.Equal(t, "The quick \nbrown fox\n", out)
}

func TestWrap_Stdin(t *testing.T) {
	out, err := execute(t, "abcdefghijklmnopqrstuvwxyz\n", "wrap", "--columns", "10")

	require.NoError(t, err)
	assert.Equal(t, "abcdefghi-\njklmnopqr-\nstuvwxyz\n", out)
}

func TestWrap_Box(t *testing.T) {
	out, err := execute(t, "", "wrap", "--box", "--no-color", "hello")

	require.NoError(t, err)
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
}

func TestRun_Sandbox(t *testing.T) {
	metricsFile := filepath.Join(t.TempDir(), "constorm.prom")

	out, err := execute(t, "1\n\n2\n\nGuest\n3\n\n",
		"run", "--no-color", "--metrics-file", metricsFile)

	require.NoError(t, err)
	assert.Contains(t, out, "Main Menu")
	assert.Contains(t, out, "Enter the numerical option: ")
	assert.Contains(t, out, "Getting Started")
	assert.Contains(t, out, "User Name Entry")
	assert.Contains(t, out, "\n Press something to close this application...\n")

	data, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `constorm_node_visits_total{kind="options",node="main"} 3`)
	assert.Contains(t, string(data), `constorm_reprompts_total{node="login"} 1`)
	assert.Contains(t, string(data), "constorm_sessions_total 1")
}

func TestRun_ClosedInputIsNotAnError(t *testing.T) {
	_, err := execute(t, "", "run", "--no-color")

	assert.NoError(t, err)
}

func TestRun_StartFlag(t *testing.T) {
	out, err := execute(t, "\n3\n\n", "run", "--no-color", "--start", "help")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Application Help\n"))
}

func TestRun_UnknownStart(t *testing.T) {
	_, err := execute(t, "", "run", "--start", "nowhere")

	assert.ErrorContains(t, err, "nowhere")
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dice.yaml")
	yaml := `
nodes:
  - id: roll
    type: function
    title: Dice
    call: echo
    args: {text: four, upper: true}
    to: bye
  - id: bye
    type: exit
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	out, err := execute(t, "\n", "run", "--no-color", path)

	require.NoError(t, err)
	assert.Contains(t, out, "FOUR\n")
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "", "validate")

	require.NoError(t, err)
	assert.Equal(t, "Graph is valid!\n", out)
}

func TestValidate_Broken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes:\n  - {id: a, type: options}\n"), 0o644))

	_, err := execute(t, "", "validate", path)

	assert.ErrorContains(t, err, "has no options")
}

func TestGraph(t *testing.T) {
	out, err := execute(t, "", "graph")

	require.NoError(t, err)
	assert.Contains(t, out, "graph TD\n")
	assert.Contains(t, out, "main -- \"Login\" --> login")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "constorm version ")
}
