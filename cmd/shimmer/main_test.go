package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFramesCommand_Sweeping(t *testing.T) {
	out, err := execute(t, "frames", "-n", "2", "--interval", "30ms", "--plain",
		"--resolve-after", "1h", "--width", "40", "--height", "30")
	require.NoError(t, err)

	assert.Contains(t, out, "--- frame 1 | card 0 x=")
	assert.Contains(t, out, "--- frame 2 | card 0 x=")
	assert.NotContains(t, out, "--- frame 3")
	assert.NotContains(t, out, "Ada Lovelace", "content should not be visible while loading")
}

func TestFramesCommand_Resolves(t *testing.T) {
	out, err := execute(t, "frames", "-n", "1", "--interval", "100ms", "--plain",
		"--resolve-after", "0s", "--width", "40")
	require.NoError(t, err)

	assert.Contains(t, out, "card 0 idle")
	assert.Contains(t, out, "card 1 idle")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "Grace Hopper")
}

func TestFramesCommand_ReplaceReveals(t *testing.T) {
	out, err := execute(t, "frames", "-n", "1", "--interval", "100ms", "--plain",
		"--replace", "--resolve-after", "0s", "--width", "60")
	require.NoError(t, err)

	assert.Contains(t, out, "card 0 x=", "replace mode keeps the driver running")
	assert.Contains(t, out, "(o_o)")
	assert.Contains(t, out, "Joined 2019")
}

func TestFramesCommand_Errors(t *testing.T) {
	type tc struct {
		args    []string
		wantErr string
	}

	tests := map[string]tc{
		"zero count":     {args: []string{"frames", "-n", "0"}, wantErr: "frame count"},
		"bad interval":   {args: []string{"frames", "--interval", "0s"}, wantErr: "frame interval"},
		"bad duration":   {args: []string{"frames", "--duration", "0s"}, wantErr: "duration must be positive"},
		"missing scene":  {args: []string{"frames", "--scene", "/does/not/exist.yaml"}, wantErr: "failed to read scene"},
		"bad frame rate": {args: []string{"frames", "--fps", "1000"}, wantErr: "frame rate"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestSceneCommand(t *testing.T) {
	out, err := execute(t, "scene", "--duration", "3s", "--replace")
	require.NoError(t, err)

	assert.Contains(t, out, "duration: 3s")
	assert.Contains(t, out, "replace: true")
	assert.True(t, strings.Contains(out, "cards:"))
}

func TestSceneCommand_FromFile(t *testing.T) {
	path := writeScene(t, DefaultScene().String())
	out, err := execute(t, "scene", "--scene", path, "--delay", "500ms")
	require.NoError(t, err)
	assert.Contains(t, out, "delay: 500ms")
}
