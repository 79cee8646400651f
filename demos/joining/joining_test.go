package joining

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bethropolis/primer/internal/clipboard"
	"github.com/bethropolis/primer/internal/config"
	"github.com/bethropolis/primer/internal/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnv() (*demo.Env, *bytes.Buffer) {
	var out bytes.Buffer
	return &demo.Env{
		Out:       &out,
		Err:       new(bytes.Buffer),
		Config:    config.NewDefaultConfig().Demos,
		Clipboard: clipboard.NewManager(false),
	}, &out
}

func TestRunDefaultWords(t *testing.T) {
	env, out := newEnv()

	require.NoError(t, New().Run(env, nil))

	assert.Equal(t, "abcde\ntrue\na*b*c*d*e\n", out.String())
	assert.Empty(t, env.Clipboard.Contents())
}

func TestRunArgumentsAndSeparator(t *testing.T) {
	env, out := newEnv()
	env.Config.Separator = ", "

	require.NoError(t, New().Run(env, []string{"x", "y", "z"}))

	assert.Equal(t, "xyz\nfalse\nx, y, z\n", out.String())
}

func TestRunEmptyWordList(t *testing.T) {
	env, out := newEnv()
	env.Config.Words = nil

	require.NoError(t, New().Run(env, nil))

	assert.Equal(t, "\nfalse\n\n", out.String())
}

func TestRunCopiesResult(t *testing.T) {
	env, _ := newEnv()
	env.Config.CopyResult = true

	require.NoError(t, New().Run(env, []string{"a", "b"}))

	assert.Equal(t, "a*b", env.Clipboard.Contents())
}

var errWrite = errors.New("write failed")

// failingWriter fails every write that starts with prefix.
type failingWriter struct {
	prefix string
}

func (w failingWriter) Write(p []byte) (int, error) {
	if strings.HasPrefix(string(p), w.prefix) {
		return 0, errWrite
	}
	return len(p), nil
}

func TestRunReportsWriteErrors(t *testing.T) {
	for _, prefix := range []string{"abcde", "true", "a*b"} {
		t.Run(prefix, func(t *testing.T) {
			env, _ := newEnv()
			env.Out = failingWriter{prefix: prefix}

			assert.ErrorIs(t, New().Run(env, nil), errWrite)
		})
	}
}
